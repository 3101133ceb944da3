package entity

const (
	RoleRegular = "regular_user"
	RoleAdmin   = "admin"
	RoleOwner   = "owner"
)

type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is the authenticated identity of the current user. It is the only
// entity persisted across application restarts.
type Session struct {
	Token string `json:"token,omitempty"`
	User  *User  `json:"user,omitempty"`
	Role  string `json:"role,omitempty"`
}

func (s Session) LoggedIn() bool {
	return s.Token != ""
}

// IsAdmin reports whether the session may use the admin panels. The backend
// enforces the role again on every admin call.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin || s.Role == RoleOwner
}

// DisplayName is what the shell greets the user with.
func (s Session) DisplayName() string {
	if s.User == nil {
		return ""
	}
	if s.User.Name != "" {
		return s.User.Name
	}
	return s.User.Email
}

// Package forms holds the client-side validation rules. Validation failures
// are reported locally and never reach the network.
package forms

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"safaribook/format"
)

var validate = validator.New()

// ContactForm is the contact block on the booking summary.
type ContactForm struct {
	Name  string `validate:"required"`
	Email string `validate:"required,contains=@"`
	Phone string `validate:"omitempty,min=10"`
}

func (f ContactForm) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		switch fieldErrs[0].Field() {
		case "Name":
			return errors.New("Name is required.")
		case "Email":
			return errors.New("Enter a valid email.")
		case "Phone":
			return errors.New("Enter a valid phone.")
		}
	}
	return err
}

type AuthMode string

const (
	ModeLogin    AuthMode = "login"
	ModeRegister AuthMode = "register"
)

// AuthForm backs the login/register panel. Checks run in the order the
// panel reports them.
type AuthForm struct {
	Mode     AuthMode
	Name     string
	Email    string
	Password string
}

func (f AuthForm) Validate() error {
	if f.Email == "" || f.Password == "" {
		return errors.New("Email and password are required.")
	}
	if err := validate.Var(f.Email, "contains=@"); err != nil {
		return errors.New("Please enter a valid email.")
	}
	if f.Mode == ModeRegister && f.Name == "" {
		return errors.New("Name is required for registration.")
	}
	return nil
}

type AdminCreateUserForm struct {
	Email    string
	Password string
	Role     string
}

func (f AdminCreateUserForm) Validate() error {
	if validate.Var(f.Email, "contains=@") != nil || len(f.Password) < 5 {
		return errors.New("Valid email and password (>=5 chars) required.")
	}
	return nil
}

type AdminUpdateUserForm struct {
	Email     string
	Role      string
	IsEnabled bool
}

func (f AdminUpdateUserForm) Validate() error {
	if validate.Var(f.Email, "contains=@") != nil {
		return errors.New("Valid email required.")
	}
	return nil
}

// AdminShowForm carries the wire-format timestamps for show creation.
type AdminShowForm struct {
	Name      string
	StartTime string
	EndTime   string
}

func (f AdminShowForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" || f.StartTime == "" || f.EndTime == "" {
		return errors.New("Name, start time, and end time are required.")
	}
	start, err := format.ParseWire(f.StartTime)
	if err != nil {
		return errors.New("Name, start time, and end time are required.")
	}
	end, err := format.ParseWire(f.EndTime)
	if err != nil {
		return errors.New("Name, start time, and end time are required.")
	}
	if !start.Before(end) {
		return errors.New("Start must be before end.")
	}
	return nil
}

// ValidateWindow guards the browse filter before any network call is made.
func ValidateWindow(start, end time.Time) error {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return errors.New("Enter a valid start and end time (start must be before end).")
	}
	return nil
}

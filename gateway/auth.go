package gateway

import (
	"context"
	"net/http"

	"safaribook/entity"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MessageResponse is the backend's generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (MessageResponse, error) {
	var res MessageResponse
	err := c.do(ctx, http.MethodPost, "/register", requestOptions{body: req}, &res)
	return res, err
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	Role  string      `json:"role"`
	User  entity.User `json:"user"`
}

// Session converts a successful login into the session the flow state owns.
func (r LoginResponse) Session() entity.Session {
	user := r.User
	return entity.Session{Token: r.Token, Role: r.Role, User: &user}
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	var res LoginResponse
	err := c.do(ctx, http.MethodPost, "/login", requestOptions{body: req}, &res)
	return res, err
}

package gateway

import (
	"context"
	"net/http"
	"net/url"
)

// Admin endpoints require a bearer token with an elevated role; the backend
// enforces the role on every call.

type AdminCreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

func (c *Client) AdminCreateUser(ctx context.Context, token string, req AdminCreateUserRequest) (MessageResponse, error) {
	var res MessageResponse
	err := c.do(ctx, http.MethodPost, "/admin/createUser", requestOptions{token: token, body: req}, &res)
	return res, err
}

type AdminUpdateUserRequest struct {
	Email     string `json:"email"`
	Role      string `json:"role,omitempty"`
	IsEnabled *bool  `json:"isEnabled,omitempty"`
}

func (c *Client) AdminUpdateUser(ctx context.Context, token string, req AdminUpdateUserRequest) (MessageResponse, error) {
	var res MessageResponse
	err := c.do(ctx, http.MethodPost, "/admin/updateUser", requestOptions{token: token, body: req}, &res)
	return res, err
}

func (c *Client) AdminBookingsByEmail(ctx context.Context, token, email string) (ListBookingsResponse, error) {
	var res ListBookingsResponse
	err := c.do(ctx, http.MethodGet, "/admin/bookings/"+url.PathEscape(email), requestOptions{token: token}, &res)
	return res, err
}

type ShowTicketInput struct {
	TicketID         int `json:"ticketId"`
	RemainingTickets int `json:"remainingTickets"`
}

type AdminCreateShowRequest struct {
	Name      string            `json:"name"`
	StartTime string            `json:"startTime"`
	EndTime   string            `json:"endTime"`
	Tickets   []ShowTicketInput `json:"tickets,omitempty"`
}

type CreateShowResponse struct {
	Message  string `json:"message"`
	ShowName string `json:"showName"`
}

func (c *Client) AdminCreateShow(ctx context.Context, token string, req AdminCreateShowRequest) (CreateShowResponse, error) {
	var res CreateShowResponse
	err := c.do(ctx, http.MethodPost, "/admin/createShow", requestOptions{token: token, body: req}, &res)
	return res, err
}

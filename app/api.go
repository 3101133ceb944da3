package app

import (
	"context"

	"safaribook/gateway"
)

// API is the slice of the booking backend the pages use.
type API interface {
	Register(ctx context.Context, req gateway.RegisterRequest) (gateway.MessageResponse, error)
	Login(ctx context.Context, req gateway.LoginRequest) (gateway.LoginResponse, error)
	FetchTimings(ctx context.Context, params gateway.TimingsParams) (gateway.TimingsResponse, error)
	CreateBooking(ctx context.Context, token string, req gateway.CreateBookingRequest, idempotencyKey string) (gateway.CreateBookingResponse, error)
	ListBookings(ctx context.Context, token string, params gateway.ListBookingsParams) (gateway.ListBookingsResponse, error)
	InitiatePayment(ctx context.Context, token string, bookingID int, idempotencyKey string) (gateway.PaymentInitResponse, error)
	VerifyPayment(ctx context.Context, token string, paymentID int) (gateway.PaymentVerifyResponse, error)
	AdminCreateUser(ctx context.Context, token string, req gateway.AdminCreateUserRequest) (gateway.MessageResponse, error)
	AdminUpdateUser(ctx context.Context, token string, req gateway.AdminUpdateUserRequest) (gateway.MessageResponse, error)
	AdminBookingsByEmail(ctx context.Context, token, email string) (gateway.ListBookingsResponse, error)
	AdminCreateShow(ctx context.Context, token string, req gateway.AdminCreateShowRequest) (gateway.CreateShowResponse, error)
}

var (
	_ API = (*gateway.Client)(nil)
	_ API = (*gateway.BackendMock)(nil)
)

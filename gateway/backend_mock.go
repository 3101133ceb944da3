package gateway

import (
	"context"
	"sync"

	"safaribook/entity"
)

// BackendMock stands in for the booking backend in flow tests. It records
// every call and serves canned responses.
type BackendMock struct {
	lock sync.Mutex

	RegisterResponse MessageResponse
	RegisterErr      error
	RegisterCalls    []RegisterRequest

	LoginResponse LoginResponse
	LoginErr      error
	LoginCalls    []LoginRequest

	Timings      []entity.SafariTiming
	TimingsErr   error
	TimingsCalls []TimingsParams

	CreateBookingResponse CreateBookingResponse
	CreateBookingErr      error
	CreateBookingCalls    []CreateBookingRequest

	Bookings        []entity.BookingRecord
	ListBookingsErr error
	ListCalls       []ListBookingsParams

	InitiateResponse PaymentInitResponse
	InitiateErr      error
	InitiateCalls    []int

	VerifyResponse PaymentVerifyResponse
	VerifyErr      error
	VerifyCalls    []int

	AdminCreateUserCalls []AdminCreateUserRequest
	AdminCreateUserErr   error

	AdminUpdateUserCalls []AdminUpdateUserRequest
	AdminUpdateUserErr   error

	AdminLookupCalls []string
	AdminLookupErr   error

	AdminCreateShowCalls []AdminCreateShowRequest
	AdminCreateShowErr   error
}

func (m *BackendMock) Register(ctx context.Context, req RegisterRequest) (MessageResponse, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.RegisterCalls = append(m.RegisterCalls, req)
	return m.RegisterResponse, m.RegisterErr
}

func (m *BackendMock) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.LoginCalls = append(m.LoginCalls, req)
	return m.LoginResponse, m.LoginErr
}

func (m *BackendMock) FetchTimings(ctx context.Context, params TimingsParams) (TimingsResponse, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.TimingsCalls = append(m.TimingsCalls, params)
	if m.TimingsErr != nil {
		return TimingsResponse{}, m.TimingsErr
	}
	return TimingsResponse{Results: m.Timings, Limit: params.Limit}, nil
}

func (m *BackendMock) CreateBooking(ctx context.Context, token string, req CreateBookingRequest, idempotencyKey string) (CreateBookingResponse, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.CreateBookingCalls = append(m.CreateBookingCalls, req)
	return m.CreateBookingResponse, m.CreateBookingErr
}

func (m *BackendMock) ListBookings(ctx context.Context, token string, params ListBookingsParams) (ListBookingsResponse, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.ListCalls = append(m.ListCalls, params)
	if m.ListBookingsErr != nil {
		return ListBookingsResponse{}, m.ListBookingsErr
	}
	return ListBookingsResponse{Bookings: m.Bookings}, nil
}

func (m *BackendMock) InitiatePayment(ctx context.Context, token string, bookingID int, idempotencyKey string) (PaymentInitResponse, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.InitiateCalls = append(m.InitiateCalls, bookingID)
	return m.InitiateResponse, m.InitiateErr
}

func (m *BackendMock) VerifyPayment(ctx context.Context, token string, paymentID int) (PaymentVerifyResponse, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.VerifyCalls = append(m.VerifyCalls, paymentID)
	return m.VerifyResponse, m.VerifyErr
}

func (m *BackendMock) AdminCreateUser(ctx context.Context, token string, req AdminCreateUserRequest) (MessageResponse, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.AdminCreateUserCalls = append(m.AdminCreateUserCalls, req)
	return MessageResponse{Message: "created"}, m.AdminCreateUserErr
}

func (m *BackendMock) AdminUpdateUser(ctx context.Context, token string, req AdminUpdateUserRequest) (MessageResponse, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.AdminUpdateUserCalls = append(m.AdminUpdateUserCalls, req)
	return MessageResponse{Message: "updated"}, m.AdminUpdateUserErr
}

func (m *BackendMock) AdminBookingsByEmail(ctx context.Context, token, email string) (ListBookingsResponse, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.AdminLookupCalls = append(m.AdminLookupCalls, email)
	if m.AdminLookupErr != nil {
		return ListBookingsResponse{}, m.AdminLookupErr
	}
	return ListBookingsResponse{Bookings: m.Bookings}, nil
}

func (m *BackendMock) AdminCreateShow(ctx context.Context, token string, req AdminCreateShowRequest) (CreateShowResponse, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.AdminCreateShowCalls = append(m.AdminCreateShowCalls, req)
	if m.AdminCreateShowErr != nil {
		return CreateShowResponse{}, m.AdminCreateShowErr
	}
	return CreateShowResponse{Message: "created", ShowName: req.Name}, nil
}

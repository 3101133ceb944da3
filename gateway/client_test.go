package gateway_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safaribook/authevents"
	"safaribook/entity"
	"safaribook/gateway"
)

// stubBackend is an in-process booking backend for client tests.
type stubBackend struct {
	e *echo.Echo

	lastAuthorization string
	lastCacheControl  string
	lastIdempotency   string
	lastQuery         map[string]string
}

func newStubBackend() *stubBackend {
	b := &stubBackend{e: echo.New()}

	b.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			b.lastAuthorization = c.Request().Header.Get("Authorization")
			b.lastCacheControl = c.Request().Header.Get("Cache-Control")
			b.lastIdempotency = c.Request().Header.Get("Idempotency-Key")
			b.lastQuery = map[string]string{}
			for key, values := range c.QueryParams() {
				b.lastQuery[key] = values[0]
			}
			return next(c)
		}
	})

	return b
}

func newTestClient(t *testing.T, backend *stubBackend) (*gateway.Client, *authevents.Registry) {
	t.Helper()

	server := httptest.NewServer(backend.e)
	t.Cleanup(server.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	unauthorized := authevents.NewRegistry()
	return gateway.NewClient(server.URL, 5*time.Second, unauthorized, logger), unauthorized
}

func TestLoginSendsCredentialsAndBuildsSession(t *testing.T) {
	backend := newStubBackend()
	backend.e.POST("/login", func(c echo.Context) error {
		var req gateway.LoginRequest
		require.NoError(t, c.Bind(&req))
		assert.Equal(t, "asha@example.com", req.Email)

		return c.JSON(http.StatusOK, map[string]any{
			"token": "jwt",
			"role":  entity.RoleAdmin,
			"user":  map[string]string{"name": "Asha", "email": req.Email},
		})
	})
	client, _ := newTestClient(t, backend)

	res, err := client.Login(context.Background(), gateway.LoginRequest{
		Email:    "asha@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	session := res.Session()
	assert.Equal(t, "jwt", session.Token)
	assert.True(t, session.IsAdmin())
	assert.Equal(t, "Asha", session.DisplayName())

	assert.Empty(t, backend.lastAuthorization) // login carries no bearer
	assert.Equal(t, "no-store", backend.lastCacheControl)
}

func TestFetchTimingsForwardsWindowAndPaging(t *testing.T) {
	backend := newStubBackend()
	backend.e.GET("/safari-timings", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"results": []map[string]any{{
				"showId":    3,
				"startTime": "2026-10-12T06:00:00Z",
				"endTime":   "2026-10-12T09:00:00Z",
				"tickets": []map[string]any{{
					"showTicketId":     7,
					"ticketId":         1,
					"price":            "500",
					"remainingTickets": 4,
				}},
			}},
			"limit": 9,
		})
	})
	client, _ := newTestClient(t, backend)

	start := time.Date(2026, time.October, 12, 0, 0, 0, 0, time.UTC)
	res, err := client.FetchTimings(context.Background(), gateway.TimingsParams{
		Start: start,
		End:   start.AddDate(0, 0, 7),
		Limit: 9,
		Page:  2,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-10-12T00:00:00Z", backend.lastQuery["startTime"])
	assert.Equal(t, "2026-10-19T00:00:00Z", backend.lastQuery["endTime"])
	assert.Equal(t, "9", backend.lastQuery["limit"])
	assert.Equal(t, "2", backend.lastQuery["page"])

	require.Len(t, res.Results, 1)
	ticket := res.Results[0].Tickets[0]
	assert.Equal(t, entity.Rupees(500), ticket.Price) // string price tolerated
	assert.Equal(t, "regular_ticket", ticket.Kind())
}

func TestCreateBookingSendsBearerAndIdempotencyKey(t *testing.T) {
	backend := newStubBackend()
	backend.e.POST("/bookings", func(c echo.Context) error {
		var req gateway.CreateBookingRequest
		require.NoError(t, c.Bind(&req))
		assert.Equal(t, 7, req.ShowTicketID)
		assert.Equal(t, 2, req.Quantity)
		return c.JSON(http.StatusCreated, map[string]any{"bookingId": 42, "status": "pending"})
	})
	client, _ := newTestClient(t, backend)

	res, err := client.CreateBooking(context.Background(), "jwt", gateway.CreateBookingRequest{
		ShowTicketID: 7,
		Quantity:     2,
	}, "key-1")
	require.NoError(t, err)

	assert.Equal(t, 42, res.BookingID)
	assert.Equal(t, "Bearer jwt", backend.lastAuthorization)
	assert.Equal(t, "key-1", backend.lastIdempotency)
}

func TestErrorBodyMessagePrecedence(t *testing.T) {
	tests := []struct {
		name string
		body any
		want string
	}{
		{
			name: "message field wins",
			body: map[string]string{"message": "sold out", "error": "conflict"},
			want: "sold out",
		},
		{
			name: "error field is the fallback",
			body: map[string]string{"error": "conflict"},
			want: "conflict",
		},
		{
			name: "silent body gets generic message",
			body: map[string]string{},
			want: "request to /bookings failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newStubBackend()
			backend.e.POST("/bookings", func(c echo.Context) error {
				return c.JSON(http.StatusConflict, tt.body)
			})
			client, _ := newTestClient(t, backend)

			_, err := client.CreateBooking(context.Background(), "jwt", gateway.CreateBookingRequest{}, "")
			require.Error(t, err)

			var apiErr *gateway.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
			assert.Equal(t, tt.want, apiErr.Message)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestUnparsableErrorBodyGetsGenericMessage(t *testing.T) {
	backend := newStubBackend()
	backend.e.GET("/bookings", func(c echo.Context) error {
		return c.String(http.StatusInternalServerError, "<html>boom</html>")
	})
	client, _ := newTestClient(t, backend)

	_, err := client.ListBookings(context.Background(), "jwt", gateway.ListBookingsParams{})
	require.Error(t, err)

	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "request to /bookings")
}

func TestRejectedSessionNotifiesHandlersOnce(t *testing.T) {
	backend := newStubBackend()
	backend.e.GET("/bookings", func(c echo.Context) error {
		return c.JSON(http.StatusForbidden, map[string]string{"message": "expired"})
	})
	client, unauthorized := newTestClient(t, backend)

	notified := 0
	unauthorized.Register(func() { notified++ })

	_, err := client.ListBookings(context.Background(), "jwt", gateway.ListBookingsParams{})
	require.EqualError(t, err, "expired")
	assert.Equal(t, 1, notified)
}

func TestFailedLoginWithoutTokenDoesNotSignal(t *testing.T) {
	backend := newStubBackend()
	backend.e.POST("/login", func(c echo.Context) error {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "bad credentials"})
	})
	client, unauthorized := newTestClient(t, backend)

	notified := 0
	unauthorized.Register(func() { notified++ })

	_, err := client.Login(context.Background(), gateway.LoginRequest{Email: "a@b.com", Password: "x"})
	require.EqualError(t, err, "bad credentials")
	assert.Equal(t, 0, notified)
}

func TestUnauthorizedOnProtectedPathWithoutTokenStillSignals(t *testing.T) {
	backend := newStubBackend()
	backend.e.GET("/bookings", func(c echo.Context) error {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "login required"})
	})
	client, unauthorized := newTestClient(t, backend)

	notified := 0
	unauthorized.Register(func() { notified++ })

	_, err := client.ListBookings(context.Background(), "", gateway.ListBookingsParams{})
	require.Error(t, err)
	assert.Equal(t, 1, notified)
}

func TestNonObjectSuccessBodyIsMalformed(t *testing.T) {
	bodies := map[string]func(echo.Context) error{
		"array": func(c echo.Context) error {
			return c.JSON(http.StatusOK, []string{"unexpected"})
		},
		"null": func(c echo.Context) error {
			return c.JSONBlob(http.StatusOK, []byte("null"))
		},
		"number": func(c echo.Context) error {
			return c.JSONBlob(http.StatusOK, []byte("42"))
		},
	}

	for name, handler := range bodies {
		t.Run(name, func(t *testing.T) {
			backend := newStubBackend()
			backend.e.POST("/payments/verify", handler)
			client, _ := newTestClient(t, backend)

			_, err := client.VerifyPayment(context.Background(), "jwt", 9)
			assert.ErrorIs(t, err, gateway.ErrMalformedResponse)
		})
	}
}

func TestUnparsableSuccessBodyFallsBackToEmptyObject(t *testing.T) {
	backend := newStubBackend()
	backend.e.POST("/payments/verify", func(c echo.Context) error {
		return c.HTML(http.StatusOK, "<html>ok</html>")
	})
	client, _ := newTestClient(t, backend)

	res, err := client.VerifyPayment(context.Background(), "jwt", 9)
	require.NoError(t, err)
	assert.Empty(t, res.Status)
}

func TestAdminBookingsEscapesEmailInPath(t *testing.T) {
	backend := newStubBackend()
	var gotEmail string
	backend.e.GET("/admin/bookings/:email", func(c echo.Context) error {
		gotEmail = c.Param("email")
		return c.JSON(http.StatusOK, map[string]any{"bookings": []any{}})
	})
	client, _ := newTestClient(t, backend)

	_, err := client.AdminBookingsByEmail(context.Background(), "jwt", "asha+vip@example.com")
	require.NoError(t, err)
	assert.Equal(t, "asha+vip@example.com", gotEmail)
}

func TestNetworkFailureWrapsPath(t *testing.T) {
	unauthorized := authevents.NewRegistry()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	client := gateway.NewClient("http://127.0.0.1:1", time.Second, unauthorized, logger)

	_, err := client.Login(context.Background(), gateway.LoginRequest{Email: "a@b.com", Password: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request to /login failed")
}

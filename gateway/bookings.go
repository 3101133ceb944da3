package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"safaribook/entity"
)

const defaultBookingsLimit = 10

// CreateBookingRequest reserves quantity seats against one ticket offering.
// The backend knows the offering by its show-ticket id.
type CreateBookingRequest struct {
	ShowTicketID int `json:"id"`
	Quantity     int `json:"quantity"`
}

type CreateBookingResponse struct {
	BookingID int    `json:"bookingId"`
	Status    string `json:"status"`
}

// CreateBooking creates a booking for the authenticated user. The
// idempotency key, when supplied, lets the backend deduplicate a resubmitted
// attempt.
func (c *Client) CreateBooking(ctx context.Context, token string, req CreateBookingRequest, idempotencyKey string) (CreateBookingResponse, error) {
	var res CreateBookingResponse
	err := c.do(ctx, http.MethodPost, "/bookings", requestOptions{
		token:          token,
		body:           req,
		idempotencyKey: idempotencyKey,
	}, &res)
	return res, err
}

type ListBookingsParams struct {
	Limit  int
	Page   int
	Offset int
}

type ListBookingsResponse struct {
	Bookings []entity.BookingRecord `json:"bookings"`
}

func (c *Client) ListBookings(ctx context.Context, token string, params ListBookingsParams) (ListBookingsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultBookingsLimit
	}

	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}

	var res ListBookingsResponse
	err := c.do(ctx, http.MethodGet, "/bookings?"+q.Encode(), requestOptions{token: token}, &res)
	return res, err
}

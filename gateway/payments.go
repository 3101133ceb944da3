package gateway

import (
	"context"
	"net/http"
)

type PaymentInitResponse struct {
	PaymentID int    `json:"paymentId"`
	Status    string `json:"status"`
}

// InitiatePayment starts the payment for a booking. The receipt it returns
// is the first phase of the two-phase payment commit.
func (c *Client) InitiatePayment(ctx context.Context, token string, bookingID int, idempotencyKey string) (PaymentInitResponse, error) {
	var res PaymentInitResponse
	err := c.do(ctx, http.MethodPost, "/payments/initiate", requestOptions{
		token:          token,
		body:           map[string]int{"bookingId": bookingID},
		idempotencyKey: idempotencyKey,
	}, &res)
	return res, err
}

type PaymentVerifyResponse struct {
	Status string `json:"status"`
}

// VerifyPayment completes the payment started by InitiatePayment.
func (c *Client) VerifyPayment(ctx context.Context, token string, paymentID int) (PaymentVerifyResponse, error) {
	var res PaymentVerifyResponse
	err := c.do(ctx, http.MethodPost, "/payments/verify", requestOptions{
		token: token,
		body:  map[string]int{"paymentId": paymentID},
	}, &res)
	return res, err
}

// Package gateway wraps outbound HTTP calls to the booking backend. Every
// domain operation is a thin typed wrapper over the one request primitive.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v3"
	"github.com/sirupsen/logrus"

	"safaribook/authevents"
)

// Client is the single request entry point to the booking backend.
type Client struct {
	baseURL      string
	http         *http.Client
	unauthorized *authevents.Registry
	log          logrus.FieldLogger
}

func NewClient(baseURL string, timeout time.Duration, unauthorized *authevents.Registry, log logrus.FieldLogger) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		http:         &http.Client{Timeout: timeout},
		unauthorized: unauthorized,
		log:          log,
	}
}

type requestOptions struct {
	token          string
	body           any
	idempotencyKey string
}

// do issues the HTTP call. It always sends and expects JSON, attaches the
// bearer token when one is supplied and disables response caching. Failures
// resolve to *APIError. A success body that parses to anything other than a
// JSON object resolves to ErrMalformedResponse; one that does not parse at
// all is treated as an empty object.
func (c *Client) do(ctx context.Context, method, path string, opts requestOptions, out any) error {
	var reqBody io.Reader
	if opts.body != nil {
		raw, err := json.Marshal(opts.body)
		if err != nil {
			return fmt.Errorf("could not encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("could not build request: %w", err)
	}

	correlationID := shortuuid.New()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Correlation-ID", correlationID)
	if opts.token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.token)
	}
	if opts.idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", opts.idempotencyKey)
	}

	logger := c.log.WithFields(logrus.Fields{
		"method":         method,
		"path":           path,
		"correlation_id": correlationID,
	})
	logger.Debug("calling booking API")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("could not read response from %s: %w", path, err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		if c.shouldSignalUnauthorized(res.StatusCode, opts.token, path) {
			logger.WithField("status", res.StatusCode).Warn("session rejected by backend")
			c.unauthorized.Notify()
		}
		return &APIError{
			StatusCode: res.StatusCode,
			Path:       path,
			Message:    errorMessage(raw, path),
		}
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}

	// an unparsable success body decodes as an empty object; a parsable one
	// must be a JSON object
	var probe any
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil
	}
	if _, ok := probe.(map[string]any); !ok {
		return ErrMalformedResponse
	}
	if out != nil {
		if err := json.Unmarshal(trimmed, out); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
	}
	return nil
}

// shouldSignalUnauthorized distinguishes "never logged in" failures from
// "session died mid-use": a failed login or registration without a token is
// not a dead session, everything else is.
func (c *Client) shouldSignalUnauthorized(status int, token, path string) bool {
	if status != http.StatusUnauthorized && status != http.StatusForbidden {
		return false
	}
	return token != "" || (!strings.HasPrefix(path, "/login") && !strings.HasPrefix(path, "/register"))
}

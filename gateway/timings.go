package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"safaribook/entity"
)

const defaultTimingsLimit = 12

type TimingsParams struct {
	Start  time.Time
	End    time.Time
	Limit  int
	Page   int
	Offset int
}

type TimingsResponse struct {
	Results []entity.SafariTiming `json:"results"`
	Limit   int                   `json:"limit"`
	Offset  int                   `json:"offset"`
}

// FetchTimings lists the safari slots inside the given window. Page and
// offset are only forwarded when positive.
func (c *Client) FetchTimings(ctx context.Context, params TimingsParams) (TimingsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultTimingsLimit
	}

	q := url.Values{}
	q.Set("startTime", params.Start.UTC().Format(time.RFC3339))
	q.Set("endTime", params.End.UTC().Format(time.RFC3339))
	q.Set("limit", strconv.Itoa(limit))
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}

	var res TimingsResponse
	err := c.do(ctx, http.MethodGet, "/safari-timings?"+q.Encode(), requestOptions{}, &res)
	return res, err
}

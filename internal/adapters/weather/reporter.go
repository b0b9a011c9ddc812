package weather

import (
	"context"

	weatherport "star-dog-walker/internal/ports/weather"
)

// Reporter implementa el port weather.Reporter sobre el Client HTTP.
type Reporter struct {
	client *Client
}

var _ weatherport.Reporter = (*Reporter)(nil)

func NewReporter(client *Client) *Reporter {
	return &Reporter{client: client}
}

func (r *Reporter) Current(ctx context.Context, location string) (string, error) {
	if r == nil || r.client == nil {
		return "", ErrNotConfigured
	}
	return r.client.CurrentConditions(ctx, location)
}

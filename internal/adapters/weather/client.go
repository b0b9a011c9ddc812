package weather

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"star-dog-walker/internal/platform/httpclient"
)

var (
	ErrNotConfigured = errors.New("weather client not configured")
	ErrUpstream      = errors.New("weather upstream error")
)

// Config del cliente de clima. BaseURL y APIKey vienen de env vars
// en quien lo instancia (router/main).
type Config struct {
	BaseURL string
	APIKey  string

	// Header para la API key; default "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
}

type Client struct {
	http         *httpclient.Client
	apiKey       string
	apiKeyHeader string
}

func NewClient(cfg Config) (*Client, error) {
	header := strings.TrimSpace(cfg.APIKeyHeader)
	if header == "" {
		header = "X-Api-Key"
	}

	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:         hc,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: header,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != ""
}

type conditionsResponse struct {
	Summary string `json:"summary"`
}

// CurrentConditions consulta el upstream por el clima actual.
func (c *Client) CurrentConditions(ctx context.Context, location string) (string, error) {
	if !c.IsConfigured() {
		return "", ErrNotConfigured
	}

	location = strings.TrimSpace(location)
	if location == "" {
		return "", errors.New("location required")
	}

	headers := map[string]string{}
	if c.apiKey != "" {
		headers[c.apiKeyHeader] = c.apiKey
	}

	var out conditionsResponse
	path := "/current?location=" + url.QueryEscape(location)
	if err := c.http.DoJSON(ctx, http.MethodGet, path, headers, nil, &out); err != nil {
		return "", errors.Join(ErrUpstream, err)
	}

	return strings.TrimSpace(out.Summary), nil
}

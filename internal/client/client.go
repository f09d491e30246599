package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/canchapp/booking_client/internal/config"
)

// Client is the shared HTTP gateway to the booking backend. It owns the
// request timeout, bearer authentication and failure classification; the
// endpoint groups (courts, reservations, admin) are built on top of it.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	breaker *gobreaker.CircuitBreaker[response]
	logger  *zap.Logger
}

type response struct {
	status int
	body   []byte
}

func New(cfg *config.Config, logger *zap.Logger) *Client {
	settings := gobreaker.Settings{
		Name:    "booking-backend",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		token:   cfg.APIToken,
		httpc:   &http.Client{Timeout: cfg.HTTPTimeout},
		breaker: gobreaker.NewCircuitBreaker[response](settings),
		logger:  logger,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, nil)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any, headers http.Header) error {
	return c.do(ctx, method, path, nil, body, out, headers)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, headers http.Header) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for key, values := range headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.breaker.Execute(func() (response, error) {
		res, err := c.httpc.Do(req)
		if err != nil {
			// Transport failure (refused, timed out). Counts against
			// the breaker and surfaces as retryable.
			return response{}, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		defer res.Body.Close()

		data, err := io.ReadAll(res.Body)
		if err != nil {
			return response{}, fmt.Errorf("%w: read response: %v", ErrBackendUnavailable, err)
		}
		if res.StatusCode >= 500 {
			return response{}, &APIError{Status: res.StatusCode, Message: errorMessage(data)}
		}
		return response{status: res.StatusCode, body: data}, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: circuit breaker open", ErrBackendUnavailable)
		}
		c.logger.Warn("Backend call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return err
	}

	if resp.status >= 400 {
		return &APIError{Status: resp.status, Message: errorMessage(resp.body)}
	}

	if out != nil && len(resp.body) > 0 {
		if err := json.Unmarshal(resp.body, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// requireToken is the precondition for administrator-scoped endpoints.
func (c *Client) requireToken() error {
	if c.token == "" {
		return ErrNoToken
	}
	return nil
}

func errorMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return strings.TrimSpace(string(body))
}

// Package api is the gateway to the wholesale ordering backend: a thin
// request/response translation layer over its REST surface. It signs requests
// with the session's bearer token, renames wire fields into the domain shape
// and validates responses at the boundary so malformed payloads fail fast
// with a typed error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/wholesalemart/orderdesk/internal/core/ports"
	"github.com/wholesalemart/orderdesk/internal/metrics"
)

// Logical endpoint names used as metric labels.
const (
	epAuthLogin     = "auth_login"
	epAuthOTPSend   = "auth_otp_send"
	epAuthOTPVerify = "auth_otp_verify"
	epCatalogPublic = "catalog_public"
	epCatalogAdmin  = "catalog_admin"
	epProductCreate = "product_create"
	epProductUpdate = "product_update"
	epProductDelete = "product_delete"
	epProductStatus = "product_status"
	epOrdersList    = "orders_list"
	epOrderCreate   = "order_create"
	epOrderStatus   = "order_status"
	epDashboard     = "dashboard_stats"
)

// ErrBadResponse marks a server response that did not decode or validate
// against the expected shape.
var ErrBadResponse = errors.New("malformed server response")

// APIError is a non-2xx response decoded from the backend's error envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// Client implements ports.Gateway over HTTP.
type Client struct {
	base     string
	http     *http.Client
	tokens   ports.TokenSource
	logger   zerolog.Logger
	validate *payloadValidator

	// orderInFlight guards order placement against double submission.
	orderInFlight atomic.Bool
}

var _ ports.Gateway = (*Client)(nil)

// New builds a gateway client for the given origin. timeout zero disables the
// client-side deadline entirely.
func New(baseURL string, timeout time.Duration, tokens ports.TokenSource, logger zerolog.Logger) *Client {
	return &Client{
		base:     baseURL,
		http:     &http.Client{Timeout: timeout},
		tokens:   tokens,
		logger:   logger,
		validate: newPayloadValidator(),
	}
}

// errorEnvelope covers both error shapes the backend emits.
type errorEnvelope struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

// do sends one JSON request and decodes the response into out (when non-nil).
// A bearer token is attached when the session holds one; without a token the
// request goes out unauthenticated and the server decides.
func (c *Client) do(ctx context.Context, endpoint, method, path string, query url.Values, body, out any) error {
	return c.doWithHeaders(ctx, endpoint, method, path, query, body, out, nil)
}

func (c *Client) doWithHeaders(ctx context.Context, endpoint, method, path string, query url.Values, body, out any, headers map[string]string) error {
	var payload io.Reader
	if body != nil {
		if err := c.validate.check(body); err != nil {
			return err
		}
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encoding request: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return fmt.Errorf("api: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("api request failed")
		return fmt.Errorf("api: %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	metrics.APIRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode >= 400 {
		return c.decodeError(endpoint, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("api response did not decode")
		return fmt.Errorf("%w: %s: %v", ErrBadResponse, endpoint, err)
	}
	if err := c.validate.checkResponse(out); err != nil {
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("api response failed validation")
		return fmt.Errorf("%w: %s: %v", ErrBadResponse, endpoint, err)
	}
	return nil
}

func (c *Client) decodeError(endpoint string, resp *http.Response) error {
	msg := http.StatusText(resp.StatusCode)
	var envelope errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		if envelope.Detail != "" {
			msg = envelope.Detail
		} else if envelope.Error != "" {
			msg = envelope.Error
		}
	}
	c.logger.Warn().Int("status", resp.StatusCode).Str("endpoint", endpoint).Str("message", msg).Msg("api error response")
	return &APIError{Status: resp.StatusCode, Message: msg}
}

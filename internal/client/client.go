// Package client implements a signed HTTP client for the EcoFlow open API.
// It performs the two supported read operations (device list and device
// quota) and normalizes HTTP-level and vendor-level failures into distinct
// error types.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ecoflow-tools/ecoflow-tool/internal/models"
	"github.com/ecoflow-tools/ecoflow-tool/pkg/signer"
)

const (
	// DefaultAPIHost is the vendor's primary API endpoint.
	DefaultAPIHost = "https://api.ecoflow.com"

	// EUAPIHost serves accounts registered through the European portal.
	EUAPIHost = "https://api-eu.ecoflow.com"

	deviceListPath  = "/iot-open/sign/device/list"
	deviceQuotaPath = "/iot-open/sign/device/quota/all"

	// defaultTimeout bounds every outbound call so a hung request cannot
	// block an interactive caller indefinitely.
	defaultTimeout = 30 * time.Second
)

// Doer performs a single HTTP request. Satisfied by *http.Client; tests
// substitute a fake to assert on outgoing requests without network access.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds the connection settings for the EcoFlow API client.
type Config struct {
	APIHost   string        // Optional; if empty, DefaultAPIHost is used
	AccessKey string        // Public API identifier, sent with every request
	SecretKey string        // HMAC signing key, never transmitted
	Timeout   time.Duration // Optional; if zero, defaultTimeout is used
	Transport Doer          // Optional; if nil, an *http.Client is used
}

// Client issues signed read requests against the EcoFlow API. All state is
// read-only after construction, so a single Client is safe for concurrent
// use.
type Client struct {
	apiHost   string
	signer    *signer.Signer
	transport Doer
	logger    zerolog.Logger
}

// New validates the credentials and returns a ready-to-use Client. Missing
// credentials fail here with ErrConfiguration so no unsigned request is
// ever attempted.
func New(cfg Config, logger zerolog.Logger) (*Client, error) {
	sgn, err := signer.New(cfg.AccessKey, cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	apiHost := cfg.APIHost
	if apiHost == "" {
		apiHost = DefaultAPIHost
	}

	transport := cfg.Transport
	if transport == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		transport = &http.Client{Timeout: timeout}
	}

	return &Client{
		apiHost:   apiHost,
		signer:    sgn,
		transport: transport,
		logger:    logger,
	}, nil
}

// ListDevices fetches all devices bound to the account, in the order the
// vendor returns them. An account with no devices yields an empty slice,
// not an error.
func (c *Client) ListDevices(ctx context.Context) ([]models.Device, error) {
	data, err := c.get(ctx, deviceListPath, nil)
	if err != nil {
		return nil, err
	}

	var devices []models.Device
	if len(data) > 0 {
		if err := json.Unmarshal(data, &devices); err != nil {
			return nil, fmt.Errorf("failed to decode device list: %w", err)
		}
	}
	return devices, nil
}

// GetDeviceQuota fetches the full telemetry snapshot for one device. The
// serial number must be non-empty; its format is left for the vendor to
// validate.
func (c *Client) GetDeviceQuota(ctx context.Context, serialNumber string) (models.Quota, error) {
	if serialNumber == "" {
		return nil, ErrSerialRequired
	}

	data, err := c.get(ctx, deviceQuotaPath, map[string]string{"sn": serialNumber})
	if err != nil {
		return nil, err
	}

	var quota models.Quota
	if len(data) > 0 {
		if err := json.Unmarshal(data, &quota); err != nil {
			return nil, fmt.Errorf("failed to decode quota for device %s: %w", serialNumber, err)
		}
	}
	return quota, nil
}

// get performs one signed GET request and unwraps the vendor envelope.
// Query parameters are part of the signed material, so the same map feeds
// both the signer and the URL.
func (c *Client) get(ctx context.Context, path string, params map[string]string) (json.RawMessage, error) {
	headers, err := c.signer.Headers(params)
	if err != nil {
		return nil, err
	}

	endpoint := c.apiHost + path
	if len(params) > 0 {
		query := url.Values{}
		for k, v := range params {
			query.Set(k, v)
		}
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", endpoint, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Content-Type", "application/json;charset=UTF-8")
	req.Header.Set("Accept", "application/json")

	requestID := uuid.New().String()
	c.logger.Debug().
		Str("request_id", requestID).
		Str("url", endpoint).
		Msg("Sending EcoFlow API request")

	resp, err := c.transport.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("request_id", requestID).Msg("EcoFlow API request failed")
		return nil, &TransportError{Host: c.apiHost, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Host: c.apiHost, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("request_id", requestID).
			Msg("EcoFlow API returned non-success status")
		return nil, &TransportError{Host: c.apiHost, Err: fmt.Errorf("unexpected status code %d", resp.StatusCode)}
	}

	var env models.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", c.apiHost, err)
	}

	if !env.OK() {
		c.logger.Warn().
			Str("code", env.Code).
			Str("message", env.Message).
			Str("request_id", requestID).
			Msg("EcoFlow API signalled vendor error")
		return nil, &VendorError{Code: env.Code, Message: env.Message}
	}

	c.logger.Debug().Str("request_id", requestID).Msg("EcoFlow API request successful")
	return env.Data, nil
}

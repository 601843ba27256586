// Package tool exposes the two assistant-facing operations and renders API
// results as plain text blocks readable by a language model or a human.
package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ecoflow-tools/ecoflow-tool/internal/client"
	"github.com/ecoflow-tools/ecoflow-tool/internal/models"
)

// API is the subset of the EcoFlow client the tool depends on.
type API interface {
	ListDevices(ctx context.Context) ([]models.Device, error)
	GetDeviceQuota(ctx context.Context, serialNumber string) (models.Quota, error)
}

// Tool wraps an API client and formats its results for an assistant host.
type Tool struct {
	api    API
	logger zerolog.Logger
}

// New returns a Tool backed by the given API client.
func New(api API, logger zerolog.Logger) *Tool {
	return &Tool{
		api:    api,
		logger: logger,
	}
}

// ListDevices returns a text block describing every device on the account.
// An account with no devices is a normal condition and renders an explicit
// notice rather than an error.
func (t *Tool) ListDevices(ctx context.Context) (string, error) {
	devices, err := t.api.ListDevices(ctx)
	if err != nil {
		return "", err
	}

	if len(devices) == 0 {
		t.logger.Info().Msg("Device list is empty")
		return "No devices found in your EcoFlow account.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d EcoFlow device(s):\n\n", len(devices))
	for _, device := range devices {
		status := "Offline"
		if device.Online.Bool() {
			status = "Online"
		}
		fmt.Fprintf(&b, "• %s (%s)\n", device.DeviceName, device.ProductName)
		fmt.Fprintf(&b, "  Serial Number: %s\n", device.SerialNumber)
		fmt.Fprintf(&b, "  Status: %s\n\n", status)
	}

	t.logger.Info().Int("count", len(devices)).Msg("Rendered device list")
	return b.String(), nil
}

// GetDeviceQuota returns a text block listing the device's current
// telemetry as flattened dotted-path fields.
func (t *Tool) GetDeviceQuota(ctx context.Context, serialNumber string) (string, error) {
	quota, err := t.api.GetDeviceQuota(ctx, serialNumber)
	if err != nil {
		return "", err
	}

	if len(quota) == 0 {
		t.logger.Info().Str("sn", serialNumber).Msg("Quota payload is empty")
		return fmt.Sprintf("No data available for device %s. The device may be offline or not supported.", serialNumber), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Device Information for %s:\n\n", serialNumber)
	for _, entry := range client.Flatten(quota) {
		fmt.Fprintf(&b, "  %s: %v\n", entry.Key, entry.Value)
	}

	t.logger.Info().Str("sn", serialNumber).Msg("Rendered device quota")
	return b.String(), nil
}

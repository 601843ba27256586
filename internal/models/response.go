package models

import "encoding/json"

// SuccessCode is the vendor status code signalling a successful call.
const SuccessCode = "0"

// Envelope is the generic structure wrapping every EcoFlow API response.
// The vendor status code is independent of the HTTP status: a 200 response
// may still carry a failure code (bad signature, unknown serial, rate
// limit) in this envelope.
type Envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// OK reports whether the envelope signals vendor-level success.
func (e *Envelope) OK() bool {
	return e.Code == SuccessCode
}

// Quota is a device's current telemetry snapshot. The vendor publishes no
// fixed schema and adds or removes fields per product and firmware, so the
// payload is kept as a generic tree of nested mappings, lists, and scalars.
type Quota map[string]any

// Package signer implements the HMAC-SHA256 request signing scheme used by
// the EcoFlow open API. Every request carries four headers: the public
// access key, a millisecond timestamp, a random nonce, and a signature
// computed over the sorted request parameters.
package signer

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Header names expected by the vendor. HTTP header matching is
// case-insensitive, so the canonicalized forms are accepted.
const (
	HeaderAccessKey = "accessKey"
	HeaderNonce     = "nonce"
	HeaderTimestamp = "timestamp"
	HeaderSign      = "sign"
)

var (
	ErrMissingAccessKey = errors.New("access key is required")
	ErrMissingSecretKey = errors.New("secret key is required")
)

// Signer computes request signatures for a fixed key pair. The secret key
// is used only as the HMAC key and is never included in any output.
type Signer struct {
	accessKey string
	secretKey []byte
}

// New validates the key pair and returns a Signer. Both keys must be
// non-empty; signing is never attempted with incomplete credentials.
func New(accessKey, secretKey string) (*Signer, error) {
	if accessKey == "" {
		return nil, ErrMissingAccessKey
	}
	if secretKey == "" {
		return nil, ErrMissingSecretKey
	}
	return &Signer{
		accessKey: accessKey,
		secretKey: []byte(secretKey),
	}, nil
}

// SignString builds the canonical string that gets signed: the request
// parameters merged with accessKey, nonce, and timestamp, sorted by key in
// ascending byte order and joined as key=value pairs with "&".
func (s *Signer) SignString(params map[string]string, timestamp int64, nonce int) string {
	merged := make(map[string]string, len(params)+3)
	for k, v := range params {
		merged[k] = v
	}
	merged[HeaderAccessKey] = s.accessKey
	merged[HeaderNonce] = strconv.Itoa(nonce)
	merged[HeaderTimestamp] = strconv.FormatInt(timestamp, 10)

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, merged[k]))
	}
	return strings.Join(pairs, "&")
}

// Sign computes the HMAC-SHA256 digest of the canonical string under the
// secret key and returns it as a lowercase hex string. The result is
// deterministic for fixed params, timestamp, and nonce.
func (s *Signer) Sign(params map[string]string, timestamp int64, nonce int) string {
	h := hmac.New(sha256.New, s.secretKey)
	h.Write([]byte(s.SignString(params, timestamp, nonce)))
	return hex.EncodeToString(h.Sum(nil))
}

// Headers generates a fresh timestamp and nonce, signs the given request
// parameters, and returns the complete set of authentication headers.
func (s *Signer) Headers(params map[string]string) (map[string]string, error) {
	nonce, err := newNonce()
	if err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	timestamp := time.Now().UnixMilli()

	return map[string]string{
		HeaderAccessKey: s.accessKey,
		HeaderNonce:     strconv.Itoa(nonce),
		HeaderTimestamp: strconv.FormatInt(timestamp, 10),
		HeaderSign:      s.Sign(params, timestamp, nonce),
	}, nil
}

// newNonce returns a random six-digit integer, the width the vendor uses in
// its API examples. Nonces are per-request and never persisted.
func newNonce() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + 100000, nil
}

// Package stripesig verifies Stripe webhook deliveries against the endpoint signing secret.
//
// The Stripe-Signature header has the form "t=<unix>,v1=<hex>[,v1=<hex>...]". The signed
// payload is "<t>.<raw body>" and the signature is hex(HMAC-SHA256(secret, signed payload)).
package stripesig

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"booking-checkout/internal/pkg/clock"
	"booking-checkout/internal/pkg/errs"

	"github.com/stripe/stripe-go/v82"
)

const (
	SignatureHeader  = "Stripe-Signature"
	DefaultTolerance = 300 * time.Second

	timestampKey  = "t"
	signingScheme = "v1"
)

var (
	ErrMalformedSignatureHeader  = errs.New("malformed Stripe-Signature header")
	ErrInvalidSignature          = errs.New("webhook signature mismatch")
	ErrTimestampOutsideTolerance = errs.New("webhook timestamp outside tolerance")
	ErrInvalidPayload            = errs.New("webhook payload is not a valid event")
)

type Header struct {
	Timestamp  int64
	Signatures [][]byte
}

// ParseHeader fails unless at least one t and one v1 entry are present.
// Entries with other schemes (v0, ...) are ignored.
func ParseHeader(header string) (Header, error) {
	var (
		h       Header
		seenTS  bool
		rawSigs []string
	)

	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch key {
		case timestampKey:
			ts, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return Header{}, errs.Mark(errs.Wrapf(err, "timestamp %q", value), ErrMalformedSignatureHeader)
			}
			h.Timestamp = ts
			seenTS = true
		case signingScheme:
			rawSigs = append(rawSigs, value)
		}
	}

	if !seenTS || len(rawSigs) == 0 {
		return Header{}, ErrMalformedSignatureHeader
	}

	for _, raw := range rawSigs {
		sig, err := hex.DecodeString(raw)
		if err != nil {
			// a garbled candidate can never match; keep looking at the others
			continue
		}
		h.Signatures = append(h.Signatures, sig)
	}
	return h, nil
}

func computeMAC(secret []byte, timestamp int64, payload []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return mac.Sum(nil)
}

// ComputeSignature returns the hex v1 signature for payload at timestamp.
func ComputeSignature(secret string, timestamp int64, payload []byte) string {
	return hex.EncodeToString(computeMAC([]byte(secret), timestamp, payload))
}

// SignHeader builds a Stripe-Signature header value, as Stripe would send it.
func SignHeader(secret string, timestamp int64, payload []byte) string {
	return timestampKey + "=" + strconv.FormatInt(timestamp, 10) + "," +
		signingScheme + "=" + ComputeSignature(secret, timestamp, payload)
}

type Verifier struct {
	secret    []byte
	tolerance time.Duration
	clock     clock.Clock
}

func NewVerifier(secret string, tolerance time.Duration, clk clock.Clock) *Verifier {
	return &Verifier{
		secret:    []byte(secret),
		tolerance: tolerance,
		clock:     clk,
	}
}

// Verify checks the signature over the exact bytes received, then the replay window.
func (v *Verifier) Verify(payload []byte, header string) error {
	h, err := ParseHeader(header)
	if err != nil {
		return err
	}

	expected := computeMAC(v.secret, h.Timestamp, payload)
	matched := false
	for _, sig := range h.Signatures {
		if hmac.Equal(expected, sig) {
			matched = true
			break
		}
	}
	if !matched {
		return ErrInvalidSignature
	}

	if v.tolerance > 0 {
		age := v.clock.Now().Sub(time.Unix(h.Timestamp, 0))
		if age < 0 {
			age = -age
		}
		if age > v.tolerance {
			return errs.Mark(errs.Wrapf(ErrTimestampOutsideTolerance, "age %s", age), ErrInvalidSignature)
		}
	}
	return nil
}

// ConstructEvent verifies payload and decodes it into a Stripe event envelope.
func (v *Verifier) ConstructEvent(payload []byte, header string) (*stripe.Event, error) {
	if err := v.Verify(payload, header); err != nil {
		return nil, err
	}

	var event stripe.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, errs.Mark(err, ErrInvalidPayload)
	}
	if event.ID == "" || event.Type == "" {
		return nil, ErrInvalidPayload
	}
	return &event, nil
}

// Package jwtinfo decodes JSON Web Tokens for inspection. Signatures are
// never verified; the decoded claims must not be trusted for authorization.
package jwtinfo

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmptyToken   = errors.New("token is empty")
	ErrInvalidToken = errors.New("invalid JWT token format")
)

// Decoded is the inspected content of a token.
type Decoded struct {
	Header    map[string]any `json:"header"`
	Payload   map[string]any `json:"payload"`
	Algorithm string         `json:"algorithm,omitempty"`
	Signature string         `json:"signature,omitempty"`
	ExpiresAt *time.Time     `json:"expires_at,omitempty"`
	IssuedAt  *time.Time     `json:"issued_at,omitempty"`
	NotBefore *time.Time     `json:"not_before,omitempty"`
}

// Decode splits token and decodes its header and payload.
func Decode(token string) (Decoded, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Decoded{}, ErrEmptyToken
	}

	claims := jwt.MapClaims{}
	parsed, parts, err := jwt.NewParser().ParseUnverified(token, claims)
	// An unknown alg still yields a fully decoded token.
	if err != nil && (parsed == nil || !errors.Is(err, jwt.ErrTokenUnverifiable)) {
		return Decoded{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	d := Decoded{
		Header:  parsed.Header,
		Payload: map[string]any(claims),
	}
	if alg, ok := parsed.Header["alg"].(string); ok {
		d.Algorithm = alg
	}
	if len(parts) == 3 {
		d.Signature = parts[2]
	}
	// Malformed time claims are left in the payload but not surfaced.
	if nd, err := claims.GetExpirationTime(); err == nil && nd != nil {
		d.ExpiresAt = timePtr(nd.Time)
	}
	if nd, err := claims.GetIssuedAt(); err == nil && nd != nil {
		d.IssuedAt = timePtr(nd.Time)
	}
	if nd, err := claims.GetNotBefore(); err == nil && nd != nil {
		d.NotBefore = timePtr(nd.Time)
	}
	return d, nil
}

// Expired reports whether the token carries an exp claim at or before now.
func (d Decoded) Expired(now time.Time) bool {
	return d.ExpiresAt != nil && !now.Before(*d.ExpiresAt)
}

func timePtr(t time.Time) *time.Time {
	t = t.UTC()
	return &t
}

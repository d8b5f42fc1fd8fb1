package jwtinfo

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleToken = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
	"eyJzdWIiOiIxMjM0NTY3ODkwIiwibmFtZSI6IkpvaG4gRG9lIiwiaWF0IjoxNTE2MjM5MDIyfQ." +
	"SflKxwRJSMeKKF2QT4fwpMeJf36POk6yJV_adQssw5c"

func TestDecode_Sample(t *testing.T) {
	d, err := Decode(sampleToken)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"alg": "HS256", "typ": "JWT"}, d.Header)
	assert.Equal(t, "1234567890", d.Payload["sub"])
	assert.Equal(t, "John Doe", d.Payload["name"])
	assert.Equal(t, "HS256", d.Algorithm)
	assert.Equal(t, "SflKxwRJSMeKKF2QT4fwpMeJf36POk6yJV_adQssw5c", d.Signature)
	require.NotNil(t, d.IssuedAt)
	assert.Equal(t, time.Unix(1516239022, 0).UTC(), *d.IssuedAt)
	assert.Nil(t, d.ExpiresAt)
	assert.False(t, d.Expired(time.Now()))
}

func TestDecode_IgnoresSignature(t *testing.T) {
	// Same header and payload with a bogus signature still decodes.
	d, err := Decode(sampleToken[:len(sampleToken)-4] + "AAAA")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", d.Payload["name"])
}

func TestDecode_Expiry(t *testing.T) {
	exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(exp),
		NotBefore: jwt.NewNumericDate(exp.Add(-time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	d, err := Decode("  " + tok + "\n")
	require.NoError(t, err)
	require.NotNil(t, d.ExpiresAt)
	assert.Equal(t, exp, *d.ExpiresAt)
	require.NotNil(t, d.NotBefore)
	assert.Equal(t, exp.Add(-time.Hour), *d.NotBefore)
	assert.False(t, d.Expired(exp.Add(-time.Second)))
	assert.True(t, d.Expired(exp))
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode("   ")
	assert.ErrorIs(t, err, ErrEmptyToken)

	for _, bad := range []string{"abc", "a.b", "not.a.token", "eyJhbGciOiJIUzI1NiJ9.%%%.sig"} {
		_, err := Decode(bad)
		assert.ErrorIs(t, err, ErrInvalidToken, bad)
	}
}

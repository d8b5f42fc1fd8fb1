// Package codec implements the text encoders of the toolbox: Base64 over
// UTF-8 text and URL component escaping with the same character set as
// JavaScript's encodeURIComponent.
package codec

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidBase64      = errors.New("invalid Base64 string")
	ErrInvalidURLEncoding = errors.New("invalid URL encoding")
)

// Base64Encode encodes s with the standard padded alphabet.
func Base64Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Base64Decode decodes standard Base64. ASCII whitespace is skipped and
// padding is optional, so unpadded segments such as JWT parts decode too.
// The decoded bytes must be valid UTF-8 text.
func Base64Decode(s string) (string, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			return -1
		}
		return r
	}, s)
	if s == "" {
		return "", nil
	}
	enc := base64.StdEncoding
	if !strings.HasSuffix(s, "=") {
		if len(s)%4 == 1 {
			return "", fmt.Errorf("%w: truncated input", ErrInvalidBase64)
		}
		enc = base64.RawStdEncoding
	}
	b, err := enc.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: decoded bytes are not UTF-8 text", ErrInvalidBase64)
	}
	return string(b), nil
}

const upperhex = "0123456789ABCDEF"

// URLEncode percent-encodes every byte except A-Z a-z 0-9 and - _ . ! ~ * ' ( ).
func URLEncode(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[c>>4])
		sb.WriteByte(upperhex[c&15])
	}
	return sb.String()
}

// URLDecode reverses URLEncode. '+' is left as is; malformed escapes and
// sequences that do not decode to UTF-8 are rejected.
func URLDecode(s string) (string, error) {
	out, err := url.PathUnescape(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURLEncoding, err)
	}
	if !utf8.ValidString(out) {
		return "", fmt.Errorf("%w: not UTF-8", ErrInvalidURLEncoding)
	}
	return out, nil
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

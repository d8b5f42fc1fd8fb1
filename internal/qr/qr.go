// Package qr renders QR codes locally, either as PNG images or as compact
// text for the terminal.
package qr

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the PNG edge length in pixels.
const DefaultSize = 300

var (
	ErrEmptyText    = errors.New("text is required")
	ErrInvalidLevel = errors.New("unknown recovery level")
)

// ParseLevel maps low|medium|high|highest to a recovery level. Empty means
// medium.
func ParseLevel(s string) (qrcode.RecoveryLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "l":
		return qrcode.Low, nil
	case "", "medium", "m":
		return qrcode.Medium, nil
	case "high", "q":
		return qrcode.High, nil
	case "highest", "h":
		return qrcode.Highest, nil
	}
	return qrcode.Medium, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// PNG encodes text into a size x size PNG. size <= 0 means DefaultSize.
// Surrounding whitespace is trimmed before encoding.
func PNG(text string, size int, level qrcode.RecoveryLevel) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if size <= 0 {
		size = DefaultSize
	}
	b, err := qrcode.Encode(text, level, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return b, nil
}

// DataURL returns the PNG for text as a data:image/png;base64 URL, ready to
// embed in HTML or CSS.
func DataURL(text string, size int, level qrcode.RecoveryLevel) (string, error) {
	b, err := PNG(text, size, level)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(b), nil
}

// WriteFile writes the PNG for text to path.
func WriteFile(path, text string, size int, level qrcode.RecoveryLevel) error {
	b, err := PNG(text, size, level)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Terminal renders text with half-block characters, two modules per line.
func Terminal(text string, level qrcode.RecoveryLevel) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	q, err := qrcode.New(text, level)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}
	return q.ToSmallString(false), nil
}

// Package jsonfmt pretty-prints, minifies and highlights JSON documents.
// Formatting works on the raw text, so key order and number spelling are
// kept exactly as written.
package jsonfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/devtoolbox/devtoolbox/internal/highlight"
)

// DefaultIndent is the number of spaces used when no indent is given.
const DefaultIndent = 2

const maxIndent = 8

var (
	ErrEmptyInput  = errors.New("please enter JSON")
	ErrInvalidJSON = errors.New("invalid JSON format")
)

// Format re-indents input using indent spaces per level. Values outside
// 1..8 fall back to DefaultIndent or are capped at 8.
func Format(input string, indent int) (string, error) {
	src, err := prepare(input)
	if err != nil {
		return "", err
	}
	switch {
	case indent <= 0:
		indent = DefaultIndent
	case indent > maxIndent:
		indent = maxIndent
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, src, "", strings.Repeat(" ", indent)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return buf.String(), nil
}

// Minify strips all insignificant whitespace from input.
func Minify(input string) (string, error) {
	src, err := prepare(input)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, src); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return buf.String(), nil
}

// Validate reports whether input is a single well-formed JSON value.
func Validate(input string) error {
	src, err := prepare(input)
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(src, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return nil
}

func prepare(input string) ([]byte, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, ErrEmptyInput
	}
	return []byte(s), nil
}

// Highlight colors a JSON document for 256-color terminals. On any
// tokenizer or formatter failure the input is returned unchanged.
func Highlight(src string) string {
	return highlight.Code(src, "json")
}

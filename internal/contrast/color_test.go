package contrast

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
	}{
		{"short lowercase no hash", "fff", RGB{255, 255, 255}},
		{"long uppercase with hash", "#FFFFFF", RGB{255, 255, 255}},
		{"long uppercase no hash", "FFFFFF", RGB{255, 255, 255}},
		{"short expands digits", "f0a", RGB{0xFF, 0x00, 0xAA}},
		{"short with hash", "#abc", RGB{0xAA, 0xBB, 0xCC}},
		{"mixed case", "#FfA0c3", RGB{0xFF, 0xA0, 0xC3}},
		{"alpha ignored", "#11223344", RGB{0x11, 0x22, 0x33}},
		{"alpha ignored no hash", "000000ff", RGB{0, 0, 0}},
		{"black", "#000", RGB{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{
		"",
		"#",
		"12G",
		"#ff",
		"#ffff",
		"#fffff",
		"#fffffff",
		"#fffffffff",
		"##fff",
		"zzzzzz",
		" fff",
		"#12345g",
		"#1122334g",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseColor(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidColorFormat), "expected ErrInvalidColorFormat, got %v", err)
		})
	}
}

func TestRGB_Hex(t *testing.T) {
	assert.Equal(t, "#FF00AA", RGB{0xFF, 0x00, 0xAA}.Hex())
	assert.Equal(t, "#0A0B0C", MustParseColor("0a0b0c").String())
}

func TestMustParseColor_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseColor("nope") })
}

func TestRGB_JSON(t *testing.T) {
	b, err := json.Marshal(struct {
		C RGB `json:"c"`
	}{MustParseColor("f0a")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"c":"#FF00AA"}`, string(b))

	var back struct {
		C RGB `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"c":"#123456"}`), &back))
	assert.Equal(t, RGB{R: 0x12, G: 0x34, B: 0x56}, back.C)

	err = json.Unmarshal([]byte(`{"c":"nope"}`), &back)
	assert.ErrorIs(t, err, ErrInvalidColorFormat)
}

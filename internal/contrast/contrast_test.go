package contrast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeLuminance(t *testing.T) {
	assert.Equal(t, 0.0, RelativeLuminance(RGB{0, 0, 0}))
	assert.Equal(t, 1.0, RelativeLuminance(RGB{255, 255, 255}))
	assert.InDelta(t, 0.2126, RelativeLuminance(RGB{255, 0, 0}), 1e-12)
	assert.InDelta(t, 0.7152, RelativeLuminance(RGB{0, 255, 0}), 1e-12)
	assert.InDelta(t, 0.0722, RelativeLuminance(RGB{0, 0, 255}), 1e-12)
	assert.InDelta(t, 0.21586050011389923, RelativeLuminance(RGB{0x80, 0x80, 0x80}), 1e-9)
	assert.InDelta(t, 0.24162279570388456, RelativeLuminance(RGB{0xFF, 0x00, 0xAA}), 1e-9)
}

func TestRelativeLuminance_LinearSegment(t *testing.T) {
	// 10/255 is below the 0.03928 knee and stays on the linear segment.
	want := (10.0 / 255.0) / 12.92
	assert.InDelta(t, want, RelativeLuminance(RGB{10, 10, 10}), 1e-15)
}

func TestRatio_Extremes(t *testing.T) {
	r, err := Ratio("#000000", "#FFFFFF")
	require.NoError(t, err)
	assert.Equal(t, 21.0, r)

	r, err = Ratio("#FFFFFF", "#000")
	require.NoError(t, err)
	assert.Equal(t, 21.0, r)
}

func TestRatio_IdenticalColors(t *testing.T) {
	for _, c := range []string{"#000", "#fff", "#777777", "#1a2b3c", "f0a", "#12345678"} {
		r, err := Ratio(c, c)
		require.NoError(t, err)
		assert.Equal(t, 1.0, r, c)
	}
}

func TestRatio_Symmetric(t *testing.T) {
	colors := []string{"#000", "#fff", "#777", "#ff0000", "#00ff00", "#0000ff", "#1a2b3c", "#c0ffee", "#808080"}
	for _, a := range colors {
		for _, b := range colors {
			ab, err := Ratio(a, b)
			require.NoError(t, err)
			ba, err := Ratio(b, a)
			require.NoError(t, err)
			assert.Equal(t, ab, ba, "%s vs %s", a, b)
			assert.GreaterOrEqual(t, ab, 1.0)
			assert.LessOrEqual(t, ab, 21.0)
		}
	}
}

func TestRatio_KnownValues(t *testing.T) {
	tests := []struct {
		fg, bg string
		want   float64
	}{
		{"#777777", "#ffffff", 4.478089453577214},
		{"#767676", "#ffffff", 4.542224959605253},
		{"#595959", "#ffffff", 7.004729208035935},
		{"#ff0000", "#ffffff", 3.9984767707539985},
		{"#0000ff", "#ffffff", 8.592471358428805},
	}
	for _, tt := range tests {
		got, err := Ratio(tt.fg, tt.bg)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9, "%s on %s", tt.fg, tt.bg)
	}
}

func TestRatio_InvalidInput(t *testing.T) {
	_, err := Ratio("12G", "#fff")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidColorFormat))
	assert.Contains(t, err.Error(), "foreground")

	_, err = Ratio("#fff", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidColorFormat))
	assert.Contains(t, err.Error(), "background")
}

func TestCheck(t *testing.T) {
	res, err := Check("#000", "#fff")
	require.NoError(t, err)
	assert.Equal(t, RGB{0, 0, 0}, res.Foreground)
	assert.Equal(t, RGB{255, 255, 255}, res.Background)
	assert.Equal(t, 21.0, res.Ratio)
	assert.Equal(t, Compliance{true, true, true, true}, res.Compliance)
	assert.Equal(t, RatingExcellent, res.Rating)

	res, err = Check("#777", "#fff")
	require.NoError(t, err)
	assert.Equal(t, Compliance{AANormal: false, AALarge: true, AAANormal: false, AAALarge: false}, res.Compliance)
	assert.Equal(t, RatingPoor, res.Rating)

	_, err = Check("#fff", "#ggg")
	assert.ErrorIs(t, err, ErrInvalidColorFormat)
}

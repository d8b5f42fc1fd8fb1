package contrast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest_AlreadyPassing(t *testing.T) {
	fg := MustParseColor("#000")
	bg := MustParseColor("#fff")
	got, ok := Suggest(fg, bg, 7)
	assert.True(t, ok)
	assert.Equal(t, fg, got)
}

func TestSuggest_DarkensOnLightBackground(t *testing.T) {
	fg := MustParseColor("#777777")
	bg := MustParseColor("#ffffff")
	got, ok := Suggest(fg, bg, 0)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, RatioRGB(got, bg), AANormalThreshold)
	assert.Less(t, RelativeLuminance(got), RelativeLuminance(fg))
}

func TestSuggest_LightensOnDarkBackground(t *testing.T) {
	fg := MustParseColor("#444444")
	bg := MustParseColor("#222222")
	got, ok := Suggest(fg, bg, AAANormalThreshold)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, RatioRGB(got, bg), AAANormalThreshold)
	assert.Greater(t, RelativeLuminance(got), RelativeLuminance(fg))
}

func TestSuggest_Unreachable(t *testing.T) {
	// Mid grey cannot reach 21:1 against anything but its extreme opposite.
	fg := MustParseColor("#808080")
	bg := MustParseColor("#808080")
	got, ok := Suggest(fg, bg, 21)
	assert.False(t, ok)
	assert.Equal(t, fg, got)
}

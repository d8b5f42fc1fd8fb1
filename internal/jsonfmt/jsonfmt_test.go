package jsonfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_PreservesKeyOrder(t *testing.T) {
	got, err := Format(`{"b":1,"a":[1,2]}`, 2)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": [\n    1,\n    2\n  ]\n}", got)
}

func TestFormat_Indent(t *testing.T) {
	got, err := Format(`{"a":1}`, 4)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"a\": 1\n}", got)

	got, err = Format(`{"a":1}`, 0)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", got)

	got, err = Format(`{"a":1}`, 99)
	require.NoError(t, err)
	assert.Equal(t, "{\n        \"a\": 1\n}", got)
}

func TestFormat_Errors(t *testing.T) {
	_, err := Format("   \n", 2)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Format(`{"a":`, 2)
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestMinify(t *testing.T) {
	got, err := Minify("{\n  \"a\": [1, 2],\n  \"b\": \"x y\"\n}\n")
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1,2],"b":"x y"}`, got)

	_, err = Minify("")
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Minify("[1,]")
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(`{"ok":true}`))
	assert.NoError(t, Validate(`42`))
	assert.ErrorIs(t, Validate(`{"ok":tru}`), ErrInvalidJSON)
	assert.ErrorIs(t, Validate(`{} {}`), ErrInvalidJSON)
	assert.ErrorIs(t, Validate(" "), ErrEmptyInput)
}

func TestHighlight(t *testing.T) {
	src := `{"a": 1}`
	out := Highlight(src)
	assert.Contains(t, out, "\x1b[")
	plain := stripANSI(out)
	assert.Equal(t, src, strings.TrimRight(plain, "\n"))
}

func stripANSI(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

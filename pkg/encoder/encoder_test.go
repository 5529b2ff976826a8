package encoder_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/anton-fomin/inject-env/pkg/domain"
	"github.com/anton-fomin/inject-env/pkg/encoder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fooBar = domain.Mapping{"FOO": "foo", "BAR": "bar"}

func decodeObject(t *testing.T, s string) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal([]byte(s), &out), "not a JSON object: %s", s)
	return out
}

func TestEncode_PlainObject(t *testing.T) {
	out, err := encoder.Encode(fooBar, false, "{}")
	require.NoError(t, err)

	got := decodeObject(t, out)
	assert.Equal(t, "foo", got["FOO"])
	assert.Equal(t, "bar", got["BAR"])
	assert.Len(t, got, 2)
}

func TestEncode_FormatTemplate(t *testing.T) {
	out, err := encoder.Encode(fooBar, false, "window.APP_ENV = {}")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out, "window.APP_ENV = {"), out)
	got := decodeObject(t, strings.TrimPrefix(out, "window.APP_ENV = "))
	assert.Equal(t, map[string]string(fooBar), got)
}

func TestEncode_EncodedString(t *testing.T) {
	out, err := encoder.Encode(fooBar, true, "{}")
	require.NoError(t, err)

	var inner string
	require.NoError(t, json.Unmarshal([]byte(out), &inner), "not a JSON string: %s", out)
	assert.Equal(t, map[string]string(fooBar), decodeObject(t, inner))
}

func TestEncode_Escaping(t *testing.T) {
	m := domain.Mapping{
		"QUOTE":   `say "hi"`,
		"SLASH":   `C:\temp`,
		"NEWLINE": "a\nb\tc",
		"CTRL":    "\x01\x1f",
		"HTML":    "<script>&</script>",
		"UNICODE": "héllo ✓",
		"EMPTY":   "",
		`KEY"Q`:   "k",
	}

	t.Run("Object round trip", func(t *testing.T) {
		out, err := encoder.Encode(m, false, "{}")
		require.NoError(t, err)
		assert.Equal(t, map[string]string(m), decodeObject(t, out))
		assert.Contains(t, out, "<script>&</script>")
		assert.NotContains(t, out, "\n")
	})

	t.Run("Double round trip", func(t *testing.T) {
		out, err := encoder.Encode(m, true, "{}")
		require.NoError(t, err)
		var inner string
		require.NoError(t, json.Unmarshal([]byte(out), &inner))
		assert.Equal(t, map[string]string(m), decodeObject(t, inner))
	})
}

func TestEncode_EmptyMapping(t *testing.T) {
	out, err := encoder.Encode(nil, false, "{}")
	require.NoError(t, err)
	assert.Equal(t, "{}", out)

	out, err = encoder.Encode(domain.Mapping{}, true, "{}")
	require.NoError(t, err)
	assert.Equal(t, `"{}"`, out)
}

func TestEncode_Placeholder(t *testing.T) {
	t.Run("Absent placeholder leaves template unchanged", func(t *testing.T) {
		for _, tmpl := range []string{"", "no placeholder", "{ }", "}{"} {
			out, err := encoder.Encode(fooBar, false, tmpl)
			require.NoError(t, err)
			assert.Equal(t, tmpl, out)
		}
	})

	t.Run("Only the first placeholder is replaced", func(t *testing.T) {
		out, err := encoder.Encode(domain.Mapping{"A": "1"}, false, "x={}; y={};")
		require.NoError(t, err)
		assert.Equal(t, `x={"A":"1"}; y={};`, out)
	})

	t.Run("Placeholder inside payload is not expanded", func(t *testing.T) {
		out, err := encoder.Encode(domain.Mapping{"A": "{}"}, false, "{}{}")
		require.NoError(t, err)
		assert.Equal(t, `{"A":"{}"}{}`, out)
	})
}

func TestSubstitute(t *testing.T) {
	assert.Equal(t, "a1b{}", encoder.Substitute("a{}b{}", "1"))
	assert.Equal(t, "ab", encoder.Substitute("ab", "1"))
}

func TestEncode_InvalidUTF8(t *testing.T) {
	t.Run("Value", func(t *testing.T) {
		out, err := encoder.Encode(domain.Mapping{"OK": "fine", "K": "a\xffb"}, false, "{}")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrEncoding))
		assert.Contains(t, err.Error(), `"K"`)
		assert.Empty(t, out)
	})

	t.Run("Name", func(t *testing.T) {
		_, err := encoder.Encode(domain.Mapping{"K\xfe": "v"}, true, "{}")
		assert.ErrorIs(t, err, domain.ErrEncoding)
	})
}

package vimbax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	cases := []struct {
		typeName string
		text     string
		expected interface{}
	}{
		{"Int", "42", int64(42)},
		{"Int", " -7 ", int64(-7)},
		{"Float", "0.5", 0.5},
		{"Float", "1e3", 1000.0},
		{"String", " keep spaces ", " keep spaces "},
		{"Enum", "Continuous", "Continuous"},
		{"Bool", "true", true},
		{"Bool", "0", false},
		{"Bool", "False", false},
		{"Raw", "0x0aff", []byte{0x0a, 0xff}},
		{"Raw", "", []byte{}},
	}
	for _, c := range cases {
		ft, err := LookupType(c.typeName)
		require.NoError(t, err)
		v, err := ft.ParseValue(c.text)
		require.NoError(t, err, "%s %q", c.typeName, c.text)
		assert.Equal(t, c.expected, v, "%s %q", c.typeName, c.text)
	}
}

func TestParseValueRejects(t *testing.T) {
	cases := map[string]string{
		"Int":   "4.2",
		"Float": "fast",
		"Bool":  "yes",
		"Raw":   "xyz",
	}
	for typeName, text := range cases {
		ft, err := LookupType(typeName)
		require.NoError(t, err)
		_, err = ft.ParseValue(text)
		assert.Error(t, err, "%s %q", typeName, text)
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "42", FormatValue(int64(42)))
	assert.Equal(t, "0.25", FormatValue(0.25))
	assert.Equal(t, "true", FormatValue(true))
	assert.Equal(t, "Mono8", FormatValue("Mono8"))
	assert.Equal(t, "00ff10", FormatValue([]byte{0x00, 0xff, 0x10}))
}

package country

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmoji_AllKnownCodes(t *testing.T) {
	require.Equal(t, 250, Len())

	for code := range table {
		emoji, err := Emoji(code)
		require.NoError(t, err, code)
		assert.NotEmpty(t, emoji, code)
		assert.Equal(t, 2, utf8.RuneCountInString(emoji), "flag for %s should be a regional indicator pair", code)
	}
}

func TestGet_KnownCodes(t *testing.T) {
	tests := []struct {
		code  string
		name  string
		emoji string
	}{
		{"RU", "Russia", "🇷🇺"},
		{"US", "United States", "🇺🇸"},
		{"DE", "Germany", "🇩🇪"},
		{"EU", "European Union", "🇪🇺"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			d, err := Get(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.name, d.Name)
			assert.Equal(t, tt.emoji, d.Emoji)
			assert.Equal(t, "flag for "+tt.name, d.Title)
		})
	}
}

func TestGet_UnknownCodes(t *testing.T) {
	for _, code := range []string{"", "XX", "ru", "USA", "0"} {
		t.Run("code_"+code, func(t *testing.T) {
			_, err := Get(code)
			assert.True(t, errors.Is(err, ErrNotFound), "expected ErrNotFound, got %v", err)

			emoji, err := Emoji(code)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.Empty(t, emoji)
		})
	}
}

func TestLookup(t *testing.T) {
	d, ok := Lookup("FR")
	assert.True(t, ok)
	assert.Equal(t, "France", d.Name)

	_, ok = Lookup("ZZ")
	assert.False(t, ok)
}

func TestNames_AreValidText(t *testing.T) {
	for code, data := range table {
		// U+00C3 followed by another Latin-1 rune is double-encoded UTF-8.
		assert.NotContains(t, data.Name, "Ã", code)
		assert.NotContains(t, data.Title, "Ã", code)
		assert.Equal(t, "flag for "+data.Name, data.Title, code)
	}

	tests := map[string]string{
		"AX": "Åland Islands",
		"BL": "Saint Barthélemy",
		"CI": "Côte D'Ivoire",
		"CW": "Curaçao",
		"RE": "Réunion",
	}
	for code, want := range tests {
		data, err := Get(code)
		require.NoError(t, err)
		assert.Equal(t, want, data.Name)
	}
}

package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	cases := map[string]Lang{
		"":       English,
		"en":     English,
		"es":     Spanish,
		"es-MX":  Spanish,
		"es-419": Spanish,
		"fr":     English,
		"zz":     English,
	}
	for in, want := range cases {
		assert.Equal(t, want, Match(in), in)
	}
}

func TestT(t *testing.T) {
	assert.Equal(t, "BEAST-OX COMMAND", T(English, "app.title"))
	assert.Equal(t, "COMANDO BEAST-OX", T(Spanish, "app.title"))
	assert.Equal(t, "Abrir Dashboard", T(Spanish, "icon.open"))
	assert.Equal(t, "missing.key", T(Spanish, "missing.key"))
}

func TestEveryKeyTranslated(t *testing.T) {
	for key := range tables[English] {
		_, ok := tables[Spanish][key]
		assert.True(t, ok, "missing Spanish string for %s", key)
	}
}

func TestPreferencesPersistOnToggle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preferences.json")

	p := NewPreferences(path)
	p.Language = English
	require.NoError(t, p.Load())
	_, err := os.Stat(path)
	require.NoError(t, err, "Load should create the file")

	got, err := p.ToggleLang()
	require.NoError(t, err)
	assert.Equal(t, Spanish, got)

	reloaded := NewPreferences(path)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, Spanish, reloaded.Lang())
}

func TestPreferencesNormalisesUnknownLanguage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"language":"es-AR"}`), 0644))

	p := NewPreferences(path)
	require.NoError(t, p.Load())
	assert.Equal(t, Spanish, p.Lang())
}

func TestPreferencesBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0644))
	assert.Error(t, NewPreferences(path).Load())
}

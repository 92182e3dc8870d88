package locale

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	c := NewCatalog()
	require.NoError(t, c.ParseBytes([]byte("home = \"Home\"\nsettings = \"Settings\"\n"), "active.en.toml"))
	require.NoError(t, c.ParseBytes([]byte("home = \"Inicio\"\n"), "active.es.toml"))
	return c
}

func TestLocalizer_Title(t *testing.T) {
	c := newTestCatalog(t)

	es := c.Localizer("es")
	assert.Equal(t, "Inicio", es.Title("home", "Home"))
	// Spanish has no "settings"; the English source message is used.
	assert.Equal(t, "Settings", es.Title("settings", "fallback"))
	assert.Equal(t, "fallback", es.Title("missing", "fallback"))
	assert.Equal(t, "fallback", es.Title("", "fallback"))

	en := c.Localizer("en-US")
	assert.Equal(t, "Home", en.Title("home", "x"))
}

func TestLocalizer_nil(t *testing.T) {
	var l *Localizer
	assert.Equal(t, "Home", l.Title("home", "Home"))
}

func TestCatalog_Languages(t *testing.T) {
	c := newTestCatalog(t)
	var got []string
	for _, tag := range c.Languages() {
		got = append(got, tag.String())
	}
	assert.ElementsMatch(t, []string{language.English.String(), language.Spanish.String()}, got)
}

func TestCatalog_LoadFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "active.fr.toml")
	require.NoError(t, os.WriteFile(path, []byte("home = \"Accueil\"\n"), 0o644))

	c := NewCatalog()
	require.NoError(t, c.LoadFiles(path))
	assert.Equal(t, "Accueil", c.Localizer("fr").Title("home", "Home"))

	assert.Error(t, c.LoadFiles(filepath.Join(dir, "missing.de.toml")))
}

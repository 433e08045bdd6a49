package service

import (
	"net/http"
	"testing"

	"github.com/euscan/euscanwww/exception"
	"github.com/euscan/euscanwww/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorld(t *testing.T) {
	service := NewWorldScanService(testutil.NewFixtureStore(), 100)

	entries, err := service.ParseWorld("# world\napp-editors/vim\n>=dev-lang/python-3.2:3.2\nvim\napp-editors/vim\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"app-editors/vim", "dev-lang/python", "vim"}, entries)
}

func TestParseWorldEmpty(t *testing.T) {
	service := NewWorldScanService(testutil.NewFixtureStore(), 100)

	for _, data := range []string{"", "   \n\n", "# only a comment\n"} {
		_, err := service.ParseWorld(data)
		requireCustomError(t, err, http.StatusBadRequest, exception.WorldScanEmpty)
	}
}

func TestParseWorldTooManyEntries(t *testing.T) {
	service := NewWorldScanService(testutil.NewFixtureStore(), 2)

	_, err := service.ParseWorld("app-editors/vim\napp-editors/emacs\ndev-lang/python\n")
	requireCustomError(t, err, http.StatusBadRequest, exception.WorldScanTooManyEntries)

	entries, err := service.ParseWorld("app-editors/vim\napp-editors/emacs\n")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestScan(t *testing.T) {
	service := NewWorldScanService(testutil.NewFixtureStore(), 100)

	result, err := service.Scan([]string{"app-editors/vim", "python", "vim", "app-misc/unknown", "nano"})
	require.NoError(t, err)

	atoms := make([]string, 0)
	for _, p := range result.Packages {
		atoms = append(atoms, p.Atom())
	}
	assert.Equal(t, []string{"app-editors/vim", "dev-lang/python"}, atoms)
	assert.Equal(t, []string{"app-misc/unknown", "nano"}, result.Unknown)
}

func TestScanNothingKnown(t *testing.T) {
	service := NewWorldScanService(testutil.NewFixtureStore(), 100)

	result, err := service.Scan([]string{"sys-apps/portage"})
	require.NoError(t, err)
	assert.Empty(t, result.Packages)
	assert.Equal(t, []string{"sys-apps/portage"}, result.Unknown)
}

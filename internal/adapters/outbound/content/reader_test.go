package content_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploycheck/deploycheck/internal/adapters/outbound/content"
	"github.com/deploycheck/deploycheck/internal/domain"
)

func TestRead_ReturnsFileText(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "Dockerfile")
	require.NoError(t, os.WriteFile(fp, []byte("FROM python:3.12-slim\n"), 0644))

	text, err := content.New().Read(fp)
	require.NoError(t, err)
	assert.Equal(t, "FROM python:3.12-slim\n", text)
}

func TestRead_CachesFirstRead(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "requirements.txt")
	require.NoError(t, os.WriteFile(fp, []byte("flask==3.0\n"), 0644))

	r := content.New()
	first, err := r.Read(fp)
	require.NoError(t, err)

	// A rewrite mid-run is invisible: every rule sees the same snapshot.
	require.NoError(t, os.WriteFile(fp, []byte("django==5.0\n"), 0644))
	second, err := r.Read(fp)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRead_MissingFileIsContentReadError(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "missing.yaml")

	r := content.New()
	_, err := r.Read(fp)
	require.Error(t, err)

	var readErr *domain.ContentReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, fp, readErr.Path)

	// Failures are cached too.
	_, again := r.Read(fp)
	assert.Equal(t, err, again)
}

package localepack_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localepack"
)

func TestPrepare(t *testing.T) {
	t.Parallel()

	t.Run("creates one empty resource per partition plus a manifest", func(t *testing.T) {
		t.Parallel()
		outDir := t.TempDir()
		session, err := localepack.New(
			localepack.WithDataFS(testFS()),
			localepack.WithOutputDir(outDir),
		)
		require.NoError(t, err)
		defer session.Close()

		names, err := session.Prepare([]string{"en-US", "de-DE"})
		require.NoError(t, err)
		assert.Equal(t, []string{
			"root.js", "en.js", "en-US.js", "und-US.js",
			"de.js", "de-DE.js", "und-DE.js",
			localepack.LocalManifestName,
		}, names)

		for _, name := range names {
			data, err := os.ReadFile(filepath.Join(outDir, name))
			require.NoError(t, err, "missing %s", name)
			assert.NotEmpty(t, data)
		}

		bundle, err := os.ReadFile(filepath.Join(outDir, "en.js"))
		require.NoError(t, err)
		assert.Contains(t, string(bundle), "module.exports.installLocale = function(root) {")
	})

	t.Run("existing files are left untouched", func(t *testing.T) {
		t.Parallel()
		outDir := t.TempDir()
		session, err := localepack.New(
			localepack.WithDataFS(testFS()),
			localepack.WithOutputDir(outDir),
		)
		require.NoError(t, err)
		defer session.Close()

		marker := []byte("// host already wrote this\n")
		require.NoError(t, os.WriteFile(filepath.Join(outDir, "en.js"), marker, 0o644))

		_, err = session.Prepare([]string{"en-US"})
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(outDir, "en.js"))
		require.NoError(t, err)
		assert.Equal(t, marker, data)
	})

	t.Run("requires locales", func(t *testing.T) {
		t.Parallel()
		session := newTestSession(t)

		_, err := session.Prepare(nil)
		require.ErrorIs(t, err, localepack.ErrNoLocales)
	})

	t.Run("falls back to configured locales", func(t *testing.T) {
		t.Parallel()
		outDir := t.TempDir()
		session, err := localepack.New(
			localepack.WithDataFS(testFS()),
			localepack.WithOutputDir(outDir),
			localepack.WithLocales("en"),
		)
		require.NoError(t, err)
		defer session.Close()

		names, err := session.Prepare(nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"root.js", "en.js", localepack.LocalManifestName}, names)
	})
}

package localepack_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localepack"
)

func TestCharsetResolution(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("charset lands in the root partition", func(t *testing.T) {
		t.Parallel()
		session := newTestSession(t)
		session.RegisterFeature("charset")

		out, err := session.Emit(ctx, []string{"en-US"})
		require.NoError(t, err)

		root := source(t, out, "root.js")
		assert.Contains(t, root, `root.data.charset.ISOm8859m15 = {"name":"ISO-8859-15"};`)
		assert.NotContains(t, root, "charmaps")
	})

	t.Run("charmaps pulls the charset it depends on", func(t *testing.T) {
		t.Parallel()
		session := newTestSession(t)
		session.RegisterFeature("charmaps") // charset itself was never requested

		out, err := session.Emit(ctx, []string{"en-US"})
		require.NoError(t, err)

		root := source(t, out, "root.js")
		assert.Contains(t, root, "root.data.charset.ISOm8859m15")
		assert.Contains(t, root, `root.data.charmaps.ISOm8859m15 = {"map":"8859-15"};`)
	})

	t.Run("optional charset never yields an automatic charmap", func(t *testing.T) {
		t.Parallel()
		session := newTestSession(t)
		session.RegisterFeature("charmaps")

		// ja resolves to Shift_JIS, which is marked optional.
		out, err := session.Emit(ctx, []string{"ja-JP", "en-US"})
		require.NoError(t, err)

		root := source(t, out, "root.js")
		assert.Contains(t, root, "root.data.charset.Shift_JIS")
		assert.NotContains(t, root, "root.data.charmaps.Shift_JIS")
		// Non-optional charsets still get their charmaps.
		assert.Contains(t, root, "root.data.charmaps.ISOm8859m15")
	})

	t.Run("shared charset is emitted once", func(t *testing.T) {
		t.Parallel()
		session := newTestSession(t)
		session.RegisterFeature("charset")

		out, err := session.Emit(ctx, []string{"en-US", "en-GB"})
		require.NoError(t, err)

		local := manifestFiles(t, source(t, out, localepack.LocalManifestName))
		count := 0
		for _, f := range local {
			if f == "charset/ISO-8859-15.json" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("locale without a charset mapping emits nothing", func(t *testing.T) {
		t.Parallel()
		session := newTestSession(t)
		session.RegisterFeature("charset")

		out, err := session.Emit(ctx, []string{"fr-FR"})
		require.NoError(t, err)
		assert.False(t, hasSource(out, "root.js"))
	})
}

package localepack_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localepack"
)

func TestZoneinfoResolution(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("completeness for one region", func(t *testing.T) {
		t.Parallel()
		session := newTestSession(t)
		session.RegisterFeature("zoneinfo")

		out, err := session.Emit(ctx, []string{"en-US"})
		require.NoError(t, err)

		root := source(t, out, "root.js")

		// The zonetab table comes first.
		assert.Contains(t, root, "root.data.zoneinfo.zonetab = {")

		// Every zone of region US.
		assert.Contains(t, root, "root.data.zoneinfo.America.New_York")
		assert.Contains(t, root, "root.data.zoneinfo.America.Los_Angeles")

		// Every generic zone, including ones nested under a regional-looking
		// subtree, regardless of whether it was asked for.
		assert.Contains(t, root, "root.data.zoneinfo.UTC")
		assert.Contains(t, root, "root.data.zoneinfo.Etc.GMTp1")

		// Zones of unrequested regions stay out.
		assert.NotContains(t, root, "Europe.Berlin")

		idx := strings.Index(root, "zoneinfo.zonetab")
		assert.Less(t, idx, strings.Index(root, "America.New_York"))
	})

	t.Run("zone data appears only in the root partition", func(t *testing.T) {
		t.Parallel()
		session := newTestSession(t)
		session.RegisterFeature("dateformat")
		session.RegisterFeature("zoneinfo")

		out, err := session.Emit(ctx, []string{"en-US"})
		require.NoError(t, err)

		for _, name := range []string{"en.js", "en-US.js", "und-US.js"} {
			if !hasSource(out, name) {
				continue
			}
			assert.NotContains(t, source(t, out, name), "zoneinfo", "zone data leaked into %s", name)
		}
	})

	t.Run("unsafe identifier characters are rewritten", func(t *testing.T) {
		t.Parallel()
		session := newTestSession(t)
		session.RegisterFeature("zoneinfo")

		out, err := session.Emit(ctx, []string{"en-US"})
		require.NoError(t, err)

		root := source(t, out, "root.js")
		assert.Contains(t, root, "Etc.GMTp1")
		assert.NotContains(t, root, "root.data.zoneinfo.Etc.GMT+1")
	})

	t.Run("region zones resolved for every requested locale", func(t *testing.T) {
		t.Parallel()
		session := newTestSession(t)
		session.RegisterFeature("zoneinfo")

		out, err := session.Emit(ctx, []string{"en-US", "de-DE"})
		require.NoError(t, err)

		root := source(t, out, "root.js")
		assert.Contains(t, root, "America.New_York")
		assert.Contains(t, root, "Europe.Berlin")

		local := manifestFiles(t, source(t, out, localepack.LocalManifestName))
		assert.Contains(t, local, "zoneinfo/America/New_York.json")
		assert.Contains(t, local, "zoneinfo/Europe/Berlin.json")
	})

	t.Run("locale without region still gets generic zones", func(t *testing.T) {
		t.Parallel()
		session := newTestSession(t)
		session.RegisterFeature("zoneinfo")

		out, err := session.Emit(ctx, []string{"en"})
		require.NoError(t, err)

		root := source(t, out, "root.js")
		assert.Contains(t, root, "root.data.zoneinfo.UTC")
		assert.NotContains(t, root, "America.New_York")
	})
}

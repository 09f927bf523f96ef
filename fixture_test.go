package localepack_test

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localepack"
)

func frag(s string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(s)}
}

// testFS builds a small locale-data installation covering every fragment
// category: generic per-partition files, the charset family with its lookup
// table, the zone tree with regional and generic zones, and normalization
// forms.
func testFS() fstest.MapFS {
	return fstest.MapFS{
		"dateformat.json":        frag(`{"locale":"root"}`),
		"en/dateformat.json":     frag(`{"locale":"en"}`),
		"en/US/dateformat.json":  frag(`{"locale":"en-US"}`),
		"de/dateformat.json":     frag(`{"locale":"de"}`),
		"und/US/dateformat.json": frag(`{"locale":"und-US"}`),

		"charset/lang2charset.json": frag(`{"en":["ISO-8859-15"],"ja":["Shift_JIS"],"ru":["ISO-8859-5"]}`),
		"charset/ISO-8859-15.json":  frag(`{"name":"ISO-8859-15"}`),
		"charset/ISO-8859-5.json":   frag(`{"name":"ISO-8859-5"}`),
		"charset/Shift_JIS.json":    frag(`{"name":"Shift_JIS","optional":true}`),
		"charmaps/ISO-8859-15.json": frag(`{"map":"8859-15"}`),
		"charmaps/ISO-8859-5.json":  frag(`{"map":"8859-5"}`),
		"charmaps/Shift_JIS.json":   frag(`{"map":"sjis"}`),

		"zoneinfo/zonetab.json":             frag(`{"US":["America/New_York","America/Los_Angeles"],"DE":["Europe/Berlin"]}`),
		"zoneinfo/America/New_York.json":    frag(`{"offset":"-5:0"}`),
		"zoneinfo/America/Los_Angeles.json": frag(`{"offset":"-8:0"}`),
		"zoneinfo/Europe/Berlin.json":       frag(`{"offset":"1:0"}`),
		"zoneinfo/Etc/GMT+1.json":           frag(`{"offset":"-1:0"}`),
		"zoneinfo/UTC.json":                 frag(`{"offset":"0:0"}`),

		"nfc/Latn.json": frag(`{"script":"Latn"}`),
		"nfc/Cyrl.json": frag(`{"script":"Cyrl"}`),
		"nfc/all.json":  frag(`{"script":"all"}`),
		"nfd/Latn.json": frag(`{"form":"nfd"}`),
	}
}

// newTestSession creates a session over the fixture data with a throwaway
// output directory.
func newTestSession(t *testing.T, opts ...localepack.Option) *localepack.Session {
	t.Helper()

	base := []localepack.Option{
		localepack.WithDataFS(testFS()),
		localepack.WithOutputDir(t.TempDir()),
	}
	session, err := localepack.New(append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

// source returns the emitted content of the output file with the given
// base name.
func source(t *testing.T, out localepack.OutputSources, name string) string {
	t.Helper()

	for path, content := range out {
		if filepath.Base(path) == name {
			return content
		}
	}
	t.Fatalf("no output named %s (have %d outputs)", name, len(out))
	return ""
}

// hasSource reports whether an output file with the given base name was
// emitted.
func hasSource(out localepack.OutputSources, name string) bool {
	for path := range out {
		if filepath.Base(path) == name {
			return true
		}
	}
	return false
}

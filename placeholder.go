package localepack

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrymomot/localepack/pkg/locale"
)

// Prepare pre-creates one empty bundle per partition of the given locales
// plus a synchronous-load manifest, so the host's dependency graph has
// stable nodes to point at before real content exists. Writes are
// idempotent: a file that already exists is left untouched. Returns the
// resource file names, existing or created.
//
// The locales argument falls back to the session's configured locales when
// empty.
func (s *Session) Prepare(locales []string) ([]string, error) {
	if len(locales) == 0 {
		locales = s.locales
	}
	if len(locales) == 0 {
		return nil, ErrNoLocales
	}

	tags, err := parseTags(locales)
	if err != nil {
		return nil, err
	}

	outDir, err := filepath.Abs(s.outDir)
	if err != nil {
		return nil, fmt.Errorf("resolving output dir: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	var names []string
	seen := make(map[string]struct{})
	for _, t := range tags {
		for _, p := range locale.Chain(t) {
			name := p.Name() + ".js"
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)

			if err := writeIfAbsent(filepath.Join(outDir, name), emptyBundle()); err != nil {
				return nil, err
			}
		}
	}

	names = append(names, LocalManifestName)
	if err := writeIfAbsent(filepath.Join(outDir, LocalManifestName), renderManifest(nil)); err != nil {
		return nil, err
	}

	return names, nil
}

func writeIfAbsent(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

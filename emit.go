package localepack

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	"github.com/dmitrymomot/localepack/pkg/feature"
	"github.com/dmitrymomot/localepack/pkg/locale"
)

// OutputSources maps absolute output paths to the serialized text written
// there, letting a caller keep in-memory copies synchronized with storage
// without re-reading it.
type OutputSources map[string]string

// Emit runs one aggregation pass over (locales × registered features) and
// writes the partition bundles and manifests to the output directory.
//
// Emitting with no registered features is a silent no-op. A pass with an
// unchanged feature set is served from the emission cache and returns
// byte-identical output without touching the data root. The locales
// argument falls back to the session's configured locales when empty.
func (s *Session) Emit(ctx context.Context, locales []string) (OutputSources, error) {
	if len(s.featureOrder) == 0 {
		s.log.Debug("no features requested, skipping emission")
		return nil, nil
	}

	switch s.state {
	case stateEmitting:
		return nil, ErrEmitting
	case stateEmitted:
		s.log.Debug("emission served from cache")
		return maps.Clone(s.lastOutput), nil
	}

	if len(locales) == 0 {
		locales = s.locales
	}
	if len(locales) == 0 {
		return nil, ErrNoLocales
	}

	s.state = stateEmitting
	out, err := s.runPass(ctx, locales)
	if err != nil {
		s.state = stateNotEmitted
		return nil, err
	}

	s.state = stateEmitted
	s.lastOutput = out

	return maps.Clone(out), nil
}

// runPass performs the fan-out: classifier and chain resolver feed the
// category resolvers, the aggregator merges their proposals, and the
// emitter serializes the buckets.
func (s *Session) runPass(ctx context.Context, locales []string) (OutputSources, error) {
	tags, err := parseTags(locales)
	if err != nil {
		return nil, err
	}

	var (
		generic      []feature.Feature
		norms        []feature.Feature
		hasCharset   bool
		withCharmaps bool
		hasZoneinfo  bool
	)
	for _, name := range s.featureOrder {
		f := s.features[name]
		switch f.Category {
		case feature.Charset:
			hasCharset = true
			if f.Name == feature.NameCharmaps {
				withCharmaps = true
			}
		case feature.Zoneinfo:
			hasZoneinfo = true
		case feature.Normalization:
			norms = append(norms, f)
		default:
			generic = append(generic, f)
		}
	}

	a := newAggregator()

	s.resolveGeneric(a, tags, generic)
	if hasCharset {
		s.resolveCharsets(ctx, a, tags, withCharmaps)
	}
	if hasZoneinfo {
		s.resolveZoneinfo(ctx, a, tags)
	}
	if len(norms) > 0 {
		s.resolveNorms(a, norms, requiredScripts(tags))
	}

	out, err := s.writeOutputs(a)
	if err != nil {
		return nil, err
	}

	s.log.Info("locale data emitted",
		slog.Int("locales", len(tags)),
		slog.Int("features", len(s.featureOrder)),
		slog.Int("partitions", len(a.order)),
		slog.Int("fragments", len(a.files)))

	return out, nil
}

func parseTags(locales []string) ([]locale.Tag, error) {
	tags := make([]locale.Tag, 0, len(locales))
	for _, l := range locales {
		t, err := locale.Parse(l)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLocale, l)
		}
		tags = append(tags, t)
	}
	return tags, nil
}

// requiredScripts collects the scripts the requested locales are written
// in, explicit or inferred, in locale order. Normalization forms without an
// explicit script fan out over this set.
func requiredScripts(tags []locale.Tag) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, t := range tags {
		script := t.LikelyScript()
		if script == "" {
			continue
		}
		if _, ok := seen[script]; ok {
			continue
		}
		seen[script] = struct{}{}
		out = append(out, script)
	}
	return out
}

package localepack

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/dmitrymomot/localepack/pkg/feature"
	"github.com/dmitrymomot/localepack/pkg/locale"
)

// entry is one serialized assignment recorded into a partition bucket.
type entry struct {
	key  string // dotted data key, dedupe handle within the partition
	text string // full statement text
}

// bucket accumulates the ordered assignment statements of one partition.
type bucket struct {
	name    string
	entries []entry
}

// aggregator is the single mutation point for partition buckets during one
// emission pass. Resolvers propose entries through it; it deduplicates by
// (partition, key), preserves first-write-wins ordering, and records the
// processed-files manifest.
type aggregator struct {
	buckets  map[string]*bucket
	order    []string // partition names in first-seen order
	seen     map[string]struct{}
	files    []string // every fragment path considered, found or not
	fileSeen map[string]struct{}
}

func newAggregator() *aggregator {
	return &aggregator{
		buckets:  make(map[string]*bucket),
		seen:     make(map[string]struct{}),
		files:    []string{},
		fileSeen: make(map[string]struct{}),
	}
}

// has reports whether a (partition, key) pair was already recorded, letting
// resolvers skip fragment reads for data that is already in.
func (a *aggregator) has(partition, key string) bool {
	_, ok := a.seen[partition+"\x00"+key]
	return ok
}

// add records an assignment statement into a partition bucket. The first
// write for a (partition, key) pair wins; later proposals are dropped.
func (a *aggregator) add(partition, key, text string) bool {
	handle := partition + "\x00" + key
	if _, ok := a.seen[handle]; ok {
		return false
	}
	a.seen[handle] = struct{}{}

	b, ok := a.buckets[partition]
	if !ok {
		b = &bucket{name: partition}
		a.buckets[partition] = b
		a.order = append(a.order, partition)
	}
	b.entries = append(b.entries, entry{key: key, text: text})

	return true
}

// recordFile adds a fragment path to the processed-files manifest. Paths
// are recorded whether or not the fragment exists, so a downstream loader
// can tell "known absent" from "never looked".
func (a *aggregator) recordFile(rel string) {
	if _, ok := a.fileSeen[rel]; ok {
		return
	}
	a.fileSeen[rel] = struct{}{}
	a.files = append(a.files, rel)
}

// partitions returns the buckets in first-seen order.
func (a *aggregator) partitions() []*bucket {
	out := make([]*bucket, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, a.buckets[name])
	}
	return out
}

// assignStatement builds a flat assignment against the runtime's data root.
func assignStatement(key string, payload []byte) string {
	return "root.data." + key + " = " + string(payload) + ";"
}

// safeKey rewrites characters unsafe in a property-like data key to their
// alphabetic substitutes.
func safeKey(id string) string {
	return strings.NewReplacer("-", "m", "+", "p").Replace(id)
}

// readFragment reads one fragment and validates that it is JSON. The
// second return distinguishes a missing fragment (not an error) from a
// present one; an unreadable or corrupt fragment is logged and reported as
// missing so one bad file never blocks the rest of the pass.
func (s *Session) readFragment(rel string) ([]byte, bool) {
	data, err := fs.ReadFile(s.fsys, rel)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("skipping unreadable fragment",
				slog.String("path", rel),
				slog.Any("error", err))
		}
		return nil, false
	}

	payload := []byte(strings.TrimSpace(string(data)))
	if !json.Valid(payload) {
		s.log.Warn("skipping corrupt fragment", slog.String("path", rel))
		return nil, false
	}

	return payload, true
}

// resolveGeneric locates per-partition fragments for the generic features:
// for each (feature, locale) pair, every partition in the locale's fallback
// chain is probed for <partitionDir>/<feature>.json. Found fragments are
// inlined verbatim, once per (partition, feature) pair no matter how many
// locales reach it.
func (s *Session) resolveGeneric(a *aggregator, tags []locale.Tag, feats []feature.Feature) {
	for _, f := range feats {
		for _, t := range tags {
			for _, p := range locale.Chain(t) {
				rel := path.Join(p.Dir(), f.Name+".json")
				a.recordFile(rel)

				if a.has(p.Name(), f.Name) {
					continue
				}

				payload, ok := s.readFragment(rel)
				if !ok {
					continue
				}

				a.add(p.Name(), f.Name, assignStatement(f.Name, payload))
			}
		}
	}
}

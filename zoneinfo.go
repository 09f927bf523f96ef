package localepack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/localepack/pkg/cache"
	"github.com/dmitrymomot/localepack/pkg/locale"
)

const (
	zoneDir     = "zoneinfo"
	zonetabFile = "zoneinfo/zonetab.json"
)

// zonetab loads the region-to-zones lookup table, parsed once and kept
// across emission passes.
func (s *Session) zonetab(ctx context.Context) (map[string][]string, error) {
	return cache.GetOrSet(ctx, s.tables, s.tableKey(zonetabFile), func(context.Context) (map[string][]string, error) {
		data, err := fs.ReadFile(s.fsys, zonetabFile)
		if err != nil {
			return nil, fmt.Errorf("reading zonetab: %w", err)
		}
		var table map[string][]string
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("parsing zonetab: %w", err)
		}
		return table, nil
	})
}

// resolveZoneinfo emits time-zone data. Zone data is global rather than
// locale-partitioned, so once zoneinfo is requested at all the pass emits
// the zonetab table, every zone belonging to a requested locale's region,
// and every generic zone definition found on disk regardless of whether it
// was asked for. A zone is generic when the zonetab lists it under no
// region; directory nesting alone does not make a zone regional. All
// output goes to the root partition.
func (s *Session) resolveZoneinfo(ctx context.Context, a *aggregator, tags []locale.Tag) {
	a.recordFile(zonetabFile)
	if payload, ok := s.readFragment(zonetabFile); ok {
		a.add(locale.RootName, "zoneinfo.zonetab", assignStatement("zoneinfo.zonetab", payload))
	}

	table, err := s.zonetab(ctx)
	if err != nil {
		// Without the table every zone on disk counts as generic.
		s.log.Warn("zonetab unavailable", slog.Any("error", err))
		table = nil
	}

	regional := make(map[string]bool)
	for _, zones := range table {
		for _, id := range zones {
			regional[id] = true
		}
	}

	// Zones of the requested regions, in locale order. Missing files still
	// get a manifest entry so the absence is remembered.
	for _, t := range tags {
		if t.Region == "" {
			continue
		}
		for _, id := range table[t.Region] {
			s.emitZone(a, id)
		}
	}

	// Every generic zone on disk, lexical order.
	err = fs.WalkDir(s.fsys, zoneDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".json") || p == zonetabFile {
			return nil
		}
		id := strings.TrimSuffix(strings.TrimPrefix(p, zoneDir+"/"), ".json")
		if !regional[id] {
			s.emitZone(a, id)
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.Warn("zone directory walk failed", slog.Any("error", err))
	}
}

func (s *Session) emitZone(a *aggregator, id string) {
	rel := zoneDir + "/" + id + ".json"
	a.recordFile(rel)

	key := "zoneinfo." + zoneKey(id)
	if a.has(locale.RootName, key) {
		return
	}
	if payload, ok := s.readFragment(rel); ok {
		a.add(locale.RootName, key, assignStatement(key, payload))
	}
}

// zoneKey rewrites a zone identifier into a dotted, property-safe data
// key: "-" and "+" become their alphabetic substitutes and path separators
// become dots, e.g. "Etc/GMT+1" → "Etc.GMTp1".
func zoneKey(id string) string {
	return strings.ReplaceAll(safeKey(id), "/", ".")
}

package localepack

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/dmitrymomot/localepack/pkg/cache"
	"github.com/dmitrymomot/localepack/pkg/locale"
)

// charsetTableFile maps "lang" or "lang-Script" keys to the list of charset
// identifiers used for that language.
const charsetTableFile = "charset/lang2charset.json"

// charsetTable loads the language-to-charset lookup table, parsed once and
// kept across emission passes.
func (s *Session) charsetTable(ctx context.Context) (map[string][]string, error) {
	return cache.GetOrSet(ctx, s.tables, s.tableKey(charsetTableFile), func(context.Context) (map[string][]string, error) {
		data, err := fs.ReadFile(s.fsys, charsetTableFile)
		if err != nil {
			return nil, fmt.Errorf("reading charset table: %w", err)
		}
		var table map[string][]string
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("parsing charset table: %w", err)
		}
		return table, nil
	})
}

// charsetFragment is the slice of a charset payload the engine inspects.
type charsetFragment struct {
	Optional bool `json:"optional"`
}

// resolveCharsets emits charset fragments for every requested locale, and
// charmap fragments on top when "charmaps" was requested. The charset
// fragment itself is always included: a charmap depends on its charset, so
// it is needed even when only charmaps were asked for. A charset marked
// optional is excluded from automatic charmap emission; it must be loaded
// explicitly by name. Charset data is keyed by charset name rather than
// locale, so everything lands in the root partition.
func (s *Session) resolveCharsets(ctx context.Context, a *aggregator, tags []locale.Tag, withCharmaps bool) {
	table, err := s.charsetTable(ctx)
	if err != nil {
		s.log.Warn("charset table unavailable", slog.Any("error", err))
		return
	}

	// optional flags seen this pass, so a charset reached through several
	// locales is read and judged once
	optional := make(map[string]bool)

	for _, t := range tags {
		for _, id := range lookupCharsets(table, t) {
			s.emitCharset(a, id, withCharmaps, optional)
		}
	}
}

// lookupCharsets consults the table most specific key first: the
// language-script pair (explicit or inferred script), then the bare
// language.
func lookupCharsets(table map[string][]string, t locale.Tag) []string {
	if script := t.LikelyScript(); script != "" {
		if ids, ok := table[t.Language+"-"+script]; ok {
			return ids
		}
	}
	return table[t.Language]
}

func (s *Session) emitCharset(a *aggregator, id string, withCharmap bool, optional map[string]bool) {
	rel := "charset/" + id + ".json"
	a.recordFile(rel)

	key := "charset." + safeKey(id)
	if !a.has(locale.RootName, key) {
		payload, ok := s.readFragment(rel)
		if !ok {
			return
		}

		var frag charsetFragment
		if err := json.Unmarshal(payload, &frag); err == nil {
			optional[id] = frag.Optional
		}

		a.add(locale.RootName, key, assignStatement(key, payload))
	}

	if !withCharmap || optional[id] {
		return
	}

	mapRel := "charmaps/" + id + ".json"
	a.recordFile(mapRel)

	mapKey := "charmaps." + safeKey(id)
	if a.has(locale.RootName, mapKey) {
		return
	}
	if payload, ok := s.readFragment(mapRel); ok {
		a.add(locale.RootName, mapKey, assignStatement(mapKey, payload))
	}
}

package locale

import "strings"

// UndLanguage is the undetermined-language subtag used for region-only
// fallback partitions.
const UndLanguage = "und"

// RootName is the name of the least specific partition.
const RootName = "root"

// Partition identifies one level of the locale-data fallback hierarchy.
// The zero value is the root partition.
type Partition struct {
	components []string
}

// Root is the least specific partition, shared by all locales.
var Root = Partition{}

// NewPartition creates a partition from its path components, e.g.
// ("en", "Latn", "US"). Empty components are dropped.
func NewPartition(components ...string) Partition {
	kept := make([]string, 0, len(components))
	for _, c := range components {
		if c != "" {
			kept = append(kept, c)
		}
	}
	return Partition{components: kept}
}

// Name returns the flattened partition name, components joined with "-".
// The root partition is named "root".
func (p Partition) Name() string {
	if len(p.components) == 0 {
		return RootName
	}
	return strings.Join(p.components, "-")
}

// Dir returns the partition's directory under a data root, components
// joined with "/". The root partition maps to the data root itself ("").
func (p Partition) Dir() string {
	return strings.Join(p.components, "/")
}

// IsRoot reports whether p is the root partition.
func (p Partition) IsRoot() bool {
	return len(p.components) == 0
}

// Chain returns the ordered sequence of partitions that must be merged to
// assemble data for the tag, least to most specific:
//
//	root, language, language-script, language-script-region,
//	language-region, und-region
//
// Partitions whose components are absent from the tag are filtered out.
// Region-based entries always follow script-based entries; this ordering is
// a fixed contract a runtime loader relies on to compose overrides.
func Chain(t Tag) []Partition {
	chain := make([]Partition, 0, 6)
	chain = append(chain, Root)
	chain = append(chain, NewPartition(t.Language))

	if t.Script != "" {
		chain = append(chain, NewPartition(t.Language, t.Script))
		if t.Region != "" {
			chain = append(chain, NewPartition(t.Language, t.Script, t.Region))
		}
	}
	if t.Region != "" {
		chain = append(chain, NewPartition(t.Language, t.Region))
		chain = append(chain, NewPartition(UndLanguage, t.Region))
	}

	return chain
}

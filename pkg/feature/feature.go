package feature

import "strings"

// Category identifies which resolution strategy handles a requested
// feature during aggregation.
type Category int

const (
	// Generic features name a per-partition data file looked up along the
	// locale fallback chain.
	Generic Category = iota

	// Charset covers the charset/charmap family, resolved through a
	// language-to-charset lookup table.
	Charset

	// Zoneinfo covers time-zone tables, resolved globally rather than
	// per partition.
	Zoneinfo

	// Normalization covers Unicode normalization forms, resolved per
	// script.
	Normalization
)

// String returns the category name for logging.
func (c Category) String() string {
	switch c {
	case Generic:
		return "generic"
	case Charset:
		return "charset"
	case Zoneinfo:
		return "zoneinfo"
	case Normalization:
		return "normalization"
	default:
		return "unknown"
	}
}

// Names with a dedicated resolution strategy.
const (
	NameCharset  = "charset"
	NameCharmaps = "charmaps"
	NameZoneinfo = "zoneinfo"
)

// normalization form tokens, in the order they are documented.
var forms = []string{"nfc", "nfd", "nfkc", "nfkd"}

// Feature is a classified feature request.
type Feature struct {
	// Name is the raw name the feature was registered under.
	Name string

	// Category selects the resolution strategy.
	Category Category

	// Form is the normalization form token (nfc, nfd, nfkc, nfkd).
	// Set only for Normalization features.
	Form string

	// Script is the script token following the form, e.g. "Latn" in
	// "nfc/Latn". The pseudo-script "all" selects the aggregated table.
	Script string

	// ScriptExplicit reports whether a script separator was present,
	// even when the token after it was empty ("nfc/").
	ScriptExplicit bool
}

// Classify categorizes a feature name. Classification is deterministic and
// side-effect-free. Rules, in priority order:
//
//  1. "charset" or "charmaps" → Charset family.
//  2. A normalization form token, optionally followed by "/<script>"
//     → Normalization.
//  3. "zoneinfo" → Zoneinfo.
//  4. Anything else → Generic, the name treated as a data-file basename.
func Classify(name string) Feature {
	if name == NameCharset || name == NameCharmaps {
		return Feature{Name: name, Category: Charset}
	}

	if f, ok := classifyNorm(name); ok {
		return f
	}

	if name == NameZoneinfo {
		return Feature{Name: name, Category: Zoneinfo}
	}

	return Feature{Name: name, Category: Generic}
}

func classifyNorm(name string) (Feature, bool) {
	form, script, hasScript := strings.Cut(name, "/")
	if !isForm(form) {
		return Feature{}, false
	}
	return Feature{
		Name:           name,
		Category:       Normalization,
		Form:           form,
		Script:         script,
		ScriptExplicit: hasScript,
	}, true
}

func isForm(s string) bool {
	for _, f := range forms {
		if s == f {
			return true
		}
	}
	return false
}

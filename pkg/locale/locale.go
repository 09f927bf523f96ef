package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Tag is a locale identifier broken into its components.
// It is immutable once parsed.
type Tag struct {
	// Language is the lowercase primary language subtag, e.g. "en".
	Language string

	// Script is the titlecase script subtag, e.g. "Latn".
	// Empty when the identifier carried no explicit script.
	Script string

	// Region is the uppercase region subtag, e.g. "US".
	// Empty when the identifier carried no region.
	Region string
}

// Parse breaks a locale identifier into language, script, and region
// components. Both "-" and "_" separators are accepted. Subtags beyond
// language, script, and region (variants, extensions) are ignored.
func Parse(id string) (Tag, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Tag{}, ErrInvalidTag
	}

	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_'
	})
	if len(parts) == 0 || !isLanguage(parts[0]) {
		return Tag{}, ErrInvalidTag
	}

	t := Tag{Language: strings.ToLower(parts[0])}

	for _, p := range parts[1:] {
		switch {
		case t.Script == "" && t.Region == "" && isScript(p):
			t.Script = titleCase(p)
		case t.Region == "" && isRegion(p):
			t.Region = strings.ToUpper(p)
		}
	}

	return t, nil
}

// String reassembles the tag in canonical hyphenated form.
func (t Tag) String() string {
	parts := make([]string, 0, 3)
	parts = append(parts, t.Language)
	if t.Script != "" {
		parts = append(parts, t.Script)
	}
	if t.Region != "" {
		parts = append(parts, t.Region)
	}
	return strings.Join(parts, "-")
}

// LikelyScript returns the script the tag's data is written in. When the
// tag carries an explicit script it is returned as-is; otherwise the likely
// script for the language is inferred from the CLDR likely-subtags data.
// Returns "" when no script can be determined.
func (t Tag) LikelyScript() string {
	if t.Script != "" {
		return t.Script
	}

	parsed, err := language.Parse(t.Language)
	if err != nil {
		return ""
	}

	script, conf := parsed.Script()
	if conf == language.No {
		return ""
	}
	if s := script.String(); s != "Zzzz" {
		return s
	}
	return ""
}

func isLanguage(s string) bool {
	if len(s) < 2 || len(s) > 3 {
		return false
	}
	return isAlpha(s)
}

func isScript(s string) bool {
	return len(s) == 4 && isAlpha(s)
}

func isRegion(s string) bool {
	if len(s) == 2 && isAlpha(s) {
		return true
	}
	if len(s) == 3 {
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	}
	return false
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

func titleCase(s string) string {
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

package feature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/localepack/pkg/feature"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want feature.Feature
	}{
		{"charset", feature.Feature{Name: "charset", Category: feature.Charset}},
		{"charmaps", feature.Feature{Name: "charmaps", Category: feature.Charset}},
		{"zoneinfo", feature.Feature{Name: "zoneinfo", Category: feature.Zoneinfo}},
		{"nfc", feature.Feature{Name: "nfc", Category: feature.Normalization, Form: "nfc"}},
		{"nfd", feature.Feature{Name: "nfd", Category: feature.Normalization, Form: "nfd"}},
		{"nfkc", feature.Feature{Name: "nfkc", Category: feature.Normalization, Form: "nfkc"}},
		{"nfkd", feature.Feature{Name: "nfkd", Category: feature.Normalization, Form: "nfkd"}},
		{"nfc/Latn", feature.Feature{Name: "nfc/Latn", Category: feature.Normalization, Form: "nfc", Script: "Latn", ScriptExplicit: true}},
		{"nfc/all", feature.Feature{Name: "nfc/all", Category: feature.Normalization, Form: "nfc", Script: "all", ScriptExplicit: true}},
		{"nfc/", feature.Feature{Name: "nfc/", Category: feature.Normalization, Form: "nfc", ScriptExplicit: true}},
		{"dateformat", feature.Feature{Name: "dateformat", Category: feature.Generic}},
		{"localeinfo", feature.Feature{Name: "localeinfo", Category: feature.Generic}},
		// Not a known form token, so the name falls through to generic.
		{"nfx/Latn", feature.Feature{Name: "nfx/Latn", Category: feature.Generic}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, feature.Classify(tt.name))
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"charset", "nfc/Latn", "zoneinfo", "dateformat"} {
		first := feature.Classify(name)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, feature.Classify(name))
		}
	}
}

func TestCategoryString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "generic", feature.Generic.String())
	assert.Equal(t, "charset", feature.Charset.String())
	assert.Equal(t, "zoneinfo", feature.Zoneinfo.String())
	assert.Equal(t, "normalization", feature.Normalization.String())
}

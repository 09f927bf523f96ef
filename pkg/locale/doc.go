// Package locale parses locale identifiers and resolves the ordered
// fallback partition chain used to assemble locale data.
//
// A partition is a named bucket of locale data scoped to one level of
// language/script/region specificity. Partitions form a specificity
// hierarchy: a runtime loader applies them least-to-most specific so more
// specific data overrides less specific data.
//
//	tag, _ := locale.Parse("zh-Hans-CN")
//	for _, p := range locale.Chain(tag) {
//		fmt.Println(p.Name())
//	}
//	// root, zh, zh-Hans, zh-Hans-CN, zh-CN, und-CN
//
// Likely-script inference for tags without an explicit script is delegated
// to golang.org/x/text/language.
package locale

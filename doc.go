// Package localepack injects locale data into a web application bundle at
// build time. Given a target locale list and the set of data-feature names
// collected while scanning source files, it locates the matching
// locale-data fragments on disk, merges them by locale-inheritance
// partition, and emits loadable bundles plus manifests describing what was
// emitted.
//
// # Usage
//
// A host build pipeline drives two phases. During scanning it registers
// every feature name it discovers; once all source modules are known it
// triggers one emission pass:
//
//	session, err := localepack.New(
//	    localepack.WithDataRoot("./node_modules/ilib"),
//	    localepack.WithOutputDir("assets"),
//	    localepack.WithLocales("en-US", "de-DE"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer session.Close()
//
//	// during source scanning
//	session.RegisterFeature("dateformat")
//	session.RegisterFeature("zoneinfo")
//
//	// before real content exists, give the host graph stable nodes
//	if _, err := session.Prepare(nil); err != nil {
//	    log.Fatal(err)
//	}
//
//	// once all modules are known
//	sources, err := session.Emit(ctx, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The returned OutputSources map lets the caller keep in-memory module
// representations synchronized with what was written to disk.
//
// # Partitions
//
// Emitted data is grouped into partitions, one bundle per level of
// language/script/region specificity (root, "en", "zh-Hans", "zh-Hans-CN",
// "zh-CN", "und-CN"). A runtime loader applies a locale's partition chain
// least-to-most specific so overrides compose correctly. Partition
// resolution lives in pkg/locale.
//
// # Features
//
// Most feature names are generic: the name is a data-file basename looked
// up along each locale's fallback chain. Four names get bespoke handling:
// "charset" and "charmaps" resolve through a language-to-charset table,
// "zoneinfo" pulls the global time-zone set, and normalization-form tokens
// ("nfc", "nfd/Latn", "nfkc/all", ...) resolve per script. Classification
// lives in pkg/feature.
//
// The feature set is append-only for the life of a session. Re-running
// Emit with an unchanged set is served from the emission cache and returns
// byte-identical output.
package localepack

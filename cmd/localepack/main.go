// localepack bundles locale data for a web application build: it reads the
// feature names a source scan collected, resolves the locale-data fragments
// they need, and writes partition bundles plus manifests to the output
// directory.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dmitrymomot/localepack"
	"github.com/dmitrymomot/localepack/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "localepack: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		featuresPath string
		configPath   string
		root         string
		out          string
		compilation  string
		locales      []string
		prepareOnly  bool
		debug        bool
	)

	pflag.StringVar(&featuresPath, "features", "", "file with one feature name per line (default: stdin)")
	pflag.StringVar(&configPath, "config", "", "YAML config file")
	pflag.StringVar(&root, "root", "", "locale-data installation root (default: $ILIB_ROOT, then ./node_modules/ilib)")
	pflag.StringVar(&out, "out", "", "output directory (default: assets)")
	pflag.StringVar(&compilation, "compilation", "", "compilation mode of the installation: uncompiled or compiled")
	pflag.StringSliceVar(&locales, "locales", nil, "target locales, e.g. en-US,de-DE")
	pflag.BoolVar(&prepareOnly, "prepare", false, "only pre-create empty partition resources")
	pflag.BoolVar(&debug, "debug", false, "enable diagnostic logging")
	pflag.Parse()

	var opts []localepack.Option
	if configPath != "" {
		cfg, err := localepack.LoadConfig(configPath)
		if err != nil {
			return err
		}
		opts = append(opts, cfg.Options()...)
	}
	if root != "" {
		opts = append(opts, localepack.WithDataRoot(root))
	}
	if out != "" {
		opts = append(opts, localepack.WithOutputDir(out))
	}
	if compilation != "" {
		opts = append(opts, localepack.WithCompilation(compilation))
	}
	if len(locales) > 0 {
		opts = append(opts, localepack.WithLocales(locales...))
	}
	if debug {
		opts = append(opts, localepack.WithDebug(), localepack.WithLogger(logger.New(logger.WithDebug())))
	}

	session, err := localepack.New(opts...)
	if err != nil {
		return err
	}
	defer session.Close()

	if prepareOnly {
		names, err := session.Prepare(nil)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	if err := registerFeatures(session, featuresPath); err != nil {
		return err
	}

	sources, err := session.Emit(context.Background(), nil)
	if err != nil {
		return err
	}
	paths := make([]string, 0, len(sources))
	for path := range sources {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	for _, path := range paths {
		fmt.Println(path)
	}

	return nil
}

// registerFeatures feeds the scan results into the session, one feature
// name per line. Blank lines and #-comments are skipped.
func registerFeatures(session *localepack.Session, path string) error {
	in := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening features file: %w", err)
		}
		defer f.Close()
		in = f
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		session.RegisterFeature(line)
	}

	return scanner.Err()
}

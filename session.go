package localepack

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/localepack/pkg/cache"
	"github.com/dmitrymomot/localepack/pkg/feature"
	"github.com/dmitrymomot/localepack/pkg/logger"
)

// Compilation modes. The mode selects which subtree of the locale-data
// installation fragments are read from.
const (
	CompilationUncompiled = "uncompiled"
	CompilationCompiled   = "compiled"
)

// DefaultOutputDir is where bundles and manifests are written when no
// output directory is configured.
const DefaultOutputDir = "assets"

// EnvDataRoot is the environment variable consulted when no data root is
// configured explicitly.
const EnvDataRoot = "ILIB_ROOT"

// sessionState is the emission cache state machine.
type sessionState int

const (
	stateNotEmitted sessionState = iota
	stateEmitting
	stateEmitted
)

// Session owns all state for one build: the append-only set of requested
// features, the emission cache, and the resolved data root. It replaces
// hidden process-global state with an explicit handle the host pipeline
// threads through registration and emission.
//
// A Session is not safe for concurrent use; the host invokes registration
// during source scanning and emission once per build, never overlapping.
type Session struct {
	id  string
	log *slog.Logger

	fsys        fs.FS  // locale-data root
	dataRoot    string // informational; empty when an fs.FS was injected
	outDir      string
	compilation string
	locales     []string
	debug       bool

	// Parsed lookup tables (charset table, zonetab), kept across passes.
	tables    cache.Cache[map[string][]string]
	ownTables bool

	features     map[string]feature.Feature
	featureOrder []string

	state      sessionState
	lastOutput OutputSources
}

// New creates a build session. The locale-data root is resolved eagerly so
// a misconfigured installation fails the build up front rather than
// mid-pass.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		id:          uuid.NewString(),
		outDir:      DefaultOutputDir,
		compilation: CompilationUncompiled,
		features:    make(map[string]feature.Feature),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		if s.debug {
			s.log = logger.New(logger.WithDebug())
		} else {
			s.log = logger.NewNope()
		}
	}
	s.log = s.log.With(slog.String("session", s.id))

	if s.fsys == nil {
		dir, err := resolveDataRoot(s.dataRoot, s.compilation)
		if err != nil {
			return nil, err
		}
		s.dataRoot = dir
		s.fsys = os.DirFS(dir)
	}

	if s.tables == nil {
		s.tables = cache.NewMemory[map[string][]string]()
		s.ownTables = true
	}

	s.log.Debug("session created",
		slog.String("data_root", s.dataRoot),
		slog.String("output_dir", s.outDir),
		slog.String("compilation", s.compilation))

	return s, nil
}

// Close releases session resources. Only the session-owned lookup-table
// cache holds any; injected caches are left to their owner.
func (s *Session) Close() error {
	if s.ownTables {
		return s.tables.Close()
	}
	return nil
}

// RegisterFeature marks a feature name as required for this build. The
// feature set is append-only: once seen, a name stays requested. Reports
// whether the name was new; only a new name invalidates a cached emission.
func (s *Session) RegisterFeature(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if _, ok := s.features[name]; ok {
		return false
	}

	f := feature.Classify(name)
	s.features[name] = f
	s.featureOrder = append(s.featureOrder, name)

	if s.state == stateEmitted {
		s.state = stateNotEmitted
		s.lastOutput = nil
	}

	s.log.Debug("feature registered",
		slog.String("name", name),
		slog.String("category", f.Category.String()))

	return true
}

// Features returns the registered feature names in registration order.
func (s *Session) Features() []string {
	out := make([]string, len(s.featureOrder))
	copy(out, s.featureOrder)
	return out
}

// tableKey namespaces a lookup-table cache key by installation, so a
// shared table cache never mixes tables from different data roots. An
// injected fs.FS has no path identity; the session id stands in for it.
func (s *Session) tableKey(file string) string {
	root := s.dataRoot
	if root == "" {
		root = s.id
	}
	return root + "|" + file
}

// resolveDataRoot locates the fragment directory of a locale-data
// installation. Resolution order: explicit root, the ILIB_ROOT environment
// variable, then ./node_modules/ilib. An uncompiled installation keeps its
// fragments under js/data/locale; a compiled one under locale.
func resolveDataRoot(root, compilation string) (string, error) {
	if root == "" {
		root = os.Getenv(EnvDataRoot)
	}
	if root == "" {
		root = filepath.Join("node_modules", "ilib")
	}

	sub := "locale"
	if compilation == CompilationUncompiled {
		sub = filepath.Join("js", "data", "locale")
	}

	dir := filepath.Join(root, sub)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNoDataRoot, dir)
	}

	return dir, nil
}

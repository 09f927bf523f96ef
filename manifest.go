package localepack

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Manifest and bundle resource names.
const (
	// LocalManifestName lists every fragment path considered this pass,
	// found or not. A client-side loader uses it to avoid requesting data
	// known not to exist.
	LocalManifestName = "ilibmanifest.json"

	// RemoteManifestName lists every partition bundle actually produced,
	// the deployable catalog of what is fetchable.
	RemoteManifestName = "remote-ilibmanifest.json"
)

const bundleHeader = "// Code generated by localepack; do not edit.\n"

// renderBundle serializes one partition bucket as a CommonJS module whose
// installLocale entry point applies every recorded assignment, in the
// order fragments were added.
func renderBundle(b *bucket) string {
	var sb strings.Builder
	sb.WriteString(bundleHeader)
	sb.WriteString("module.exports.installLocale = function(root) {\n")
	for _, e := range b.entries {
		sb.WriteString("    ")
		sb.WriteString(e.text)
		sb.WriteString("\n")
	}
	sb.WriteString("};\n")
	return sb.String()
}

// emptyBundle is the placeholder content written before real data exists.
func emptyBundle() string {
	return bundleHeader + "module.exports.installLocale = function(root) {\n};\n"
}

// renderManifest serializes a file listing as a {"files": [...]} resource.
func renderManifest(files []string) string {
	if files == nil {
		files = []string{}
	}
	data, _ := json.MarshalIndent(struct {
		Files []string `json:"files"`
	}{Files: files}, "", "  ")
	return string(data) + "\n"
}

// writeOutputs serializes every non-empty partition bucket plus the two
// manifests into the output directory and returns the path→content map.
func (s *Session) writeOutputs(a *aggregator) (OutputSources, error) {
	outDir, err := filepath.Abs(s.outDir)
	if err != nil {
		return nil, fmt.Errorf("resolving output dir: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	out := make(OutputSources)
	bundles := []string{}

	for _, b := range a.partitions() {
		if len(b.entries) == 0 {
			continue
		}
		name := b.name + ".js"
		bundles = append(bundles, name)
		out[filepath.Join(outDir, name)] = renderBundle(b)
	}

	out[filepath.Join(outDir, LocalManifestName)] = renderManifest(a.files)
	out[filepath.Join(outDir, RemoteManifestName)] = renderManifest(bundles)

	for path, content := range out {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
	}

	return out, nil
}

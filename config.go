package localepack

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries emit options loaded from a YAML file, using the option
// vocabulary host pipelines already know.
//
// Example:
//
//	ilibRoot: ./node_modules/ilib
//	locales:
//	  - en-US
//	  - de-DE
//	tempDir: assets
//	compilation: uncompiled
//	debug: false
type Config struct {
	ILibRoot    string   `yaml:"ilibRoot"`
	Locales     []string `yaml:"locales"`
	TempDir     string   `yaml:"tempDir"`
	Compilation string   `yaml:"compilation"`
	Debug       bool     `yaml:"debug"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	return &c, nil
}

// Options translates the config into session options. Zero-valued fields
// produce no option, so defaults and other option sources still apply.
func (c *Config) Options() []Option {
	var opts []Option
	if c.ILibRoot != "" {
		opts = append(opts, WithDataRoot(c.ILibRoot))
	}
	if len(c.Locales) > 0 {
		opts = append(opts, WithLocales(c.Locales...))
	}
	if c.TempDir != "" {
		opts = append(opts, WithOutputDir(c.TempDir))
	}
	if c.Compilation != "" {
		opts = append(opts, WithCompilation(c.Compilation))
	}
	if c.Debug {
		opts = append(opts, WithDebug())
	}
	return opts
}

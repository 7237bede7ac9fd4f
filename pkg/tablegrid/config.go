package tablegrid

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds persistent CLI settings. It is read from a YAML file and
// overridden by command-line flags.
type Config struct {
	// Format is the grid document format, "json" or "yaml" (default "json").
	Format string `yaml:"format"`

	// Pretty indents JSON output.
	Pretty bool `yaml:"pretty"`

	// SheetName is the worksheet used by xlsx import and export.
	SheetName string `yaml:"sheet_name"`

	// Charset is the WHATWG label of pasted clipboard files (default UTF-8).
	Charset string `yaml:"charset"`

	// CropToUsedRange drops empty leading rows and columns on xlsx import
	// (default true).
	CropToUsedRange *bool `yaml:"crop_to_used_range"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{Format: "json"}
}

// LoadConfig reads a YAML config file. Fields missing from the file keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Format == "" {
		cfg.Format = "json"
	}
	return cfg, nil
}

// Options converts the config into library options.
func (c Config) Options() Options {
	return Options{
		SheetName:       c.SheetName,
		Charset:         c.Charset,
		CropToUsedRange: c.CropToUsedRange,
	}
}

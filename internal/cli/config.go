package cli

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config is the optional blockwalk.yaml file: server address, export
// directory, and per-diagram parameter overrides, e.g.
//
//	addr: ":9090"
//	out_dir: "./pages"
//	params:
//	  amm-swap:
//	    dx: 250
//	    fee: 5
type Config struct {
	Addr   string                        `mapstructure:"addr"`
	OutDir string                        `mapstructure:"out_dir"`
	Params map[string]map[string]float64 `mapstructure:"params"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Addr:   ":8080",
		OutDir: ".",
		Params: map[string]map[string]float64{},
	}
}

// LoadConfig reads and decodes a YAML config file. An empty path returns the
// defaults; a missing file at an explicit path is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Decode via an intermediate map so mapstructure handles the numeric
	// coercion (YAML ints to float64) uniformly.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// ParamsFor returns the configured parameter overrides for a diagram slug
// (nil when none are set).
func (c *Config) ParamsFor(slug string) map[string]float64 {
	if c == nil || c.Params == nil {
		return nil
	}
	return c.Params[slug]
}

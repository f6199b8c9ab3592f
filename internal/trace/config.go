package trace

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk trace configuration.
//
//	enabled: true
//	format: json
//	categories: [focus, fontscale]
type Config struct {
	Enabled    bool     `yaml:"enabled"`
	Format     string   `yaml:"format,omitempty"`
	Categories []string `yaml:"categories,omitempty"`
}

// LoadConfig reads a YAML trace configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read trace config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML trace configuration.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse trace config: %w", err)
	}
	return cfg, nil
}

// NewSink builds a sink writing to w according to the configuration.
func (c Config) NewSink(w io.Writer) (*Sink, error) {
	var s *Sink
	switch c.Format {
	case "", "text":
		s = NewText(w)
	case "json":
		s = NewJSON(w)
	default:
		return nil, fmt.Errorf("unsupported trace format: %s (use text or json)", c.Format)
	}
	if len(c.Categories) > 0 {
		cats := make([]Category, 0, len(c.Categories))
		for _, name := range c.Categories {
			if name == "all" {
				cats = append(cats[:0], AllCategories...)
				break
			}
			cat, err := ParseCategory(name)
			if err != nil {
				return nil, err
			}
			cats = append(cats, cat)
		}
		s.Only(cats...)
	}
	s.SetEnabled(c.Enabled)
	return s, nil
}

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

type TranslationConfig struct {
	TargetMap  string `toml:"target_map"`
	Discipline string `toml:"discipline"`
	Workers    int    `toml:"workers"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

// CatalogConfig overrides the built-in map lists. An empty list keeps the
// built-in one.
type CatalogConfig struct {
	AllMaps              []string `toml:"all_maps"`
	MappingFailures      []string `toml:"mapping_failures"`
	ConnectivityFailures []string `toml:"connectivity_failures"`
	IntramapOverlaps     []string `toml:"intramap_overlaps"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type Config struct {
	Translation TranslationConfig `toml:"translation"`
	Memgraph    MemgraphConfig    `toml:"memgraph"`
	Catalog     CatalogConfig     `toml:"catalog"`
	Log         LogConfig         `toml:"log"`
}

func Default() *Config {
	return &Config{
		Translation: TranslationConfig{
			Discipline: "ort",
			Workers:    4,
		},
		Memgraph: MemgraphConfig{
			URI: "bolt://localhost:7687",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// Load reads a TOML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if cfg.Translation.Workers < 1 {
		cfg.Translation.Workers = 1
	}

	return cfg, nil
}

// LoadOrDefault loads path when it is set, otherwise returns the defaults.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// ApplyEnv overrides settings from the environment.
func (c *Config) ApplyEnv() error {
	setString(&c.Translation.TargetMap, "COCO_TARGET_MAP")
	setString(&c.Translation.Discipline, "COCO_DISCIPLINE")
	if v := os.Getenv("COCO_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid COCO_WORKERS %q", v)
		}
		c.Translation.Workers = n
	}
	setString(&c.Memgraph.URI, "MEMGRAPH_URI")
	setString(&c.Memgraph.User, "MEMGRAPH_USER")
	setString(&c.Memgraph.Password, "MEMGRAPH_PASSWORD")
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Log.Format, "LOG_FORMAT")
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

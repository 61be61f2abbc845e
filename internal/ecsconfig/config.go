// Package ecsconfig loads the small set of tunables a long-running
// process embedding the ecs package is expected to supply: initial table
// sizing and logging. It does not configure the engine's correctness
// behavior, which has no tunables.
package ecsconfig

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the root of an ecsdemo-style process's TOML configuration.
type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Logging LoggingConfig `toml:"logging"`
}

// EngineConfig mirrors ecs.Config, kept as a separate type so the TOML
// schema is free to evolve (add pool sizes, GC hints, etc.) without
// reshaping ecs.Config itself.
type EngineConfig struct {
	InitialTableCapacity int `toml:"initial_table_capacity"`
}

// LoggingConfig selects the zap configuration a process builds its
// logger from, matching the teacher's own Level/Format split.
type LoggingConfig struct {
	Level  string `toml:"level"`  // zapcore level name: "debug", "info", "warn", "error"
	Format string `toml:"format"` // "json" or "console"
}

// Load reads and parses the TOML file at path, filling in Default()'s
// values for anything the file omits.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the configuration a process uses when no file is
// supplied.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			InitialTableCapacity: 8,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

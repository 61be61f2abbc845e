// Command ecsdemo is a minimal worked example of embedding the ecs
// package: it is not part of the engine's core and exists only to show
// the Spawn/Despawn/GetComponent surface wired up end to end.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/l1jgo/ecsengine/ecs"
	"github.com/l1jgo/ecsengine/internal/ecsconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (optional)")
	flag.Parse()

	cfg := ecsconfig.Default()
	if *configPath != "" {
		loaded, err := ecsconfig.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ecsdemo: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ecsdemo: build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	engine := ecs.NewEngine(ecs.Config{InitialTableCapacity: cfg.Engine.InitialTableCapacity}, logger)

	alice := engine.Spawn(ecs.Bundle2[Position, Velocity]{
		A: Position{X: 0, Y: 0},
		B: Velocity{DX: 1, DY: 0},
	})
	bob := engine.Spawn(ecs.Bundle3[Position, Velocity, Health]{
		A: Position{X: 10, Y: 10},
		B: Velocity{DX: 0, DY: -1},
		C: Health{HP: 100},
	})

	logger.Info("spawned demo entities",
		zap.Stringer("alice", alice.ID()),
		zap.Stringer("bob", bob.ID()),
	)

	posID := ecs.RegisterComponent[Position](engine.Registry())
	if pos, ok := ecs.GetComponent[Position](engine, alice.ID(), posID); ok {
		logger.Info("alice position", zap.Float64("x", pos.X), zap.Float64("y", pos.Y))
	}

	alice.Despawn()
	logger.Info("despawned alice", zap.Bool("bob_still_alive", bob.IsAlive()))
}

func newLogger(cfg ecsconfig.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

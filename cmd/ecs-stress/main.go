package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/plus3/sparsecs/ecs"
	"github.com/plus3/sparsecs/ecs/inspect"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	configPath := flag.String("config", "", "Optional TOML or YAML config file.")
	duration := flag.Duration("duration", 0, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 0, "The initial number of entities to create.")
	seed := flag.Int64("seed", 0, "Seed for the random workload.")
	profileMode := flag.String("profile", "", "Write a cpu or mem profile to the working directory.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	dump := flag.Int("dump", 0, "Print the components of the first N entities after the report.")
	dumpFilter := flag.String("dump-filter", "", "Only dump entities with a component whose name contains this.")
	flag.Parse()

	cfg := defaults()
	if *configPath != "" {
		loaded, err := Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// flags given on the command line win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "duration":
			cfg.Run.Duration = *duration
		case "entities":
			cfg.Run.Entities = *entityCount
		case "seed":
			cfg.Run.Seed = *seed
		case "profile":
			cfg.Run.Profile = *profileMode
		case "gc-pause-metrics":
			cfg.Run.GCPauseMetrics = *gcPauseMetrics
		case "dump":
			cfg.Run.Dump = *dump
		case "dump-filter":
			cfg.Run.DumpFilter = *dumpFilter
		}
	})
	if err := cfg.validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("stress test failed", zap.Error(err))
	}
}

func run(cfg *Config, logger *zap.Logger) error {
	logger.Info("starting ECS stress test",
		zap.Duration("duration", cfg.Run.Duration),
		zap.Int("entities", cfg.Run.Entities),
		zap.Int64("seed", cfg.Run.Seed),
	)

	switch cfg.Run.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	// 1. Setup Registry, Storage, and Scheduler
	registry := ecs.NewComponentRegistry()
	registerComponents(registry)
	storage := ecs.NewStorage(registry,
		ecs.WithLogger(logger.Named("ecs")),
		ecs.WithInitialCapacity(cfg.Run.Entities),
	)
	spawner := NewSpawner(cfg.Run.Seed, cfg.Run.Lifetime)
	scheduler := ecs.NewScheduler(storage)
	registerSystems(scheduler, spawner)

	// 2. Populate Storage with initial entities
	for i := 0; i < cfg.Run.Entities; i++ {
		if _, err := spawner.Spawn(storage); err != nil {
			return fmt.Errorf("populate storage: %w", err)
		}
	}
	logger.Info("population complete", zap.Int("entities", storage.EntityCount()))

	// 3. Run the simulation loop
	report := &Report{
		Duration:       cfg.Run.Duration,
		Entities:       cfg.Run.Entities,
		Components:     componentCount,
		Systems:        scheduler.Schedule().Len(),
		GCPauseMetrics: cfg.Run.GCPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Run.Duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			if err := scheduler.Once(deltaTime.Seconds()); err != nil {
				return fmt.Errorf("frame %d: %w", totalUpdates, err)
			}
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Storage = storage.Stats()
	report.Scheduler = scheduler.GetStats()

	logger.Info("simulation finished", zap.Int64("updates", totalUpdates))

	// 4. Generate Report to Console
	if err := report.Generate(os.Stdout); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	if cfg.Run.Dump > 0 {
		page := inspect.Browse(storage, cfg.Run.DumpFilter, 0, cfg.Run.Dump)
		if err := inspect.WritePage(os.Stdout, storage, page); err != nil {
			return fmt.Errorf("dump entities: %w", err)
		}
	}
	return nil
}

func newLogger(cfg LoggingConfig) (*zap.Logger, error) {
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

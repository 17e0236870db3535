package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"GopherRunner/internal/behaviour"
	"GopherRunner/internal/config"
	"GopherRunner/internal/engine"
	"GopherRunner/internal/level"
	"GopherRunner/internal/logger"
	"GopherRunner/internal/save"
	"GopherRunner/scripts"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", findAsset("runner.json"), "runner config file")
	levelPath := flag.String("level", "", "level file (overrides config)")
	runs := flag.Int("runs", -1, "number of runs (overrides config)")
	seed := flag.Int64("seed", 0, "seed for generated levels (overrides config)")
	logLevel := flag.String("log-level", "", "log level (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	logger.InitWithLevel(cfg.LogLevel)
	defer logger.Sync()
	if err != nil {
		logger.Log.Error("Failed to load config, using defaults", zap.Error(err))
	}

	if *levelPath != "" {
		cfg.LevelPath = *levelPath
	}
	if cfg.LevelPath != "" {
		cfg.LevelPath = resolveAssetPath(cfg.LevelPath)
	}
	if *runs >= 0 {
		cfg.Runs = *runs
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil && ctx.Err() == nil {
		logger.Log.Error("Game stopped", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.RunnerConfig) error {
	logger.Log.Info("Starting game...")

	lvl, err := loadLevel(cfg)
	if err != nil {
		return err
	}

	store := openRecords(cfg)

	var watcher *level.Watcher
	if cfg.HotReload && cfg.LevelPath != "" {
		watcher, err = level.NewWatcher(cfg.LevelPath)
		if err != nil {
			logger.Log.Warn("Hot reload disabled", zap.Error(err))
		} else {
			defer watcher.Close()
		}
	}

	sim := engine.NewSimulation(behaviour.NewComponentManager())
	sim.Realtime = cfg.Realtime
	input := scripts.StaticAxes{"Vertical": 1}

	scene, err := level.Build(lvl, sim.Manager, input)
	if err != nil {
		return err
	}

	for i := 0; i < cfg.Runs; i++ {
		if watcher != nil {
			scene = reloadIfChanged(watcher, sim, scene, input)
		}

		if i > 0 {
			sim.RestartRun()
		}

		frames, err := sim.Run(ctx, cfg.FixedDelta, cfg.MaxFrames(), scene.Finished)
		if err != nil {
			return err
		}

		result := save.RunResult{
			Level:    scene.Level.Name,
			Time:     sim.RunTime(),
			Distance: scene.Player.Distance(),
			Gates:    scene.GatesApplied(),
			Speed:    scene.Player.Speed(),
			Finished: scene.Finished(),
		}
		rec, improved, err := store.Record(result)
		if err != nil {
			logger.Log.Warn("Failed to save run record", zap.Error(err))
		}

		logger.Log.Info("Run complete",
			zap.Int("run", i+1),
			zap.Int("frames", frames),
			zap.Bool("finished", result.Finished),
			zap.Float32("time", result.Time),
			zap.Float32("distance", result.Distance),
			zap.Int("gates", result.Gates),
			zap.Float32("speed", result.Speed),
			zap.Bool("newBest", improved),
			zap.Float32("bestTime", rec.BestTime))
	}
	return nil
}

func loadLevel(cfg config.RunnerConfig) (*level.Level, error) {
	if cfg.LevelPath != "" {
		lvl, err := level.Load(cfg.LevelPath)
		if err != nil {
			return nil, err
		}
		logger.Log.Info("Level loaded", zap.String("path", cfg.LevelPath))
		return lvl, nil
	}

	logger.Log.Info("No level file configured, generating one", zap.Int64("seed", cfg.Seed))
	return level.Generate(level.GenerateOptions{
		Seed:        cfg.Seed,
		Gates:       cfg.GeneratedGates,
		Spacing:     cfg.GateSpacing,
		PlayerSpeed: cfg.PlayerSpeed,
	}), nil
}

func openRecords(cfg config.RunnerConfig) *save.RecordStore {
	if !cfg.SaveRecords {
		return save.NewRecordStore(nil)
	}
	store, err := save.Open(cfg.AppName)
	if err != nil {
		logger.Log.Warn("Run records will not be saved", zap.Error(err))
	}
	return store
}

// reloadIfChanged rebuilds the scene when the level file changed since the
// last run. A level that fails to load keeps the current scene.
func reloadIfChanged(w *level.Watcher, sim *engine.Simulation, scene *level.Scene, input scripts.AxisReader) *level.Scene {
	var changed string
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return scene
			}
			changed = path
			continue
		case err, ok := <-w.Errors:
			if !ok {
				return scene
			}
			logger.Log.Warn("Level watcher error", zap.Error(err))
			continue
		default:
		}
		break
	}
	if changed == "" {
		return scene
	}

	lvl, err := level.Load(changed)
	if err != nil {
		logger.Log.Error("Level reload failed", zap.String("path", changed), zap.Error(err))
		return scene
	}

	sim.Manager.Clear()
	rebuilt, err := level.Build(lvl, sim.Manager, input)
	if err != nil {
		logger.Log.Error("Level rebuild failed", zap.String("path", changed), zap.Error(err))
		sim.Manager.Clear()
		if rebuilt, err = level.Build(scene.Level, sim.Manager, input); err != nil {
			return scene
		}
		return rebuilt
	}
	logger.Log.Info("Level reloaded", zap.String("path", changed))
	return rebuilt
}

func findAsset(name string) string {
	exePath, _ := os.Executable()
	exeDir := filepath.Dir(exePath)

	paths := []string{
		filepath.Join(exeDir, "assets", name),
		filepath.Join(exeDir, name),
		filepath.Join("assets", name),
		name,
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return name
}

func resolveAssetPath(path string) string {
	if _, err := os.Stat(path); err == nil {
		return path
	}

	exePath, _ := os.Executable()
	exeAssetPath := filepath.Join(filepath.Dir(exePath), "assets", filepath.Base(path))
	if _, err := os.Stat(exeAssetPath); err == nil {
		return exeAssetPath
	}
	return path
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags]\n\nRuns the endless runner headless and records results.\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
}

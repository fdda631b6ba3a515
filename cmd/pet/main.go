package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/pocketpet/client/display"
	"github.com/cbodonnell/pocketpet/pkg/clock"
	"github.com/cbodonnell/pocketpet/pkg/config"
	"github.com/cbodonnell/pocketpet/pkg/game"
	"github.com/cbodonnell/pocketpet/pkg/headless"
	"github.com/cbodonnell/pocketpet/pkg/log"
	"github.com/cbodonnell/pocketpet/pkg/persistence"
	"github.com/cbodonnell/pocketpet/pkg/pet"
	"github.com/cbodonnell/pocketpet/pkg/power"
	"github.com/cbodonnell/pocketpet/pkg/queue"
	"github.com/cbodonnell/pocketpet/pkg/repositories"
	"github.com/cbodonnell/pocketpet/pkg/version"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML tuning file, reloaded on change")
	logLevel := flag.String("log-level", "", "Log level, overrides the config file")
	storage := flag.String("storage", "", "Storage URL: file://<path>, sqlite://<path> or postgresql://...")
	headlessMode := flag.Bool("headless", false, "Run without a window and read triggers from stdin")
	poweroff := flag.Bool("poweroff", false, "Power the device off on the power trigger")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	level := cfg.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	parsedLogLevel, err := log.ParseLogLevel(level)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting pocketpet version %s", version.Get())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// flag, then environment, then config file
	storageURL := repositories.ResolveURL(*storage, os.Getenv("POCKETPET_STORAGE_URL"), cfg.Storage)
	repository, err := repositories.NewFromURL(ctx, storageURL)
	if err != nil {
		panic(fmt.Sprintf("Failed to create repository: %v", err))
	}
	defer repository.Close(context.Background())
	log.Info("Using storage %s", storageURL)

	realClock := clock.NewReal()
	persistenceManager := persistence.NewManager(persistence.NewManagerOptions{
		Repository:       repository,
		Clock:            realClock,
		AutosaveInterval: time.Duration(cfg.Timing.Autosave),
	})
	state := persistenceManager.Load(ctx)

	engine := pet.NewEngine(pet.NewEngineOptions{
		State:  state,
		Tuning: cfg.Tuning(),
		Now:    realClock.Now(),
	})

	var configSource game.ConfigSource
	if *configPath != "" {
		watcher, err := config.NewWatcher(*configPath)
		if err != nil {
			log.Warn("Config changes will not be picked up: %v", err)
		} else {
			defer watcher.Close()
			configSource = watcher
		}
	}

	var shutdowner game.Shutdowner
	if *poweroff {
		shutdowner = power.NewExecShutdowner()
	}

	inputQueue := queue.NewInMemoryQueue()
	gameManager := game.NewGameManager(game.NewGameManagerOptions{
		Engine:           engine,
		Persistence:      persistenceManager,
		InputQueue:       inputQueue,
		Clock:            realClock,
		Shutdowner:       shutdowner,
		ConfigSource:     configSource,
		GameLoopInterval: time.Duration(cfg.Timing.Loop),
	})
	// covers every exit path, the game manager saves at most once
	defer func() {
		if err := gameManager.Finalize(context.Background()); err != nil {
			log.Error("Final save failed: %v", err)
		}
	}()

	if *headlessMode {
		go headless.ReadTriggers(os.Stdin, inputQueue)
		log.Info("Starting headless game loop")
		if err := gameManager.Start(ctx); err != nil {
			log.Error("Game loop stopped with error: %v", err)
		}
		return
	}

	d := display.NewDisplay(ctx, display.NewDisplayOptions{
		GameManager: gameManager,
		InputQueue:  inputQueue,
		Clock:       realClock,
	})
	log.Info("Starting display")
	if err := d.Run(); err != nil {
		log.Error("Display stopped with error: %v", err)
	}
}

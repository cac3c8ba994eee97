package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/dodge/audio"
	"github.com/lixenwraith/dodge/config"
	"github.com/lixenwraith/dodge/constants"
	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/logger"
	"github.com/lixenwraith/dodge/render"
	"github.com/lixenwraith/dodge/status"
	"github.com/lixenwraith/dodge/terminal"
)

// options are the command-line overrides applied on top of the config file
type options struct {
	configPath string
	logFile    string
	logLevel   string
	debugHUD   bool
	mute       bool
	restart    string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("dodge", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "YAML config file")
	fs.StringVar(&opts.logFile, "log", "", "log file (overrides log.file)")
	fs.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn, error (overrides log.level)")
	fs.BoolVar(&opts.debugHUD, "debug", false, "show the metrics HUD")
	fs.BoolVar(&opts.mute, "mute", false, "disable the proximity hum")
	fs.StringVar(&opts.restart, "restart", "", "restart policy: when_over, always")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.debugHUD {
		cfg.DebugHUD = true
	}
	if opts.mute {
		cfg.Audio.Enabled = false
	}
	if opts.restart != "" {
		cfg.RestartPolicy = opts.restart
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func newAudioSink(cfg *config.Config) engine.AudioSink {
	if !cfg.Audio.Enabled {
		return &audio.Silent{}
	}
	return audio.NewSoundManager(&cfg.Audio)
}

// run wires the game and blocks until quit or signal
func run(ctx context.Context, cfg *config.Config, screen tcell.Screen, log *zap.Logger) error {
	sessionCfg, err := cfg.SessionConfig()
	if err != nil {
		return err
	}

	reg := status.NewRegistry()
	sched := engine.NewClockScheduler(engine.SystemClock{}, constants.SchedulerResolution, constants.PostQueueSize)
	renderer := render.NewRenderer(screen, cfg.DebugHUD, reg)
	session := engine.NewSession(sessionCfg, sched, renderer, newAudioSink(cfg), log, reg)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := terminal.NewKeySource(screen, sched, sessionCfg.Bindings, cfg.HoldWindow, terminal.Commands{
		Restart:          session.Restart,
		ToggleVisibility: session.ToggleVisibility,
		Quit:             cancel,
		Resize:           renderer.Sync,
	}, log)

	session.Connect(keys)
	session.Start()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(core.Guard(func() error { return sched.Run(gctx) }))
	g.Go(core.Guard(func() error { return keys.Run(gctx) }))
	err = g.Wait()

	// Both loops have exited: safe to touch session state from here
	session.Teardown()
	return err
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dodge: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dodge: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetFinalizer(screen.Fini)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, screen, log)
	stop()

	core.SetFinalizer(nil)
	screen.Fini()

	if err != nil {
		log.Error("exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "dodge: %v\n", err)
		os.Exit(1)
	}
}

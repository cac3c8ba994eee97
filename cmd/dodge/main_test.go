package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/dodge/config"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-debug", "-mute", "-restart", "always", "-log", "x.log"}, io.Discard)
	require.NoError(t, err)
	assert.True(t, opts.debugHUD)
	assert.True(t, opts.mute)
	assert.Equal(t, "always", opts.restart)
	assert.Equal(t, "x.log", opts.logFile)

	_, err = parseFlags([]string{"-nope"}, io.Discard)
	assert.Error(t, err)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dodge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug_hud: false\nlog:\n  level: warn\n"), 0o644))

	cfg, err := loadConfig(options{configPath: path, debugHUD: true, mute: true, logLevel: "debug"})
	require.NoError(t, err)
	assert.True(t, cfg.DebugHUD)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)

	_, err = loadConfig(options{restart: "never"})
	assert.Error(t, err)
}

// TestRunQuitKey drives the whole wiring on a simulation screen and quits with q
func TestRunQuitKey(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(60, 30)

	cfg := config.Default()
	cfg.Audio.Enabled = false

	done := make(chan error, 1)
	go func() { done <- run(context.Background(), cfg, screen, zap.NewNop()) }()

	// Movement then quit
	time.Sleep(50 * time.Millisecond)
	screen.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("run did not exit on quit")
	}
}

func TestRunContextCancel(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()

	cfg := config.Default()
	cfg.Audio.Enabled = false

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	assert.NoError(t, run(ctx, cfg, screen, zap.NewNop()))
}

package main

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/widebird/internal/autopilot"
	"github.com/vovakirdan/widebird/internal/config"
)

func withSeed(t *testing.T, seed int64) {
	t.Helper()
	old := flagSeed
	flagSeed = seed
	t.Cleanup(func() { flagSeed = old })
}

func TestRunAutoplay(t *testing.T) {
	withSeed(t, 11)

	var out bytes.Buffer
	err := runAutoplay(&out, config.DefaultGameConfig(), log.New(io.Discard), autoplayOptions{
		Sessions: 3,
		MaxTicks: 20000,
		Bias:     autopilot.DefaultBias,
	})
	if err != nil {
		t.Fatalf("runAutoplay() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 3 session lines, a blank line and a summary, got:\n%s", out.String())
	}
	for i, l := range lines[:3] {
		if !strings.HasPrefix(l, "session") {
			t.Errorf("line %d = %q, expected a session line", i, l)
		}
	}
	if !strings.HasPrefix(lines[4], "recorded ") || !strings.Contains(lines[4], "failed 0") {
		t.Errorf("summary = %q", lines[4])
	}
}

func TestRunAutoplayIsDeterministic(t *testing.T) {
	withSeed(t, 4)

	run := func() string {
		var out bytes.Buffer
		err := runAutoplay(&out, config.DefaultGameConfig(), log.New(io.Discard), autoplayOptions{
			Sessions: 2,
			MaxTicks: 3000,
			Bias:     autopilot.DefaultBias,
		})
		if err != nil {
			t.Fatalf("runAutoplay() failed: %v", err)
		}
		return out.String()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed gave different runs:\n%s\n---\n%s", a, b)
	}
}

func TestRunAutoplayCapped(t *testing.T) {
	withSeed(t, 2)

	var out bytes.Buffer
	err := runAutoplay(&out, config.DefaultGameConfig(), log.New(io.Discard), autoplayOptions{
		Sessions: 2,
		MaxTicks: 30,
		Bias:     autopilot.DefaultBias,
	})
	if err != nil {
		t.Fatalf("runAutoplay() failed: %v", err)
	}

	if got := strings.Count(out.String(), "capped\n"); got != 2 {
		t.Errorf("expected both sessions capped, output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "recorded 0  failed 0  capped 2") {
		t.Errorf("capped sessions must not reach the ledger:\n%s", out.String())
	}
}

func TestRunAutoplayRejectsNoSessions(t *testing.T) {
	err := runAutoplay(io.Discard, config.DefaultGameConfig(), log.New(io.Discard), autoplayOptions{})
	if err == nil {
		t.Error("expected an error for zero sessions")
	}
}

func TestConfigCommandPrintsDefaults(t *testing.T) {
	var out bytes.Buffer
	configCmd.SetOut(&out)
	t.Cleanup(func() { configCmd.SetOut(nil) })

	if err := configCmd.RunE(configCmd, nil); err != nil {
		t.Fatalf("config command failed: %v", err)
	}

	var cfg config.GameConfig
	if err := yaml.Unmarshal(out.Bytes(), &cfg); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if cfg != config.DefaultGameConfig() {
		t.Errorf("printed config = %+v, expected the defaults", cfg)
	}
}

func TestOpenLogFile(t *testing.T) {
	w, closeFn, err := openLogFile("")
	if err != nil || w != io.Discard {
		t.Errorf("empty path should discard, got %v %v", w, err)
	}
	if err := closeFn(); err != nil {
		t.Errorf("close: %v", err)
	}

	path := t.TempDir() + "/widebird.log"
	w, closeFn, err = openLogFile(path)
	if err != nil {
		t.Fatalf("openLogFile() failed: %v", err)
	}
	newLogger(w, log.InfoLevel).Info("hello")
	if err := closeFn(); err != nil {
		t.Errorf("close: %v", err)
	}
}

func TestTickInterval(t *testing.T) {
	cfg := config.DefaultGameConfig()

	tests := []struct {
		name     string
		flag     time.Duration
		expected time.Duration
	}{
		{"config default", 0, cfg.Timing.TickInterval()},
		{"negative falls back", -time.Millisecond, cfg.Timing.TickInterval()},
		{"flag override", 40 * time.Millisecond, 40 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tickInterval(cfg, tt.flag); got != tt.expected {
				t.Errorf("tickInterval() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

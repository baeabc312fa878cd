package config

import (
	"strings"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.StorePath == "" {
		t.Fatalf("expected a default config path")
	}
	if cfg.App.Chooser != defaultChooser {
		t.Fatalf("unexpected chooser %q", cfg.App.Chooser)
	}
	if !cfg.App.Watch {
		t.Fatalf("watching must default to on")
	}
	if cfg.App.Verbose || cfg.Logging.Trace {
		t.Fatalf("verbose and trace must default to off")
	}
}

func TestLoadArgsFlags(t *testing.T) {
	args := []string{
		"--config", "/tmp/dirs.json",
		"--chooser", "kdialog --getexistingdirectory",
		"--width", "100",
		"--height", "30",
		"--verbose",
		"--watch=false",
		"--trace",
		"--log-file", "/tmp/bupedit.log",
	}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.StorePath != "/tmp/dirs.json" {
		t.Fatalf("unexpected config path %q", cfg.App.StorePath)
	}
	if cfg.App.Chooser != "kdialog --getexistingdirectory" {
		t.Fatalf("unexpected chooser %q", cfg.App.Chooser)
	}
	if cfg.App.Width != 100 || cfg.App.Height != 30 {
		t.Fatalf("unexpected dimensions %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.App.Verbose || cfg.App.Watch {
		t.Fatalf("unexpected toggles verbose=%v watch=%v", cfg.App.Verbose, cfg.App.Watch)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/bupedit.log" {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
	if cfg.Flags["config"] != "/tmp/dirs.json" || cfg.Flags["watch"] != "false" {
		t.Fatalf("unexpected captured flags %#v", cfg.Flags)
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected raw args captured, got %v", cfg.Args)
	}
}

func TestLoadArgsEnvironment(t *testing.T) {
	environ := []string{
		"BUPEDIT_CONFIG=/home/me/.config/bupedit/config.json",
		"BUPEDIT_WIDTH=90",
		"BUPEDIT_WATCH=false",
		"BUPEDIT_TRACE=1",
		"IGNORED",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.StorePath != "/home/me/.config/bupedit/config.json" {
		t.Fatalf("unexpected config path %q", cfg.App.StorePath)
	}
	if cfg.App.Width != 90 || cfg.App.Watch || !cfg.Logging.Trace {
		t.Fatalf("environment not applied: %#v", cfg.App)
	}
}

func TestLoadArgsFlagsBeatEnvironment(t *testing.T) {
	cfg, err := LoadArgs(
		[]string{"--config", "/from/flag.json", "--watch"},
		[]string{"BUPEDIT_CONFIG=/from/env.json", "BUPEDIT_WATCH=false"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.StorePath != "/from/flag.json" {
		t.Fatalf("flags must override environment, got %q", cfg.App.StorePath)
	}
	if !cfg.App.Watch {
		t.Fatalf("flags must override environment for booleans")
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, nil); err == nil {
		t.Fatalf("expected an error for a negative width")
	}
	if _, err := LoadArgs([]string{"--height", "-2"}, nil); err == nil {
		t.Fatalf("expected an error for a negative height")
	}
}

func TestLoadArgsBadEnvFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"BUPEDIT_WIDTH=wide", "BUPEDIT_WATCH=maybe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 {
		t.Fatalf("unparseable width must fall back, got %d", cfg.App.Width)
	}
	if !cfg.App.Watch {
		t.Fatalf("unparseable bool must fall back to the default")
	}
}

func TestValidate(t *testing.T) {
	cfg, err := LoadArgs([]string{"--config", "/tmp/dirs.json"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.App.StorePath = "   "
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "config path") {
		t.Fatalf("expected a config-path error, got %v", err)
	}
}

package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"bupedit/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfigPath = "BUPEDIT_CONFIG"
	envChooser    = "BUPEDIT_CHOOSER"
	envWidth      = "BUPEDIT_WIDTH"
	envHeight     = "BUPEDIT_HEIGHT"
	envVerbose    = "BUPEDIT_VERBOSE"
	envWatch      = "BUPEDIT_WATCH"
	envTrace      = "BUPEDIT_TRACE"
	envLogFile    = "BUPEDIT_LOG_FILE"
)

const defaultChooser = "zenity --file-selection --directory"

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("bupedit", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	configPath := fs.String("config", envOrDefault(env, envConfigPath, defaultConfigPath()), "path to the directories configuration file")
	chooser := fs.String("chooser", envOrDefault(env, envChooser, defaultChooser), "external folder chooser command (prints the chosen path, exit 1 on cancel)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print informational messages")
	watch := fs.Bool("watch", envOrBool(env, envWatch, true), "reload when the configuration file changes on disk")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			StorePath: *configPath,
			Chooser:   *chooser,
			Width:     *width,
			Height:    *height,
			Verbose:   *verbose,
			Watch:     *watch,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"config":  *configPath,
			"chooser": *chooser,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"verbose": strconv.FormatBool(*verbose),
			"watch":   strconv.FormatBool(*watch),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// defaultConfigPath places the configuration under the user config
// directory, falling back to the working directory.
func defaultConfigPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "bupedit", "config.json")
	}
	return "config.json"
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.StorePath) == "" {
		return fmt.Errorf("config path must not be empty")
	}
	return nil
}

package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/fjanphilip/folio/internal/nav"
)

var (
	errConfigWrite = errors.New("failed to write config file")
	errConfigRead  = errors.New("failed to read config file")
	errLoggerInit  = errors.New("failed to initialize logger")
)

const (
	ConfigDirName     = "folio"
	DefaultConfigName = "folio"
	DefaultLogName    = "folio.log"
	EnvPrefix         = "folio"
	// DefaultReloadWindow is how long file changes are coalesced before reloading.
	DefaultReloadWindow = 200 * time.Millisecond
)

type Config struct {
	// ContentPath points to a portfolio yaml file. When empty the built in content is shown.
	ContentPath   string `mapstructure:"content_path"`
	Debug         bool   `mapstructure:"debug"`
	FPS           int    `mapstructure:"fps"`
	LogLevel      string `mapstructure:"log_level"`
	MarkdownStyle string `mapstructure:"markdown_style"`
	// SmoothScroll animates navigation jumps instead of moving the viewport in one step.
	SmoothScroll bool `mapstructure:"smooth_scroll"`
	Nav          Nav  `mapstructure:"nav"`
}

// Nav holds the navigator tuning values. All distances are in layout units, RowHeight of which
// make up one terminal row.
type Nav struct {
	NavbarHeight int `mapstructure:"navbar_height"`
	ProbeOffset  int `mapstructure:"probe_offset"`
	DebounceMs   int `mapstructure:"debounce_ms"`
	RowHeight    int `mapstructure:"row_height"`
}

func (n Nav) Options() nav.Options {
	return nav.Options{
		NavbarHeight: n.NavbarHeight,
		ProbeOffset:  n.ProbeOffset,
		Debounce:     time.Duration(n.DebounceMs) * time.Millisecond,
	}
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		FPS:           60,
		LogLevel:      "debug",
		MarkdownStyle: "dark",
		SmoothScroll:  true,
		Nav: Nav{
			NavbarHeight: nav.DefaultNavbarHeight,
			ProbeOffset:  nav.DefaultProbeOffset,
			DebounceMs:   int(nav.DefaultDebounce / time.Millisecond),
			RowHeight:    20,
		},
	}
}

// Level maps the configured log level name onto a slog.Level, defaulting to debug.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(Path(logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}

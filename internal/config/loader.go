package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/fjanphilip/folio/internal/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes   chan<- Config
	debouncer *debounce.Debouncer
}

func NewLoader(changes chan<- Config) *Loader {
	defaults := Default()
	loader := Loader{changes: changes, Viper: viper.New(), debouncer: debounce.New(DefaultReloadWindow)}
	loader.SetDefault("content_path", defaults.ContentPath)
	loader.SetDefault("debug", defaults.Debug)
	loader.SetDefault("fps", defaults.FPS)
	loader.SetDefault("log_level", defaults.LogLevel)
	loader.SetDefault("markdown_style", defaults.MarkdownStyle)
	loader.SetDefault("smooth_scroll", defaults.SmoothScroll)
	loader.SetDefault("nav.navbar_height", defaults.Nav.NavbarHeight)
	loader.SetDefault("nav.probe_offset", defaults.Nav.ProbeOffset)
	loader.SetDefault("nav.debounce_ms", defaults.Nav.DebounceMs)
	loader.SetDefault("nav.row_height", defaults.Nav.RowHeight)
	loader.SetConfigName(DefaultConfigName)
	loader.SetConfigType("yaml")
	loader.SetEnvPrefix(EnvPrefix)
	loader.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	loader.AddConfigPath(Path(""))
	loader.AddConfigPath(".")
	loader.AutomaticEnv()

	return &loader
}

// Watch starts watching the config file, sending freshly read configs to the changes channel.
func (cl *Loader) Watch() {
	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

// Close stops any pending reload.
func (cl *Loader) Close() {
	cl.debouncer.Cancel()
}

func (cl *Loader) Path() string {
	if used := cl.ConfigFileUsed(); used != "" {
		return used
	}

	return Path(DefaultConfigName + ".yaml")
}

// onConfigChange runs on viper's watcher goroutine after it has re-read the file. Only the
// delivery of the decoded snapshot is debounced, viper must not be read from the debouncer.
func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Rename) && !in.Has(fsnotify.Create) {
		return
	}

	slog.Debug("External config reload triggered")

	config, err := cl.decode()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	cl.debouncer.Trigger(func() {
		cl.changes <- config
	})
}

func (cl *Loader) Write(config Config) error {
	cl.Set("content_path", config.ContentPath)
	cl.Set("debug", config.Debug)
	cl.Set("fps", config.FPS)
	cl.Set("log_level", config.LogLevel)
	cl.Set("markdown_style", config.MarkdownStyle)
	cl.Set("smooth_scroll", config.SmoothScroll)
	cl.Set("nav.navbar_height", config.Nav.NavbarHeight)
	cl.Set("nav.probe_offset", config.Nav.ProbeOffset)
	cl.Set("nav.debounce_ms", config.Nav.DebounceMs)
	cl.Set("nav.row_height", config.Nav.RowHeight)

	if cl.ConfigFileUsed() == "" {
		if err := cl.WriteConfigAs(cl.Path()); err != nil {
			return errors.Join(err, errConfigWrite)
		}

		return nil
	}

	if err := cl.WriteConfig(); err != nil {
		return errors.Join(err, errConfigWrite)
	}

	return nil
}

func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	return cl.decode()
}

func (cl *Loader) decode() (Config, error) {
	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if config.Nav.RowHeight <= 0 {
		config.Nav.RowHeight = Default().Nav.RowHeight
	}

	if config.FPS <= 0 {
		config.FPS = Default().FPS
	}

	return config, nil
}

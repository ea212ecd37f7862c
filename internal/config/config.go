package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/quill/internal/config/loader"
	"github.com/dshills/quill/internal/dispatcher"
	"github.com/dshills/quill/internal/input/key"
	"github.com/dshills/quill/internal/input/mode"
)

// DefaultFarewell is printed after the screen is cleared on exit.
const DefaultFarewell = "Gbye :) "

// Config holds the resolved editor configuration.
type Config struct {
	Log    LogConfig                    `toml:"log"`
	UI     UIConfig                     `toml:"ui"`
	Keymap map[string]map[string]string `toml:"keymap"`
}

// LogConfig configures the session log.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// File is the log destination. Empty discards log output.
	File string `toml:"file"`
}

// UIConfig configures the text the renderer draws.
type UIConfig struct {
	// Banner is the welcome line shown for an empty document.
	// Empty means the built-in banner for the running version.
	Banner string `toml:"banner"`
	// Farewell is printed after the screen is cleared on exit.
	Farewell string `toml:"farewell"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		UI: UIConfig{
			Farewell: DefaultFarewell,
		},
	}
}

// Options selects the configuration sources Load reads.
type Options struct {
	// Path is the config file. Empty uses DefaultPath.
	Path string
	// Explicit marks Path as user supplied; a missing file is then an error.
	Explicit bool
	// FS overrides the file system, for tests.
	FS fs.FS
	// Environ overrides the process environment, for tests.
	Environ []string
}

// DefaultPath returns $XDG_CONFIG_HOME/quill/config.toml, falling back to
// the platform user config directory.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			return ""
		}
	}
	return filepath.Join(dir, "quill", "config.toml")
}

// Load resolves defaults, the config file and environment overrides, then
// validates the result.
func Load(opts Options) (*Config, error) {
	path := opts.Path
	if path == "" {
		path = DefaultPath()
	}

	fileLoader := loader.NewTOMLLoader(path)
	if opts.FS != nil {
		fileLoader = loader.NewTOMLLoaderWithFS(opts.FS, path)
	}
	fileCfg, err := fileLoader.Load()
	if err != nil {
		return nil, err
	}
	if fileCfg == nil && opts.Explicit {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	envLoader := loader.NewEnvLoader(loader.EnvPrefix)
	if opts.Environ != nil {
		envLoader = loader.NewEnvLoaderWithEnviron(loader.EnvPrefix, opts.Environ)
	}
	envCfg, err := envLoader.Load()
	if err != nil {
		return nil, err
	}

	merged := loader.DeepMerge(fileCfg, envCfg)

	cfg := Default()
	if err := cfg.decode(merged); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode overlays the settings in data onto c. Fields absent from data
// keep their current values.
func (c *Config) decode(data map[string]any) error {
	if len(data) == 0 {
		return nil
	}
	raw, err := toml.Marshal(data)
	if err != nil {
		return err
	}
	return toml.Unmarshal(raw, c)
}

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks every setting and returns all failures together.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if !logLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, &ValidationError{
			Path:    "log.level",
			Value:   c.Log.Level,
			Message: "must be one of debug, info, warn, error",
		})
	}

	for _, modeName := range sortedKeys(c.Keymap) {
		if _, err := mode.Parse(modeName); err != nil {
			errs = append(errs, &ValidationError{
				Path:    "keymap." + modeName,
				Value:   modeName,
				Message: "unknown mode",
			})
			continue
		}
		bindings := c.Keymap[modeName]
		for _, spec := range sortedKeys(bindings) {
			path := "keymap." + modeName + "." + spec
			if _, err := key.Parse(spec); err != nil {
				errs = append(errs, &ValidationError{Path: path, Value: spec, Message: err.Error()})
				continue
			}
			if _, ok := dispatcher.LookupAction(bindings[spec]); !ok {
				errs = append(errs, &ValidationError{Path: path, Value: bindings[spec], Message: unknownActionMessage()})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BuildKeymap returns the default keymap with the configured bindings
// layered on top.
func (c *Config) BuildKeymap() (*dispatcher.Keymap, error) {
	km := dispatcher.DefaultKeymap()
	for _, modeName := range sortedKeys(c.Keymap) {
		m, err := mode.Parse(modeName)
		if err != nil {
			return nil, err
		}
		if err := km.BindAll(m, c.Keymap[modeName]); err != nil {
			return nil, fmt.Errorf("keymap.%s: %w", modeName, err)
		}
	}
	return km, nil
}

// IsValidationError reports whether err came from Validate.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func unknownActionMessage() string {
	return "unknown action (valid: " + strings.Join(dispatcher.ActionNames(), ", ") + ")"
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings holds application settings. Values come from, in increasing
// priority: defaults, ~/.skirmish/settings.toml, SKIRMISH_* env vars and
// command-line flags.
type Settings struct {
	FPS        int
	Seed       int64
	DBPath     string
	ConfigPath string
	Tempo      Tempo
	LogFile    string
	LogLevel   string
	Host       string
	Port       int
}

// Setting keys. They double as flag names.
const (
	KeyFPS      = "fps"
	KeySeed     = "seed"
	KeyDB       = "db"
	KeyConfig   = "config"
	KeyTempo    = "tempo"
	KeyLogFile  = "log-file"
	KeyLogLevel = "log-level"
	KeyHost     = "host"
	KeyPort     = "port"
)

// LoadSettings reads settings and applies any flags in fs that were set.
// fs may be nil.
func LoadSettings(fs *pflag.FlagSet) (Settings, error) {
	v := viper.New()

	v.SetDefault(KeyFPS, 60)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyDB, DefaultDBPath())
	v.SetDefault(KeyConfig, "")
	v.SetDefault(KeyTempo, string(TempoNormal))
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyHost, "0.0.0.0")
	v.SetDefault(KeyPort, 2323)

	v.SetConfigType("toml")
	if path := os.Getenv("SKIRMISH_SETTINGS"); path != "" {
		v.SetConfigFile(path)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".skirmish"))
		v.SetConfigName("settings")
	}

	v.SetEnvPrefix("SKIRMISH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Settings{}, fmt.Errorf("read settings: %w", err)
		}
	}

	if fs != nil {
		// Only flags that exist are bound; unset flags fall through to env and file
		if err := v.BindPFlags(fs); err != nil {
			return Settings{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	tempo, err := ParseTempo(v.GetString(KeyTempo))
	if err != nil {
		return Settings{}, err
	}

	s := Settings{
		FPS:        v.GetInt(KeyFPS),
		Seed:       v.GetInt64(KeySeed),
		DBPath:     v.GetString(KeyDB),
		ConfigPath: v.GetString(KeyConfig),
		Tempo:      tempo,
		LogFile:    v.GetString(KeyLogFile),
		LogLevel:   v.GetString(KeyLogLevel),
		Host:       v.GetString(KeyHost),
		Port:       v.GetInt(KeyPort),
	}
	if s.FPS <= 0 || s.FPS > 240 {
		return Settings{}, fmt.Errorf("fps must be in 1..240, got %d", s.FPS)
	}
	return s, nil
}

// DefaultDBPath returns ~/.skirmish/results.db, or a relative path when the
// home directory is unknown.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "skirmish-results.db"
	}
	return filepath.Join(home, ".skirmish", "results.db")
}

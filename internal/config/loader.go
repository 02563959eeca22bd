package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSkirmish loads the game configuration.
// Search order: customPath -> ~/.skirmish/configs/skirmish.yaml -> ./configs/skirmish.yaml -> embedded default
func LoadSkirmish(customPath string) (SkirmishConfig, error) {
	// Files may set a subset of keys; the rest keep their defaults
	cfg := DefaultSkirmishConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath("skirmish.yaml"), filepath.Join("configs", "skirmish.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultSkirmishConfig()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		if err := candidate.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", path, err)
		}
		return candidate, nil
	}

	if err := yaml.Unmarshal(defaultSkirmishYAML, &cfg); err != nil {
		return DefaultSkirmishConfig(), nil
	}
	return cfg, nil
}

// Validate rejects configurations the game cannot run with.
func (c SkirmishConfig) Validate() error {
	f := c.Field
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("config: field must have a positive size, got %gx%g", f.Width, f.Height)
	}
	if f.TargetHeight < 0 || 2*f.TargetHeight >= f.Height {
		return fmt.Errorf("config: target_height %g does not fit a field of height %g", f.TargetHeight, f.Height)
	}
	if f.StartFraction <= 0 || f.StartFraction > 0.5 {
		return fmt.Errorf("config: start_fraction must be in (0, 0.5], got %g", f.StartFraction)
	}
	if c.Round.TurnTime <= 0 {
		return fmt.Errorf("config: turn_time must be positive, got %g", c.Round.TurnTime)
	}
	if c.Projectile.Speed <= 0 {
		return fmt.Errorf("config: projectile speed must be positive, got %g", c.Projectile.Speed)
	}
	if c.Bot.MinThink < 0 || c.Bot.MaxThink < c.Bot.MinThink {
		return fmt.Errorf("config: bot think range [%g, %g] is invalid", c.Bot.MinThink, c.Bot.MaxThink)
	}
	return c.Units.validate()
}

// validate requires every attack cycle to take time. A zero-length cycle
// would restart within the same tick forever.
func (u UnitsConfig) validate() error {
	attackers := []struct {
		kind  string
		stats UnitStats
	}{
		{KindTank, u.Tank},
		{KindCannon, u.Cannon},
		{KindShooter, u.Shooter},
		{KindAirplane, u.Airplane},
		{KindSpinner, u.Spinner},
		{KindImpaler, u.Impaler},
	}
	for _, a := range attackers {
		if a.stats.Windup < 0 || a.stats.Recover < 0 {
			return fmt.Errorf("config: %s windup and recover must not be negative", a.kind)
		}
		if a.stats.Windup+a.stats.Recover <= 0 {
			return fmt.Errorf("config: %s attack cycle must take time, got windup %g and recover %g",
				a.kind, a.stats.Windup, a.stats.Recover)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skirmish", "configs", filename)
}

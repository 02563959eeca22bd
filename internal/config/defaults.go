package config

import (
	_ "embed"
)

//go:embed defaults/skirmish.yaml
var defaultSkirmishYAML []byte

// DefaultSkirmishConfig returns the built-in configuration. It mirrors
// defaults/skirmish.yaml and is used when the embedded copy cannot be parsed.
func DefaultSkirmishConfig() SkirmishConfig {
	return SkirmishConfig{
		Field: FieldConfig{
			Width:         500,
			Height:        700,
			TargetHeight:  20,
			StartFraction: 0.25,
		},
		Round: RoundConfig{
			TurnTime: 5,
			Cooldown: 20,
		},
		Projectile: ProjectileConfig{
			Speed:  100,
			Radius: 3,
		},
		Bot: BotConfig{
			MinThink: 0.5,
			MaxThink: 3,
		},
		Units: UnitsConfig{
			Tank: UnitStats{
				Cost: 5, MaxHealth: 1000, Speed: 10, Radius: 20,
				SightRadius: 120, Power: 60, Windup: 2,
			},
			Cannon: UnitStats{
				Cost: 5, MaxHealth: 300, Speed: 10, Radius: 15,
				SightRadius: 100, Range: 100, Power: 80, Windup: 0.2, Recover: 1,
			},
			Shooter: UnitStats{
				Cost: 5, MaxHealth: 50, Speed: 30, Radius: 7,
				SightRadius: 100, Range: 80, Power: 20, Windup: 0.1, Recover: 0.9,
			},
			ShooterGroup: GroupStats{Cost: 5, Radius: 20},
			Airplane: UnitStats{
				Cost: 5, MaxHealth: 250, Speed: 30, Radius: 15,
				SightRadius: 120, Range: 100, Power: 7, Windup: 0.1, Recover: 0.1,
				Flying: true,
			},
			Spinner: UnitStats{
				Cost: 5, MaxHealth: 400, Speed: 15, Radius: 10,
				SightRadius: 100, Range: 10, Power: 50, Windup: 0.2, Recover: 1,
			},
			Impaler: UnitStats{
				Cost: 5, MaxHealth: 300, Speed: 20, Radius: 12,
				SightRadius: 100, Range: 10, Power: 250, Windup: 0.5, Recover: 2.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default skirmish.yaml.
func DefaultYAML() []byte {
	return defaultSkirmishYAML
}

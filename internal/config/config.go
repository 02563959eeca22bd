// Package config provides YAML-based game configuration loading, tempo
// presets and viper-backed application settings for the skirmish game.
package config

// Unit kind names as used in YAML and storage.
const (
	KindTank         = "tank"
	KindCannon       = "cannon"
	KindShooterGroup = "shooterGroup"
	KindShooter      = "shooter"
	KindAirplane     = "airplane"
	KindSpinner      = "spinner"
	KindImpaler      = "impaler"
)

// SkirmishConfig contains all tuning for a skirmish match.
type SkirmishConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Round      RoundConfig      `yaml:"round"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Bot        BotConfig        `yaml:"bot"`
	Units      UnitsConfig      `yaml:"units"`
}

// FieldConfig defines the battlefield in world units. The field is centered
// on the origin; y grows downwards.
type FieldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	TargetHeight  float64 `yaml:"target_height"`  // Depth of each base strip
	StartFraction float64 `yaml:"start_fraction"` // Share of the playable height a team may place into
}

// RoundConfig defines turn pacing.
type RoundConfig struct {
	TurnTime float64 `yaml:"turn_time"` // Seconds for the first turn of a round
	Cooldown float64 `yaml:"cooldown"`  // Seconds before a placed kind can be placed again
}

// ProjectileConfig is shared by every ranged unit.
type ProjectileConfig struct {
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"`
}

// BotConfig controls the auto-placing opponent.
type BotConfig struct {
	MinThink float64 `yaml:"min_think"`
	MaxThink float64 `yaml:"max_think"`
}

// UnitsConfig holds the stats of every unit kind.
type UnitsConfig struct {
	Tank         UnitStats  `yaml:"tank"`
	Cannon       UnitStats  `yaml:"cannon"`
	Shooter      UnitStats  `yaml:"shooter"`
	ShooterGroup GroupStats `yaml:"shooter_group"`
	Airplane     UnitStats  `yaml:"airplane"`
	Spinner      UnitStats  `yaml:"spinner"`
	Impaler      UnitStats  `yaml:"impaler"`
}

// UnitStats defines one unit kind. Windup and Recover are the two timed
// phases of an attack; Power is the damage of a hit or of a projectile.
type UnitStats struct {
	Cost        float64 `yaml:"cost"`
	MaxHealth   float64 `yaml:"max_health"`
	Speed       float64 `yaml:"speed"`
	Radius      float64 `yaml:"radius"`
	SightRadius float64 `yaml:"sight_radius"`
	Range       float64 `yaml:"range"`
	Power       float64 `yaml:"power"`
	Windup      float64 `yaml:"windup"`
	Recover     float64 `yaml:"recover"`
	Flying      bool    `yaml:"flying"`
}

// GroupStats defines a kind that places several shooters at once.
type GroupStats struct {
	Cost   float64 `yaml:"cost"`
	Radius float64 `yaml:"radius"`
}

// Stats returns the stats for a unit kind. Groups report their cost and
// radius only.
func (u UnitsConfig) Stats(kind string) (UnitStats, bool) {
	switch kind {
	case KindTank:
		return u.Tank, true
	case KindCannon:
		return u.Cannon, true
	case KindShooter:
		return u.Shooter, true
	case KindShooterGroup:
		return UnitStats{Cost: u.ShooterGroup.Cost, Radius: u.ShooterGroup.Radius}, true
	case KindAirplane:
		return u.Airplane, true
	case KindSpinner:
		return u.Spinner, true
	case KindImpaler:
		return u.Impaler, true
	default:
		return UnitStats{}, false
	}
}

package config

import (
	"fmt"
	"strings"
)

// Tempo is a named game speed. It scales every tick delta the engine sees.
type Tempo string

const (
	TempoSlow   Tempo = "slow"
	TempoNormal Tempo = "normal"
	TempoFast   Tempo = "fast"
)

// Tempos lists the presets in menu order.
var Tempos = []Tempo{TempoSlow, TempoNormal, TempoFast}

// ParseTempo converts a flag value into a Tempo. Empty means normal.
func ParseTempo(s string) (Tempo, error) {
	switch t := Tempo(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return TempoNormal, nil
	case TempoSlow, TempoNormal, TempoFast:
		return t, nil
	default:
		return "", fmt.Errorf("unknown tempo %q (want slow, normal or fast)", s)
	}
}

// Scale returns the time multiplier for the tempo.
func (t Tempo) Scale() float64 {
	switch t {
	case TempoSlow:
		return 0.5
	case TempoFast:
		return 1.5
	default:
		return 1
	}
}

// String returns a display name for the tempo.
func (t Tempo) String() string {
	switch t {
	case TempoSlow:
		return "Slow"
	case TempoFast:
		return "Fast"
	default:
		return "Normal"
	}
}

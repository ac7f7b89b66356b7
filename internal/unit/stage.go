package unit

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidStage is returned when encounter parameters cannot be evaluated.
var ErrInvalidStage = errors.New("invalid stage")

// Stage holds the attacker side of an encounter and its length.
type Stage struct {
	Name           string  `yaml:"name"`
	AtkLuck        float64 `yaml:"atk_luck"`
	AtkHit         float64 `yaml:"atk_hit"`
	HitRateBuff    float64 `yaml:"hitrate_buff"` // flat additive hit rate
	AtkLevel       int     `yaml:"atk_level"`
	Length         float64 `yaml:"stage_length"` // seconds
	FormationBonus float64 `yaml:"formation_bonus"`
}

// DefaultStage returns the stock boss encounter: 90 seconds against a level
// 122 attacker with 75 accuracy and 25 luck, 30% formation evasion bonus.
func DefaultStage() Stage {
	return Stage{
		AtkLuck:        25,
		AtkHit:         75,
		AtkLevel:       122,
		Length:         90,
		FormationBonus: 0.3,
	}
}

// Validate rejects stages that would divide by zero or never end.
func (s Stage) Validate() error {
	if !(s.Length > 0) || math.IsInf(s.Length, 0) {
		return fmt.Errorf("%w: stage length %g must be positive and finite", ErrInvalidStage, s.Length)
	}
	if s.AtkHit < 0 || math.IsNaN(s.AtkHit) {
		return fmt.Errorf("%w: attacker hit %g must be non-negative", ErrInvalidStage, s.AtkHit)
	}
	return nil
}

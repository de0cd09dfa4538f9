package registry

import (
	"encoding/json"
	"math"

	"github.com/vovakirdan/rhythm-registry/internal/core"
)

// GameConfig describes a supported game.
type GameConfig struct {
	InternalName    core.Game       `yaml:"internalName" json:"internalName"`
	Name            string          `yaml:"name" json:"name"`
	DefaultPlaytype core.Playtype   `yaml:"defaultPlaytype" json:"defaultPlaytype"`
	ValidPlaytypes  []core.Playtype `yaml:"validPlaytypes" json:"validPlaytypes"`
}

// SupportsPlaytype reports whether p is one of the game's play styles.
func (g GameConfig) SupportsPlaytype(p core.Playtype) bool {
	for _, v := range g.ValidPlaytypes {
		if v == p {
			return true
		}
	}
	return false
}

// VariantConfig is the classification table for one game+playtype.
//
// It is implemented only by *TimedVariantConfig and *UntimedVariantConfig.
// Timing windows are reachable only through the timed type, so a caller
// holding an untimed config has nothing to read.
type VariantConfig interface {
	// Base returns the fields shared by both shapes.
	Base() *VariantBase
	// SupportsTimingWindows reports whether the config is a *TimedVariantConfig.
	SupportsTimingWindows() bool

	clone() VariantConfig
}

// VariantBase holds the vocabulary every variant supplies.
type VariantBase struct {
	Key        core.VariantKey `yaml:"key" json:"key"`
	PercentMax float64         `yaml:"percentMax" json:"percentMax"`

	DefaultScoreRatingAlg   core.RatingAlg   `yaml:"defaultScoreRatingAlg" json:"defaultScoreRatingAlg"`
	DefaultSessionRatingAlg core.RatingAlg   `yaml:"defaultSessionRatingAlg" json:"defaultSessionRatingAlg"`
	DefaultProfileRatingAlg core.RatingAlg   `yaml:"defaultProfileRatingAlg" json:"defaultProfileRatingAlg"`
	ScoreRatingAlgs         []core.RatingAlg `yaml:"scoreRatingAlgs" json:"scoreRatingAlgs"`
	SessionRatingAlgs       []core.RatingAlg `yaml:"sessionRatingAlgs" json:"sessionRatingAlgs"`
	ProfileRatingAlgs       []core.RatingAlg `yaml:"profileRatingAlgs" json:"profileRatingAlgs"`

	Difficulties      []core.Difficulty               `yaml:"difficulties" json:"difficulties"`
	DefaultDifficulty core.Difficulty                 `yaml:"defaultDifficulty" json:"defaultDifficulty"`
	DifficultyColours map[core.Difficulty]core.Colour `yaml:"difficultyColours" json:"difficultyColours"`
	ShortDifficulties map[core.Difficulty]string      `yaml:"shortDifficulties,omitempty" json:"shortDifficulties,omitempty"`

	Grades          []core.Grade               `yaml:"grades" json:"grades"`
	GradeColours    map[core.Grade]core.Colour `yaml:"gradeColours" json:"gradeColours"`
	ClearGrade      core.Grade                 `yaml:"clearGrade" json:"clearGrade"`
	GradeBoundaries []float64                  `yaml:"gradeBoundaries" json:"gradeBoundaries"`

	// Lamps are ordered worst to best.
	Lamps       []core.Lamp               `yaml:"lamps" json:"lamps"`
	LampColours map[core.Lamp]core.Colour `yaml:"lampColours" json:"lampColours"`
	ClearLamp   core.Lamp                 `yaml:"clearLamp" json:"clearLamp"`

	Judgements []core.Judgement `yaml:"judgements" json:"judgements"`

	DefaultTable string           `yaml:"defaultTable" json:"defaultTable"`
	ScoreBucket  core.ScoreBucket `yaml:"scoreBucket" json:"scoreBucket"`

	// Versions lists the game-version codes charts of this variant may carry.
	Versions []string `yaml:"versions" json:"versions"`
}

// TimedVariantConfig is a variant that publishes a timing-window table.
type TimedVariantConfig struct {
	VariantBase   `yaml:",inline"`
	TimingWindows []TimingWindow `yaml:"timingWindows" json:"timingWindows"`
}

// UntimedVariantConfig is a variant without timing-window support.
type UntimedVariantConfig struct {
	VariantBase `yaml:",inline"`
}

// Base returns the shared fields.
func (c *TimedVariantConfig) Base() *VariantBase { return &c.VariantBase }

// SupportsTimingWindows is always true.
func (c *TimedVariantConfig) SupportsTimingWindows() bool { return true }

func (c *TimedVariantConfig) clone() VariantConfig {
	out := &TimedVariantConfig{VariantBase: c.VariantBase.clone()}
	out.TimingWindows = append([]TimingWindow(nil), c.TimingWindows...)
	return out
}

// Base returns the shared fields.
func (c *UntimedVariantConfig) Base() *VariantBase { return &c.VariantBase }

// SupportsTimingWindows is always false.
func (c *UntimedVariantConfig) SupportsTimingWindows() bool { return false }

func (c *UntimedVariantConfig) clone() VariantConfig {
	return &UntimedVariantConfig{VariantBase: c.VariantBase.clone()}
}

// timedShape and untimedShape drop the marshal methods so the exported
// form can be built without recursing.
type (
	timedShape   TimedVariantConfig
	untimedShape UntimedVariantConfig
)

// MarshalJSON adds the supportsTimingWindows discriminator.
func (c *TimedVariantConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		SupportsTimingWindows bool `json:"supportsTimingWindows"`
		timedShape
	}{true, timedShape(*c)})
}

// MarshalYAML adds the supportsTimingWindows discriminator.
func (c *TimedVariantConfig) MarshalYAML() (any, error) {
	return struct {
		SupportsTimingWindows bool `yaml:"supportsTimingWindows"`
		timedShape            `yaml:",inline"`
	}{true, timedShape(*c)}, nil
}

// MarshalJSON adds the supportsTimingWindows discriminator.
func (c *UntimedVariantConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		SupportsTimingWindows bool `json:"supportsTimingWindows"`
		untimedShape
	}{false, untimedShape(*c)})
}

// MarshalYAML adds the supportsTimingWindows discriminator.
func (c *UntimedVariantConfig) MarshalYAML() (any, error) {
	return struct {
		SupportsTimingWindows bool `yaml:"supportsTimingWindows"`
		untimedShape          `yaml:",inline"`
	}{false, untimedShape(*c)}, nil
}

// TimingWindowsOf returns the timing table of cfg, or false if the variant
// has none.
func TimingWindowsOf(cfg VariantConfig) ([]TimingWindow, bool) {
	timed, ok := cfg.(*TimedVariantConfig)
	if !ok {
		return nil, false
	}
	return timed.TimingWindows, true
}

// GradeFor classifies percent into a grade of this variant.
func (b *VariantBase) GradeFor(percent float64) (core.Grade, int, error) {
	if percent > b.PercentMax {
		return "", -1, percentError(percent, b.PercentMax)
	}
	idx, err := GradeIndex(b.GradeBoundaries, percent)
	if err != nil {
		return "", -1, err
	}
	return b.Grades[idx], idx, nil
}

// GradeIndexOf returns the position of g in Grades, or -1.
func (b *VariantBase) GradeIndexOf(g core.Grade) int {
	return indexOf(b.Grades, g)
}

// LampIndexOf returns the position of l in Lamps, or -1.
func (b *VariantBase) LampIndexOf(l core.Lamp) int {
	return indexOf(b.Lamps, l)
}

// DifficultyIndexOf returns the position of d in Difficulties, or -1.
func (b *VariantBase) DifficultyIndexOf(d core.Difficulty) int {
	return indexOf(b.Difficulties, d)
}

// HasJudgement reports whether j is one of the variant's judgement categories.
func (b *VariantBase) HasJudgement(j core.Judgement) bool {
	return indexOf(b.Judgements, j) >= 0
}

// IsClearLamp reports whether l is at or above ClearLamp.
// Unknown lamps are never clears.
func (b *VariantBase) IsClearLamp(l core.Lamp) bool {
	idx := b.LampIndexOf(l)
	return idx >= 0 && idx >= b.LampIndexOf(b.ClearLamp)
}

// IsClearGrade reports whether g is at or above ClearGrade.
func (b *VariantBase) IsClearGrade(g core.Grade) bool {
	idx := b.GradeIndexOf(g)
	return idx >= 0 && idx >= b.GradeIndexOf(b.ClearGrade)
}

// DifficultyColour returns the colour for d and whether one is set.
func (b *VariantBase) DifficultyColour(d core.Difficulty) (core.Colour, bool) {
	c, ok := b.DifficultyColours[d]
	return c, ok && c.Valid()
}

// ShortDifficulty returns the abbreviated difficulty name, falling back to d.
func (b *VariantBase) ShortDifficulty(d core.Difficulty) string {
	if s, ok := b.ShortDifficulties[d]; ok {
		return s
	}
	return string(d)
}

func (b VariantBase) clone() VariantBase {
	out := b
	out.ScoreRatingAlgs = append([]core.RatingAlg(nil), b.ScoreRatingAlgs...)
	out.SessionRatingAlgs = append([]core.RatingAlg(nil), b.SessionRatingAlgs...)
	out.ProfileRatingAlgs = append([]core.RatingAlg(nil), b.ProfileRatingAlgs...)
	out.Difficulties = append([]core.Difficulty(nil), b.Difficulties...)
	out.DifficultyColours = cloneMap(b.DifficultyColours)
	out.ShortDifficulties = cloneMap(b.ShortDifficulties)
	out.Grades = append([]core.Grade(nil), b.Grades...)
	out.GradeColours = cloneMap(b.GradeColours)
	out.GradeBoundaries = append([]float64(nil), b.GradeBoundaries...)
	out.Lamps = append([]core.Lamp(nil), b.Lamps...)
	out.LampColours = cloneMap(b.LampColours)
	out.Judgements = append([]core.Judgement(nil), b.Judgements...)
	out.Versions = append([]string(nil), b.Versions...)
	return out
}

func (g GameConfig) clone() GameConfig {
	g.ValidPlaytypes = append([]core.Playtype(nil), g.ValidPlaytypes...)
	return g
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func indexOf[T comparable](xs []T, v T) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	return -1
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

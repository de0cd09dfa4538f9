package core

import (
	"errors"
	"fmt"
	"strings"
)

// Game identifies a supported title.
type Game string

const (
	GameIIDX     Game = "iidx"
	GameMuseca   Game = "museca"
	GameMaimai   Game = "maimai"
	GameSDVX     Game = "sdvx"
	GameDDR      Game = "ddr"
	GameBMS      Game = "bms"
	GameChunithm Game = "chunithm"
	GameGitadora Game = "gitadora"
	GameUSC      Game = "usc"

	// Declared in catalogs, not yet backed by a registry entry.
	GameJubeat Game = "jubeat"
	GamePopn   Game = "popn"
	GameWacca  Game = "wacca"
	GamePMS    Game = "pms"
)

// Playtype is a play style within a game.
type Playtype string

const (
	PlaytypeSP         Playtype = "SP"
	PlaytypeDP         Playtype = "DP"
	PlaytypeSingle     Playtype = "Single"
	Playtype7K         Playtype = "7K"
	Playtype14K        Playtype = "14K"
	PlaytypeGita       Playtype = "Gita"
	PlaytypeDora       Playtype = "Dora"
	PlaytypeKeyboard   Playtype = "Keyboard"
	PlaytypeController Playtype = "Controller"
	Playtype9B         Playtype = "9B"
)

// VariantKey is the flattened "game:playtype" identifier used to index
// every per-variant table.
type VariantKey string

const (
	IIDXSP         VariantKey = "iidx:SP"
	IIDXDP         VariantKey = "iidx:DP"
	SDVXSingle     VariantKey = "sdvx:Single"
	USCKeyboard    VariantKey = "usc:Keyboard"
	USCController  VariantKey = "usc:Controller"
	DDRSP          VariantKey = "ddr:SP"
	DDRDP          VariantKey = "ddr:DP"
	MaimaiSingle   VariantKey = "maimai:Single"
	MusecaSingle   VariantKey = "museca:Single"
	BMS7K          VariantKey = "bms:7K"
	BMS14K         VariantKey = "bms:14K"
	ChunithmSingle VariantKey = "chunithm:Single"
	GitadoraGita   VariantKey = "gitadora:Gita"
	GitadoraDora   VariantKey = "gitadora:Dora"

	PopnNineB     VariantKey = "popn:9B"
	JubeatSingle  VariantKey = "jubeat:Single"
	WaccaSingle   VariantKey = "wacca:Single"
	PMSController VariantKey = "pms:Controller"
	PMSKeyboard   VariantKey = "pms:Keyboard"
)

const variantSeparator = ":"

// ErrInvalidVariantKey is returned when a string is not of the form game:playtype.
var ErrInvalidVariantKey = errors.New("invalid variant key")

// NewVariantKey joins a game and playtype into a key.
func NewVariantKey(g Game, p Playtype) VariantKey {
	return VariantKey(string(g) + variantSeparator + string(p))
}

// ParseVariantKey splits s into its game and playtype halves.
// Both halves must be non-empty; membership is checked by the registry.
func ParseVariantKey(s string) (VariantKey, error) {
	g, p, ok := strings.Cut(strings.TrimSpace(s), variantSeparator)
	if !ok || g == "" || p == "" || strings.Contains(p, variantSeparator) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVariantKey, s)
	}
	return NewVariantKey(Game(g), Playtype(p)), nil
}

// Game returns the game half of the key.
func (k VariantKey) Game() Game {
	g, _, _ := strings.Cut(string(k), variantSeparator)
	return Game(g)
}

// Playtype returns the playtype half of the key.
func (k VariantKey) Playtype() Playtype {
	_, p, _ := strings.Cut(string(k), variantSeparator)
	return Playtype(p)
}

func (k VariantKey) String() string { return string(k) }

// Grade is a grade tier name, e.g. "AAA".
type Grade string

// Lamp is a clear-lamp tier name, e.g. "HARD CLEAR".
type Lamp string

// Difficulty is a chart difficulty name, e.g. "ANOTHER".
type Difficulty string

// Judgement is a hit judgement category, e.g. "pgreat".
type Judgement string

// RatingAlg names a rating algorithm output, e.g. "ktRating" or "VF6".
type RatingAlg string

// ScoreBucket selects which vocabulary scores are bucketed by when summarised.
type ScoreBucket string

const (
	ScoreBucketGrade ScoreBucket = "grade"
	ScoreBucketLamp  ScoreBucket = "lamp"
)

// Rating algorithm names used by the built-in variants.
const (
	RatingKtRating     RatingAlg = "ktRating"
	RatingKtLampRating RatingAlg = "ktLampRating"
	RatingBPI          RatingAlg = "BPI"
	RatingVF6          RatingAlg = "VF6"
	RatingProfileVF6   RatingAlg = "ProfileVF6"
	RatingMFCP         RatingAlg = "MFCP"
	RatingSieglinde    RatingAlg = "sieglinde"
	RatingRating       RatingAlg = "rating"
	RatingNaiveRating  RatingAlg = "naiveRating"
	RatingSkill        RatingAlg = "skill"
)

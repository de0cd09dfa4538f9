// Package schema defines the score, personal-best and session documents
// exchanged with persistence and ingestion, and checks them against the
// vocabulary of their variant.
package schema

import (
	"github.com/vovakirdan/rhythm-registry/internal/catalog"
	"github.com/vovakirdan/rhythm-registry/internal/core"
)

// ScoreData is the classified result of one play.
type ScoreData struct {
	Score      float64                 `json:"score"`
	Percent    float64                 `json:"percent"`
	Grade      core.Grade              `json:"grade"`
	GradeIndex int                     `json:"gradeIndex"`
	Lamp       core.Lamp               `json:"lamp"`
	LampIndex  int                     `json:"lampIndex"`
	ESD        *float64                `json:"esd"`
	Judgements map[core.Judgement]*int `json:"judgements"`
	HitMeta    HitMeta                 `json:"hitMeta"`
}

// HitMeta carries optional per-hit statistics. Which fields a variant may
// set depends on its game; see Validator.
type HitMeta struct {
	Fast     *int `json:"fast,omitempty"`
	Slow     *int `json:"slow,omitempty"`
	MaxCombo *int `json:"maxCombo,omitempty"`

	BP    *int     `json:"bp,omitempty"`
	Gauge *float64 `json:"gauge,omitempty"`

	GaugeHistory []*float64 `json:"gaugeHistory,omitempty"`
	ScoreHistory []float64  `json:"scoreHistory,omitempty"`
	ComboBreak   *int       `json:"comboBreak,omitempty"`
	GSM          *GSM       `json:"gsm,omitempty"`

	// EarlyLate counts early/late judgements keyed like "epg" or "lbd".
	EarlyLate map[string]int `json:"earlyLate,omitempty"`
}

// GSM holds gauge histories for every gauge type at once.
type GSM struct {
	Easy   []*float64 `json:"EASY"`
	Normal []*float64 `json:"NORMAL"`
	Hard   []*float64 `json:"HARD"`
	ExHard []*float64 `json:"EX_HARD"`
}

// ScoreDocument is one submitted play.
type ScoreDocument struct {
	ScoreID  string        `json:"scoreID"`
	Service  string        `json:"service"`
	Game     core.Game     `json:"game"`
	Playtype core.Playtype `json:"playtype"`
	UserID   int           `json:"userID"`

	ScoreData      ScoreData                   `json:"scoreData"`
	ScoreMeta      map[string]any              `json:"scoreMeta"`
	CalculatedData map[core.RatingAlg]*float64 `json:"calculatedData"`

	TimeAchieved *int64              `json:"timeAchieved"`
	TimeAdded    int64               `json:"timeAdded"`
	SongID       int                 `json:"songID"`
	ChartID      string              `json:"chartID"`
	IsPrimary    bool                `json:"isPrimary"`
	Highlight    bool                `json:"highlight"`
	Comment      *string             `json:"comment"`
	ImportType   *catalog.ImportType `json:"importType"`
}

// Key returns the document's variant key.
func (d *ScoreDocument) Key() core.VariantKey {
	return core.NewVariantKey(d.Game, d.Playtype)
}

// PBComposition names the scores a personal best was built from.
type PBComposition struct {
	ScorePB string           `json:"scorePB"`
	LampPB  string           `json:"lampPB"`
	Other   []PBComposedFrom `json:"other,omitempty"`
}

// PBComposedFrom references an additional contributing score.
type PBComposedFrom struct {
	Name    string `json:"name"`
	ScoreID string `json:"scoreID"`
}

// RankingData positions a PB among all players. Zero means unranked.
type RankingData struct {
	Rank  int `json:"rank"`
	OutOf int `json:"outOf"`
}

// PBScoreDocument is a user's best on a chart, composed from scores.
type PBScoreDocument struct {
	ComposedFrom PBComposition `json:"composedFrom"`
	RankingData  RankingData   `json:"rankingData"`

	UserID   int           `json:"userID"`
	ChartID  string        `json:"chartID"`
	SongID   int           `json:"songID"`
	Game     core.Game     `json:"game"`
	Playtype core.Playtype `json:"playtype"`

	Highlight    bool   `json:"highlight"`
	IsPrimary    bool   `json:"isPrimary"`
	TimeAchieved *int64 `json:"timeAchieved"`

	ScoreData      ScoreData                   `json:"scoreData"`
	CalculatedData map[core.RatingAlg]*float64 `json:"calculatedData"`
}

// Key returns the document's variant key.
func (d *PBScoreDocument) Key() core.VariantKey {
	return core.NewVariantKey(d.Game, d.Playtype)
}

// SessionScoreInfo records how a score in a session relates to what the
// user had before. New scores carry no deltas.
type SessionScoreInfo struct {
	ScoreID      string  `json:"scoreID"`
	IsNewScore   bool    `json:"isNewScore"`
	ScoreDelta   float64 `json:"scoreDelta,omitempty"`
	GradeDelta   int     `json:"gradeDelta,omitempty"`
	LampDelta    int     `json:"lampDelta,omitempty"`
	PercentDelta float64 `json:"percentDelta,omitempty"`
}

// SessionDocument groups scores played in one sitting.
type SessionDocument struct {
	SessionID  string              `json:"sessionID"`
	UserID     int                 `json:"userID"`
	Name       string              `json:"name"`
	Desc       *string             `json:"desc"`
	Game       core.Game           `json:"game"`
	Playtype   core.Playtype       `json:"playtype"`
	ImportType *catalog.ImportType `json:"importType"`

	ScoreInfo []SessionScoreInfo `json:"scoreInfo"`

	TimeInserted int64 `json:"timeInserted"`
	TimeStarted  int64 `json:"timeStarted"`
	TimeEnded    int64 `json:"timeEnded"`

	CalculatedData map[core.RatingAlg]*float64 `json:"calculatedData"`
	Highlight      bool                        `json:"highlight"`
	Views          int                         `json:"views"`
}

// Key returns the document's variant key.
func (d *SessionDocument) Key() core.VariantKey {
	return core.NewVariantKey(d.Game, d.Playtype)
}

// ChartDocument describes one chart of a song.
type ChartDocument struct {
	ChartID    string          `json:"chartID"`
	RgcID      *string         `json:"rgcID"`
	SongID     int             `json:"songID"`
	Level      string          `json:"level"`
	LevelNum   float64         `json:"levelNum"`
	IsPrimary  bool            `json:"isPrimary"`
	Difficulty core.Difficulty `json:"difficulty"`
	Playtype   core.Playtype   `json:"playtype"`
	Versions   []string        `json:"versions"`
	Data       map[string]any  `json:"data"`
}

// SongDocument describes a song.
type SongDocument struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Artist      string         `json:"artist"`
	SearchTerms []string       `json:"searchTerms"`
	AltTitles   []string       `json:"altTitles"`
	Data        map[string]any `json:"data"`
}

package schema

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/rhythm-registry/internal/catalog"
	"github.com/vovakirdan/rhythm-registry/internal/core"
	"github.com/vovakirdan/rhythm-registry/internal/registry"
)

// now is replaced in tests.
var now = time.Now

// ScoreInput is the raw result a score document is built from.
type ScoreInput struct {
	Game     core.Game
	Playtype core.Playtype
	UserID   int
	Service  string

	SongID    int
	ChartID   string
	IsPrimary bool

	Score      float64
	Percent    float64
	Lamp       core.Lamp
	Judgements map[core.Judgement]*int
	HitMeta    HitMeta
	ESD        *float64

	ScoreMeta      map[string]any
	CalculatedData map[core.RatingAlg]*float64

	TimeAchieved *int64
	Comment      *string
	ImportType   *catalog.ImportType
}

// NewScore builds a score document. The grade and both indices are derived
// from the registry; anything outside the variant's vocabulary is a
// *SchemaViolationError.
func NewScore(reg *registry.Registry, in ScoreInput) (*ScoreDocument, error) {
	v := NewValidator(reg)
	cfg, err := v.variant(in.Game, in.Playtype)
	if err != nil {
		return nil, err
	}
	b := cfg.Base()

	grade, gradeIndex, err := b.GradeFor(in.Percent)
	if err != nil {
		return nil, &SchemaViolationError{Key: b.Key, Field: "percent", Value: fmt.Sprint(in.Percent)}
	}

	doc := &ScoreDocument{
		ScoreID:  uuid.NewString(),
		Service:  in.Service,
		Game:     in.Game,
		Playtype: in.Playtype,
		UserID:   in.UserID,
		ScoreData: ScoreData{
			Score:      in.Score,
			Percent:    in.Percent,
			Grade:      grade,
			GradeIndex: gradeIndex,
			Lamp:       in.Lamp,
			LampIndex:  b.LampIndexOf(in.Lamp),
			ESD:        in.ESD,
			Judgements: in.Judgements,
			HitMeta:    in.HitMeta,
		},
		ScoreMeta:      in.ScoreMeta,
		CalculatedData: in.CalculatedData,
		TimeAchieved:   in.TimeAchieved,
		TimeAdded:      now().UnixMilli(),
		SongID:         in.SongID,
		ChartID:        in.ChartID,
		IsPrimary:      in.IsPrimary,
		Comment:        in.Comment,
		ImportType:     in.ImportType,
	}
	if doc.ScoreData.Judgements == nil {
		doc.ScoreData.Judgements = map[core.Judgement]*int{}
	}
	if doc.ScoreMeta == nil {
		doc.ScoreMeta = map[string]any{}
	}
	if doc.CalculatedData == nil {
		doc.CalculatedData = map[core.RatingAlg]*float64{}
	}

	if err := v.ValidateScore(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

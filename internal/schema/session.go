package schema

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vovakirdan/rhythm-registry/internal/catalog"
	"github.com/vovakirdan/rhythm-registry/internal/core"
	"github.com/vovakirdan/rhythm-registry/internal/registry"
)

// ErrMismatchedScores is returned when scores that must describe the same
// user, chart and variant do not.
var ErrMismatchedScores = errors.New("scores do not share user, chart and variant")

// SessionInput is what a session document is built from.
type SessionInput struct {
	UserID     int
	Name       string
	Desc       *string
	Game       core.Game
	Playtype   core.Playtype
	ImportType *catalog.ImportType

	ScoreInfo   []SessionScoreInfo
	TimeStarted int64
	TimeEnded   int64

	CalculatedData map[core.RatingAlg]*float64
}

// NewSession builds a session document and validates it.
func NewSession(reg *registry.Registry, in SessionInput) (*SessionDocument, error) {
	v := NewValidator(reg)

	doc := &SessionDocument{
		SessionID:      uuid.NewString(),
		UserID:         in.UserID,
		Name:           in.Name,
		Desc:           in.Desc,
		Game:           in.Game,
		Playtype:       in.Playtype,
		ImportType:     in.ImportType,
		ScoreInfo:      append([]SessionScoreInfo(nil), in.ScoreInfo...),
		TimeInserted:   now().UnixMilli(),
		TimeStarted:    in.TimeStarted,
		TimeEnded:      in.TimeEnded,
		CalculatedData: in.CalculatedData,
	}
	if doc.ScoreInfo == nil {
		doc.ScoreInfo = []SessionScoreInfo{}
	}
	if doc.CalculatedData == nil {
		doc.CalculatedData = map[core.RatingAlg]*float64{}
	}

	if err := v.ValidateSession(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// NewScoreInfo records a score on a chart the user had not played.
func NewScoreInfo(scoreID string) SessionScoreInfo {
	return SessionScoreInfo{ScoreID: scoreID, IsNewScore: true}
}

// ImprovedScoreInfo records cur against the user's previous best prev.
func ImprovedScoreInfo(prev, cur *ScoreDocument) (SessionScoreInfo, error) {
	if !sameChart(prev.UserID, prev.ChartID, prev.Key(), cur.UserID, cur.ChartID, cur.Key()) {
		return SessionScoreInfo{}, fmt.Errorf("schema: score info %s: %w", cur.ScoreID, ErrMismatchedScores)
	}
	return SessionScoreInfo{
		ScoreID:      cur.ScoreID,
		ScoreDelta:   cur.ScoreData.Score - prev.ScoreData.Score,
		GradeDelta:   cur.ScoreData.GradeIndex - prev.ScoreData.GradeIndex,
		LampDelta:    cur.ScoreData.LampIndex - prev.ScoreData.LampIndex,
		PercentDelta: cur.ScoreData.Percent - prev.ScoreData.Percent,
	}, nil
}

func sameChart(u1 int, c1 string, k1 core.VariantKey, u2 int, c2 string, k2 core.VariantKey) bool {
	return u1 == u2 && c1 == c2 && k1 == k2
}

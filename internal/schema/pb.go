package schema

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/rhythm-registry/internal/core"
	"github.com/vovakirdan/rhythm-registry/internal/registry"
)

// ComposePB builds a personal best from the user's best-scoring and
// best-lamp scores on one chart. Score fields come from scorePB; the lamp
// and the lamp-related hit statistics come from lampPB.
func ComposePB(reg *registry.Registry, scorePB, lampPB *ScoreDocument) (*PBScoreDocument, error) {
	if !sameChart(scorePB.UserID, scorePB.ChartID, scorePB.Key(), lampPB.UserID, lampPB.ChartID, lampPB.Key()) {
		return nil, fmt.Errorf("schema: compose pb: %w", ErrMismatchedScores)
	}

	sd := scorePB.ScoreData
	sd.ESD = clonePtr(sd.ESD)
	sd.Judgements = cloneJudgements(sd.Judgements)
	sd.HitMeta = sd.HitMeta.clone()
	sd.Lamp = lampPB.ScoreData.Lamp
	sd.LampIndex = lampPB.ScoreData.LampIndex
	if lampPB.ScoreData.HitMeta.BP != nil {
		sd.HitMeta.BP = clonePtr(lampPB.ScoreData.HitMeta.BP)
	}
	if lampPB.ScoreData.HitMeta.Gauge != nil {
		sd.HitMeta.Gauge = clonePtr(lampPB.ScoreData.HitMeta.Gauge)
	}

	pb := &PBScoreDocument{
		ComposedFrom: PBComposition{
			ScorePB: scorePB.ScoreID,
			LampPB:  lampPB.ScoreID,
		},
		UserID:         scorePB.UserID,
		ChartID:        scorePB.ChartID,
		SongID:         scorePB.SongID,
		Game:           scorePB.Game,
		Playtype:       scorePB.Playtype,
		Highlight:      scorePB.Highlight || lampPB.Highlight,
		IsPrimary:      scorePB.IsPrimary,
		TimeAchieved:   latest(scorePB.TimeAchieved, lampPB.TimeAchieved),
		ScoreData:      sd,
		CalculatedData: cloneRatings(scorePB.CalculatedData),
	}

	if err := NewValidator(reg).ValidatePB(pb); err != nil {
		return nil, err
	}
	return pb, nil
}

func latest(a, b *int64) *int64 {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case *b > *a:
		return b
	}
	return a
}

func cloneJudgements(m map[core.Judgement]*int) map[core.Judgement]*int {
	out := make(map[core.Judgement]*int, len(m))
	for k, v := range m {
		out[k] = clonePtr(v)
	}
	return out
}

func cloneRatings(m map[core.RatingAlg]*float64) map[core.RatingAlg]*float64 {
	out := make(map[core.RatingAlg]*float64, len(m))
	for k, v := range m {
		out[k] = clonePtr(v)
	}
	return out
}

// clone returns a copy of h that shares no memory with it.
func (h HitMeta) clone() HitMeta {
	out := HitMeta{
		Fast:         clonePtr(h.Fast),
		Slow:         clonePtr(h.Slow),
		MaxCombo:     clonePtr(h.MaxCombo),
		BP:           clonePtr(h.BP),
		Gauge:        clonePtr(h.Gauge),
		GaugeHistory: clonePtrs(h.GaugeHistory),
		ScoreHistory: slices.Clone(h.ScoreHistory),
		ComboBreak:   clonePtr(h.ComboBreak),
	}
	if h.GSM != nil {
		out.GSM = &GSM{
			Easy:   clonePtrs(h.GSM.Easy),
			Normal: clonePtrs(h.GSM.Normal),
			Hard:   clonePtrs(h.GSM.Hard),
			ExHard: clonePtrs(h.GSM.ExHard),
		}
	}
	if h.EarlyLate != nil {
		out.EarlyLate = make(map[string]int, len(h.EarlyLate))
		for k, v := range h.EarlyLate {
			out.EarlyLate[k] = v
		}
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// clonePtrs keeps nil slices nil so unset fields stay unset.
func clonePtrs[T any](xs []*T) []*T {
	if xs == nil {
		return nil
	}
	out := make([]*T, len(xs))
	for i, x := range xs {
		out[i] = clonePtr(x)
	}
	return out
}

package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/vovakirdan/rhythm-registry/internal/catalog"
	"github.com/vovakirdan/rhythm-registry/internal/core"
	"github.com/vovakirdan/rhythm-registry/internal/registry"
)

// ErrSchemaViolation matches every *SchemaViolationError.
var ErrSchemaViolation = errors.New("schema violation")

// SchemaViolationError reports a document field outside its variant's
// vocabulary or otherwise inconsistent with the registry.
type SchemaViolationError struct {
	Key   core.VariantKey
	Field string
	Value string
	Legal []string
}

func (e *SchemaViolationError) Error() string {
	if len(e.Legal) == 0 {
		return fmt.Sprintf("schema: %s: invalid %s %q", e.Key, e.Field, e.Value)
	}
	return fmt.Sprintf("schema: %s: invalid %s %q (legal: %s)", e.Key, e.Field, e.Value, strings.Join(e.Legal, ", "))
}

func (e *SchemaViolationError) Is(target error) bool { return target == ErrSchemaViolation }

// Per-game hitMeta fields beyond fast/slow/maxCombo.
var hitMetaFields = map[core.Game][]string{
	core.GameIIDX: {"bp", "gauge", "gaugeHistory", "scoreHistory", "comboBreak", "gsm"},
	core.GameBMS:  {"bp", "gauge", "earlyLate"},
	core.GameSDVX: {"gauge"},
	core.GameUSC:  {"gauge"},
}

// Validator checks documents against a registry.
type Validator struct {
	reg *registry.Registry
}

// NewValidator returns a validator bound to reg, or to the default
// registry when reg is nil.
func NewValidator(reg *registry.Registry) *Validator {
	if reg == nil {
		reg = registry.Default()
	}
	return &Validator{reg: reg}
}

// violations collects schema errors for one document.
type violations struct {
	key  core.VariantKey
	errs []error
}

func (v *violations) add(field, value string, legal ...string) {
	v.errs = append(v.errs, &SchemaViolationError{Key: v.key, Field: field, Value: value, Legal: legal})
}

func (v *violations) err() error { return errors.Join(v.errs...) }

func (v *Validator) variant(game core.Game, playtype core.Playtype) (registry.VariantConfig, error) {
	cfg, err := v.reg.GetVariantConfig(game, playtype)
	if err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	return cfg, nil
}

// ValidateScore checks a score document.
func (v *Validator) ValidateScore(doc *ScoreDocument) error {
	cfg, err := v.variant(doc.Game, doc.Playtype)
	if err != nil {
		return err
	}
	vs := &violations{key: doc.Key()}

	if doc.ScoreID == "" {
		vs.add("scoreID", doc.ScoreID)
	}
	if doc.ChartID == "" {
		vs.add("chartID", doc.ChartID)
	}
	if doc.ImportType != nil {
		if _, err := catalog.ParseImportType(string(*doc.ImportType)); err != nil {
			vs.add("importType", string(*doc.ImportType))
		}
	}
	checkScoreData(vs, cfg, doc.Game, &doc.ScoreData)
	checkRatings(vs, "calculatedData", doc.CalculatedData, cfg.Base().ScoreRatingAlgs)

	return vs.err()
}

// ValidatePB checks a personal-best document.
func (v *Validator) ValidatePB(doc *PBScoreDocument) error {
	cfg, err := v.variant(doc.Game, doc.Playtype)
	if err != nil {
		return err
	}
	vs := &violations{key: doc.Key()}

	if doc.ChartID == "" {
		vs.add("chartID", doc.ChartID)
	}
	if doc.ComposedFrom.ScorePB == "" {
		vs.add("composedFrom.scorePB", doc.ComposedFrom.ScorePB)
	}
	if doc.ComposedFrom.LampPB == "" {
		vs.add("composedFrom.lampPB", doc.ComposedFrom.LampPB)
	}
	if r := doc.RankingData; r != (RankingData{}) && (r.Rank < 1 || r.Rank > r.OutOf) {
		vs.add("rankingData", fmt.Sprintf("%d/%d", r.Rank, r.OutOf))
	}
	checkScoreData(vs, cfg, doc.Game, &doc.ScoreData)
	checkRatings(vs, "calculatedData", doc.CalculatedData, cfg.Base().ScoreRatingAlgs)

	return vs.err()
}

// ValidateSession checks a session document.
func (v *Validator) ValidateSession(doc *SessionDocument) error {
	cfg, err := v.variant(doc.Game, doc.Playtype)
	if err != nil {
		return err
	}
	vs := &violations{key: doc.Key()}

	if doc.SessionID == "" {
		vs.add("sessionID", doc.SessionID)
	}
	if strings.TrimSpace(doc.Name) == "" {
		vs.add("name", doc.Name)
	}
	if doc.TimeEnded < doc.TimeStarted {
		vs.add("timeEnded", fmt.Sprint(doc.TimeEnded))
	}
	if doc.ImportType != nil {
		if _, err := catalog.ParseImportType(string(*doc.ImportType)); err != nil {
			vs.add("importType", string(*doc.ImportType))
		}
	}
	seen := make(map[string]bool, len(doc.ScoreInfo))
	for i, info := range doc.ScoreInfo {
		field := fmt.Sprintf("scoreInfo[%d]", i)
		if info.ScoreID == "" || seen[info.ScoreID] {
			vs.add(field+".scoreID", info.ScoreID)
		}
		seen[info.ScoreID] = true
		if info.IsNewScore && (info.ScoreDelta != 0 || info.GradeDelta != 0 || info.LampDelta != 0 || info.PercentDelta != 0) {
			vs.add(field, "new score with deltas")
		}
	}
	checkRatings(vs, "calculatedData", doc.CalculatedData, cfg.Base().SessionRatingAlgs)

	return vs.err()
}

// ValidateChart checks a chart of game against its variant.
func (v *Validator) ValidateChart(game core.Game, chart *ChartDocument) error {
	cfg, err := v.variant(game, chart.Playtype)
	if err != nil {
		return err
	}
	b := cfg.Base()
	vs := &violations{key: b.Key}

	if chart.ChartID == "" {
		vs.add("chartID", chart.ChartID)
	}
	if b.DifficultyIndexOf(chart.Difficulty) < 0 {
		vs.add("difficulty", string(chart.Difficulty), toStrings(b.Difficulties)...)
	}
	for _, ver := range chart.Versions {
		if !contains(b.Versions, ver) {
			vs.add("versions", ver, b.Versions...)
		}
	}
	return vs.err()
}

// DecodeScore reads one JSON score document and validates it.
// Unknown fields are rejected.
func (v *Validator) DecodeScore(r io.Reader) (*ScoreDocument, error) {
	var doc ScoreDocument
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("schema: decode score: %w", err)
	}
	if err := v.ValidateScore(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func checkScoreData(vs *violations, cfg registry.VariantConfig, game core.Game, sd *ScoreData) {
	b := cfg.Base()

	if math.IsNaN(sd.Percent) || sd.Percent < 0 || sd.Percent > b.PercentMax {
		vs.add("percent", fmt.Sprint(sd.Percent))
	} else if grade, _, err := b.GradeFor(sd.Percent); err == nil && grade != sd.Grade && b.GradeIndexOf(sd.Grade) >= 0 {
		// grade must agree with percent
		vs.add("grade", string(sd.Grade), string(grade))
	}

	if gi := b.GradeIndexOf(sd.Grade); gi < 0 {
		vs.add("grade", string(sd.Grade), toStrings(b.Grades)...)
	} else if gi != sd.GradeIndex {
		vs.add("gradeIndex", fmt.Sprint(sd.GradeIndex), fmt.Sprint(gi))
	}

	if li := b.LampIndexOf(sd.Lamp); li < 0 {
		vs.add("lamp", string(sd.Lamp), toStrings(b.Lamps)...)
	} else if li != sd.LampIndex {
		vs.add("lampIndex", fmt.Sprint(sd.LampIndex), fmt.Sprint(li))
	}

	for j, n := range sd.Judgements {
		if !b.HasJudgement(j) {
			vs.add("judgements", string(j), toStrings(b.Judgements)...)
		}
		if n != nil && *n < 0 {
			vs.add("judgements."+string(j), fmt.Sprint(*n))
		}
	}

	if sd.ESD != nil && !cfg.SupportsTimingWindows() {
		vs.add("esd", fmt.Sprint(*sd.ESD))
	}

	legal := hitMetaFields[game]
	for _, f := range sd.HitMeta.setFields() {
		if !contains(legal, f) {
			vs.add("hitMeta", f, legal...)
		}
	}
	for k := range sd.HitMeta.EarlyLate {
		if !validEarlyLateKey(k) {
			vs.add("hitMeta.earlyLate", k)
		}
	}
}

func checkRatings(vs *violations, field string, data map[core.RatingAlg]*float64, legal []core.RatingAlg) {
	for alg := range data {
		if !contains(legal, alg) {
			vs.add(field, string(alg), toStrings(legal)...)
		}
	}
}

// setFields lists the game-specific fields that are set.
func (h HitMeta) setFields() []string {
	var out []string
	if h.BP != nil {
		out = append(out, "bp")
	}
	if h.Gauge != nil {
		out = append(out, "gauge")
	}
	if h.GaugeHistory != nil {
		out = append(out, "gaugeHistory")
	}
	if h.ScoreHistory != nil {
		out = append(out, "scoreHistory")
	}
	if h.ComboBreak != nil {
		out = append(out, "comboBreak")
	}
	if h.GSM != nil {
		out = append(out, "gsm")
	}
	if h.EarlyLate != nil {
		out = append(out, "earlyLate")
	}
	return out
}

// validEarlyLateKey accepts e/l followed by a judgement abbreviation.
func validEarlyLateKey(k string) bool {
	if len(k) != 3 || (k[0] != 'e' && k[0] != 'l') {
		return false
	}
	switch k[1:] {
	case "bd", "pr", "gd", "gr", "pg":
		return true
	}
	return false
}

func contains[T comparable](xs []T, v T) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func toStrings[T ~string](xs []T) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = string(x)
	}
	return out
}

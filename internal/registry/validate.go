package registry

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/rhythm-registry/internal/core"
)

// Validate checks every invariant of the game and variant tables and returns
// all violations joined, or nil.
func Validate(games map[core.Game]GameConfig, variants map[core.VariantKey]VariantConfig) error {
	var errs []error
	add := func(code, key, format string, args ...any) {
		errs = append(errs, ValidationError{Code: code, Key: key, Message: fmt.Sprintf(format, args...)})
	}

	for name, g := range games {
		key := string(name)
		if g.InternalName != name {
			add(CodeKeyMismatch, key, "registered under %q but internalName is %q", name, g.InternalName)
		}
		if len(g.ValidPlaytypes) == 0 {
			add(CodeEmptyVocabulary, key, "no valid playtypes")
		}
		if !g.SupportsPlaytype(g.DefaultPlaytype) {
			add(CodeMissingDefault, key, "default playtype %q not in %v", g.DefaultPlaytype, g.ValidPlaytypes)
		}
		if dup, ok := firstDuplicate(g.ValidPlaytypes); ok {
			add(CodeDuplicateEntry, key, "playtype %q listed twice", dup)
		}
	}

	for k, v := range variants {
		if v == nil {
			add(CodeEmptyVocabulary, string(k), "nil config")
			continue
		}
		errs = append(errs, validateVariant(k, v, games)...)
	}

	return errors.Join(errs...)
}

func validateVariant(k core.VariantKey, v VariantConfig, games map[core.Game]GameConfig) []error {
	var errs []error
	key := string(k)
	add := func(code, format string, args ...any) {
		errs = append(errs, ValidationError{Code: code, Key: key, Message: fmt.Sprintf(format, args...)})
	}
	b := v.Base()

	if b.Key != k {
		add(CodeKeyMismatch, "registered under %q but key is %q", k, b.Key)
	}
	if g, ok := games[k.Game()]; !ok {
		add(CodeUnknownGame, "game %q has no configuration", k.Game())
	} else if !g.SupportsPlaytype(k.Playtype()) {
		add(CodeInvalidPlaytype, "playtype %q not valid for %q", k.Playtype(), k.Game())
	}

	// vocabularies
	if len(b.Difficulties) == 0 || len(b.Grades) == 0 || len(b.Lamps) == 0 || len(b.Judgements) == 0 {
		add(CodeEmptyVocabulary, "difficulties, grades, lamps and judgements must all be non-empty")
	}
	if d, ok := firstDuplicate(b.Difficulties); ok {
		add(CodeDuplicateEntry, "difficulty %q listed twice", d)
	}
	if g, ok := firstDuplicate(b.Grades); ok {
		add(CodeDuplicateEntry, "grade %q listed twice", g)
	}
	if l, ok := firstDuplicate(b.Lamps); ok {
		add(CodeDuplicateEntry, "lamp %q listed twice", l)
	}
	if j, ok := firstDuplicate(b.Judgements); ok {
		add(CodeDuplicateEntry, "judgement %q listed twice", j)
	}
	if b.DifficultyIndexOf(b.DefaultDifficulty) < 0 {
		add(CodeMissingDefault, "default difficulty %q not in difficulties", b.DefaultDifficulty)
	}
	if b.GradeIndexOf(b.ClearGrade) < 0 {
		add(CodeMissingDefault, "clear grade %q not in grades", b.ClearGrade)
	}
	if b.LampIndexOf(b.ClearLamp) < 0 {
		add(CodeMissingDefault, "clear lamp %q not in lamps", b.ClearLamp)
	}

	// colours; difficulty colours may be ColourNone but must be present
	for _, d := range b.Difficulties {
		if _, ok := b.DifficultyColours[d]; !ok {
			add(CodeMissingColour, "difficulty %q has no colour entry", d)
		}
	}
	for _, g := range b.Grades {
		if !b.GradeColours[g].Valid() {
			add(CodeMissingColour, "grade %q has no colour", g)
		}
	}
	for _, l := range b.Lamps {
		if !b.LampColours[l].Valid() {
			add(CodeMissingColour, "lamp %q has no colour", l)
		}
	}

	// grade boundaries
	switch {
	case len(b.GradeBoundaries) != len(b.Grades):
		add(CodeBoundaryLength, "%d boundaries for %d grades", len(b.GradeBoundaries), len(b.Grades))
	case len(b.GradeBoundaries) > 0 && b.GradeBoundaries[0] != 0:
		add(CodeBoundaryStart, "first boundary is %v, want 0", b.GradeBoundaries[0])
	}
	for i := 1; i < len(b.GradeBoundaries); i++ {
		if b.GradeBoundaries[i] < b.GradeBoundaries[i-1] {
			add(CodeBoundaryOrder, "boundary %d (%v) below boundary %d (%v)", i, b.GradeBoundaries[i], i-1, b.GradeBoundaries[i-1])
		}
	}
	if n := len(b.GradeBoundaries); n > 0 && b.GradeBoundaries[n-1] > b.PercentMax {
		add(CodeBoundaryOverMax, "last boundary %v exceeds percentMax %v", b.GradeBoundaries[n-1], b.PercentMax)
	}

	// rating algorithms
	for _, r := range []struct {
		kind  string
		def   core.RatingAlg
		legal []core.RatingAlg
	}{
		{"score", b.DefaultScoreRatingAlg, b.ScoreRatingAlgs},
		{"session", b.DefaultSessionRatingAlg, b.SessionRatingAlgs},
		{"profile", b.DefaultProfileRatingAlg, b.ProfileRatingAlgs},
	} {
		if indexOf(r.legal, r.def) < 0 {
			add(CodeRatingAlg, "default %s rating algorithm %q not in %v", r.kind, r.def, r.legal)
		}
	}

	if b.ScoreBucket != core.ScoreBucketGrade && b.ScoreBucket != core.ScoreBucketLamp {
		add(CodeInvalidScoreBucket, "score bucket %q", b.ScoreBucket)
	}

	if windows, ok := TimingWindowsOf(v); ok {
		if len(windows) == 0 {
			add(CodeTimingEmpty, "timed variant has no timing windows")
		}
		for i := 1; i < len(windows); i++ {
			prev, cur := windows[i-1], windows[i]
			if cur.MSBoundary < prev.MSBoundary {
				add(CodeTimingOrder, "window %q (%vms) before %q (%vms)", prev.Name, prev.MSBoundary, cur.Name, cur.MSBoundary)
			}
			if cur.PointValue > prev.PointValue {
				add(CodeTimingValue, "window %q worth more than tighter %q", cur.Name, prev.Name)
			}
		}
	}

	return errs
}

func firstDuplicate[T comparable](xs []T) (T, bool) {
	seen := make(map[T]struct{}, len(xs))
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			return x, true
		}
		seen[x] = struct{}{}
	}
	var zero T
	return zero, false
}

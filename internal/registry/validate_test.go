package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/rhythm-registry/internal/core"
)

func testGames() []GameConfig {
	return []GameConfig{{
		InternalName:    core.GameDDR,
		Name:            "DDR",
		DefaultPlaytype: core.PlaytypeSP,
		ValidPlaytypes:  []core.Playtype{core.PlaytypeSP, core.PlaytypeDP},
	}}
}

func validationCodes(err error) []string {
	var codes []string
	var walk func(error)
	walk = func(err error) {
		switch e := err.(type) {
		case nil:
		case ValidationError:
			codes = append(codes, e.Code)
		case interface{ Unwrap() []error }:
			for _, inner := range e.Unwrap() {
				walk(inner)
			}
		default:
			walk(errors.Unwrap(err))
		}
	}
	walk(err)
	return codes
}

func hasCode(err error, code string) bool {
	for _, c := range validationCodes(err) {
		if c == code {
			return true
		}
	}
	return false
}

func TestValidateRejectsBrokenVariants(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(v *TimedVariantConfig)
		code   string
	}{
		{
			name:   "boundary count",
			mutate: func(v *TimedVariantConfig) { v.GradeBoundaries = v.GradeBoundaries[1:] },
			code:   CodeBoundaryLength,
		},
		{
			name:   "boundary start",
			mutate: func(v *TimedVariantConfig) { v.GradeBoundaries[0] = 1 },
			code:   CodeBoundaryStart,
		},
		{
			name:   "boundary order",
			mutate: func(v *TimedVariantConfig) { v.GradeBoundaries[3] = 10 },
			code:   CodeBoundaryOrder,
		},
		{
			name:   "boundary over max",
			mutate: func(v *TimedVariantConfig) { v.PercentMax = 90 },
			code:   CodeBoundaryOverMax,
		},
		{
			name:   "clear lamp",
			mutate: func(v *TimedVariantConfig) { v.ClearLamp = "HARD CLEAR" },
			code:   CodeMissingDefault,
		},
		{
			name:   "grade colour",
			mutate: func(v *TimedVariantConfig) { delete(v.GradeColours, "AAA") },
			code:   CodeMissingColour,
		},
		{
			name:   "difficulty colour",
			mutate: func(v *TimedVariantConfig) { delete(v.DifficultyColours, "EXPERT") },
			code:   CodeMissingColour,
		},
		{
			name:   "rating default",
			mutate: func(v *TimedVariantConfig) { v.DefaultSessionRatingAlg = core.RatingVF6 },
			code:   CodeRatingAlg,
		},
		{
			name:   "window order",
			mutate: func(v *TimedVariantConfig) { v.TimingWindows[0].MSBoundary = 200 },
			code:   CodeTimingOrder,
		},
		{
			name:   "window value",
			mutate: func(v *TimedVariantConfig) { v.TimingWindows[2].PointValue = 5 },
			code:   CodeTimingValue,
		},
		{
			name:   "empty windows",
			mutate: func(v *TimedVariantConfig) { v.TimingWindows = nil },
			code:   CodeTimingEmpty,
		},
		{
			name:   "duplicate lamp",
			mutate: func(v *TimedVariantConfig) { v.Lamps = append(v.Lamps, "CLEAR") },
			code:   CodeDuplicateEntry,
		},
		{
			name:   "score bucket",
			mutate: func(v *TimedVariantConfig) { v.ScoreBucket = "level" },
			code:   CodeInvalidScoreBucket,
		},
		{
			name:   "invalid playtype",
			mutate: func(v *TimedVariantConfig) { v.Key = "ddr:Single" },
			code:   CodeInvalidPlaytype,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ddrVariant(core.DDRSP, []core.Difficulty{"BASIC", "DIFFICULT", "EXPERT", "CHALLENGE"})
			tt.mutate(v)

			_, err := New(testGames(), []VariantConfig{v})
			if err == nil {
				t.Fatal("New() accepted a broken variant")
			}
			if !hasCode(err, tt.code) {
				t.Errorf("error codes = %v, want %s", validationCodes(err), tt.code)
			}
		})
	}
}

func TestValidateRejectsBrokenGames(t *testing.T) {
	games := testGames()
	games[0].DefaultPlaytype = core.PlaytypeSingle

	_, err := New(games, nil)
	if !hasCode(err, CodeMissingDefault) {
		t.Errorf("error codes = %v, want %s", validationCodes(err), CodeMissingDefault)
	}
}

func TestValidateReportsAllViolations(t *testing.T) {
	v := ddrVariant(core.DDRSP, []core.Difficulty{"EXPERT"})
	v.GradeBoundaries[0] = 3
	v.ClearGrade = "S"

	_, err := New(testGames(), []VariantConfig{v})
	if err == nil {
		t.Fatal("New() accepted a broken variant")
	}
	if !hasCode(err, CodeBoundaryStart) || !hasCode(err, CodeMissingDefault) {
		t.Errorf("error codes = %v", validationCodes(err))
	}
	if !strings.Contains(err.Error(), "ddr:SP") {
		t.Errorf("error %q does not name the variant", err)
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	v := ddrVariant(core.DDRSP, []core.Difficulty{"EXPERT"})
	if _, err := New(testGames(), []VariantConfig{v, v}); err == nil {
		t.Error("New() accepted a duplicate variant")
	}
	if _, err := New(append(testGames(), testGames()...), nil); err == nil {
		t.Error("New() accepted a duplicate game")
	}
}

func TestNewCopiesInput(t *testing.T) {
	v := ddrVariant(core.DDRSP, []core.Difficulty{"EXPERT"})
	r, err := New(testGames(), []VariantConfig{v})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	v.Grades[0] = "mutated"

	got := r.MustVariantConfig(core.GameDDR, core.PlaytypeSP)
	if got.Base().Grades[0] != "D" {
		t.Error("registry shares state with its input")
	}
}

package registry

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/rhythm-registry/internal/core"
)

func TestWindowFor(t *testing.T) {
	cfg := MustVariantConfig(core.GameIIDX, core.PlaytypeSP).(*TimedVariantConfig)

	tests := []struct {
		deviation float64
		want      string
		ok        bool
	}{
		{0, "PGREAT", true},
		{16.667, "PGREAT", true},
		{-16.667, "PGREAT", true},
		{16.668, "GREAT", true},
		{-30, "GREAT", true},
		{100, "GOOD", true},
		{116.668, "", false},
		{math.NaN(), "", false},
	}

	for _, tt := range tests {
		w, ok := cfg.WindowFor(tt.deviation)
		if ok != tt.ok || w.Name != tt.want {
			t.Errorf("WindowFor(%v) = %q/%v, want %q/%v", tt.deviation, w.Name, ok, tt.want, tt.ok)
		}
	}

	if got := cfg.WidestBoundary(); got != 116.667 {
		t.Errorf("WidestBoundary() = %v, want 116.667", got)
	}
}

func TestGradeIndex(t *testing.T) {
	boundaries := []float64{0, 50, 50, 75}

	tests := []struct {
		percent float64
		want    int
	}{
		{0, 0},
		{49.9, 0},
		// equal boundaries: the higher tier wins
		{50, 2},
		{75, 3},
		{1000, 3},
	}

	for _, tt := range tests {
		got, err := GradeIndex(boundaries, tt.percent)
		if err != nil {
			t.Errorf("GradeIndex(%v) failed: %v", tt.percent, err)
			continue
		}
		if got != tt.want {
			t.Errorf("GradeIndex(%v) = %d, want %d", tt.percent, got, tt.want)
		}
	}

	for _, p := range []float64{-1, math.NaN(), math.Inf(1)} {
		if _, err := GradeIndex(boundaries, p); !errors.Is(err, ErrPercentOutOfRange) {
			t.Errorf("GradeIndex(%v) error = %v, want ErrPercentOutOfRange", p, err)
		}
	}
}

func TestClearChecks(t *testing.T) {
	b := MustVariantConfig(core.GameIIDX, core.PlaytypeSP).Base()

	if b.IsClearLamp("EASY CLEAR") {
		t.Error("EASY CLEAR should not be a clear")
	}
	if !b.IsClearLamp("CLEAR") || !b.IsClearLamp("FULL COMBO") {
		t.Error("CLEAR and FULL COMBO should be clears")
	}
	if b.IsClearLamp("PERFECT") {
		t.Error("unknown lamp reported as clear")
	}
	if !b.IsClearGrade("AA") || b.IsClearGrade("B") {
		t.Error("IsClearGrade mismatch around A")
	}
	if got := b.ShortDifficulty("ANOTHER"); got != "A" {
		t.Errorf("ShortDifficulty(ANOTHER) = %q, want A", got)
	}

	bms := MustVariantConfig(core.GameBMS, core.Playtype7K).Base()
	if _, ok := bms.DifficultyColour("CHART"); ok {
		t.Error("bms CHART should have no colour")
	}
	if got := bms.ShortDifficulty("CHART"); got != "CHART" {
		t.Errorf("ShortDifficulty(CHART) = %q, want CHART", got)
	}
}

package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/rhythm-registry/internal/core"
)

func TestDefaultRegistryValid(t *testing.T) {
	r := Default()
	if err := Validate(r.games, r.variants); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
}

func TestVariantKeyRoundTrip(t *testing.T) {
	for _, k := range VariantKeys() {
		t.Run(string(k), func(t *testing.T) {
			cfg, err := GetVariantConfig(k.Game(), k.Playtype())
			if err != nil {
				t.Fatalf("GetVariantConfig() failed: %v", err)
			}
			if got := cfg.Base().Key; got != k {
				t.Errorf("Key = %q, want %q", got, k)
			}
		})
	}
}

func TestGradeBoundariesShape(t *testing.T) {
	for _, k := range VariantKeys() {
		b := MustVariantConfig(k.Game(), k.Playtype()).Base()
		if len(b.GradeBoundaries) != len(b.Grades) {
			t.Errorf("%s: %d boundaries for %d grades", k, len(b.GradeBoundaries), len(b.Grades))
			continue
		}
		if b.GradeBoundaries[0] != 0 {
			t.Errorf("%s: first boundary = %v, want 0", k, b.GradeBoundaries[0])
		}
		for i := 1; i < len(b.GradeBoundaries); i++ {
			if b.GradeBoundaries[i] < b.GradeBoundaries[i-1] {
				t.Errorf("%s: boundaries decrease at %d", k, i)
			}
		}
	}
}

func TestClearVocabularyMembership(t *testing.T) {
	for _, k := range VariantKeys() {
		b := MustVariantConfig(k.Game(), k.Playtype()).Base()
		if b.GradeIndexOf(b.ClearGrade) < 0 {
			t.Errorf("%s: clear grade %q not in grades", k, b.ClearGrade)
		}
		if b.LampIndexOf(b.ClearLamp) < 0 {
			t.Errorf("%s: clear lamp %q not in lamps", k, b.ClearLamp)
		}
	}
}

func TestTimingWindowsOrdered(t *testing.T) {
	timed := 0
	for _, k := range VariantKeys() {
		cfg := MustVariantConfig(k.Game(), k.Playtype())
		windows, ok := TimingWindowsOf(cfg)
		if ok != cfg.SupportsTimingWindows() {
			t.Errorf("%s: TimingWindowsOf ok = %v, SupportsTimingWindows = %v", k, ok, cfg.SupportsTimingWindows())
		}
		if !ok {
			continue
		}
		timed++
		for i := 1; i < len(windows); i++ {
			if windows[i].MSBoundary < windows[i-1].MSBoundary {
				t.Errorf("%s: window %q out of order", k, windows[i].Name)
			}
			if windows[i].PointValue > windows[i-1].PointValue {
				t.Errorf("%s: window %q point value increases", k, windows[i].Name)
			}
		}
	}
	if timed == 0 {
		t.Error("expected at least one timed variant")
	}
}

func TestGameDefaultPlaytype(t *testing.T) {
	for _, g := range Games() {
		if !g.SupportsPlaytype(g.DefaultPlaytype) {
			t.Errorf("%s: default playtype %q not in %v", g.InternalName, g.DefaultPlaytype, g.ValidPlaytypes)
		}
	}
}

func TestIIDXExamples(t *testing.T) {
	g, err := GetGameConfig(core.GameIIDX)
	if err != nil {
		t.Fatalf("GetGameConfig() failed: %v", err)
	}
	if diff := cmp.Diff([]core.Playtype{core.PlaytypeSP, core.PlaytypeDP}, g.ValidPlaytypes); diff != "" {
		t.Errorf("ValidPlaytypes mismatch (-want +got):\n%s", diff)
	}

	cfg, err := GetVariantConfig(core.GameIIDX, core.PlaytypeSP)
	if err != nil {
		t.Fatalf("GetVariantConfig() failed: %v", err)
	}
	if cfg.Base().ClearLamp != "CLEAR" {
		t.Errorf("ClearLamp = %q, want CLEAR", cfg.Base().ClearLamp)
	}
	if !cfg.SupportsTimingWindows() {
		t.Error("iidx:SP should support timing windows")
	}
}

func TestGradeForBoundaryInclusive(t *testing.T) {
	b := MustVariantConfig(core.GameIIDX, core.PlaytypeSP).Base()

	tests := []struct {
		percent float64
		index   int
		grade   core.Grade
	}{
		{0, 0, "F"},
		{22.21, 0, "F"},
		{22.22, 1, "E"},
		{94.43, 7, "AAA"},
		{94.44, 8, "MAX-"},
		{99.99, 8, "MAX-"},
		{100, 9, "MAX"},
	}

	for _, tt := range tests {
		grade, idx, err := b.GradeFor(tt.percent)
		if err != nil {
			t.Errorf("GradeFor(%v) failed: %v", tt.percent, err)
			continue
		}
		if idx != tt.index || grade != tt.grade {
			t.Errorf("GradeFor(%v) = %q/%d, want %q/%d", tt.percent, grade, idx, tt.grade, tt.index)
		}
	}
}

func TestGradeForOutOfRange(t *testing.T) {
	b := MustVariantConfig(core.GameIIDX, core.PlaytypeSP).Base()
	for _, p := range []float64{-0.01, 100.01} {
		if _, _, err := b.GradeFor(p); !errors.Is(err, ErrPercentOutOfRange) {
			t.Errorf("GradeFor(%v) error = %v, want ErrPercentOutOfRange", p, err)
		}
	}

	chuni := MustVariantConfig(core.GameChunithm, core.PlaytypeSingle).Base()
	grade, _, err := chuni.GradeFor(101)
	if err != nil {
		t.Fatalf("GradeFor(101) failed: %v", err)
	}
	if grade != "SSS" {
		t.Errorf("chunithm GradeFor(101) = %q, want SSS", grade)
	}
}

func TestSDVXUntimed(t *testing.T) {
	cfg, err := GetVariantConfig(core.GameSDVX, core.PlaytypeSingle)
	if err != nil {
		t.Fatalf("GetVariantConfig() failed: %v", err)
	}
	if cfg.SupportsTimingWindows() {
		t.Error("sdvx:Single should not support timing windows")
	}
	// Only the untimed shape is possible, and it has no timing field.
	if _, ok := cfg.(*UntimedVariantConfig); !ok {
		t.Errorf("sdvx:Single config is %T, want *UntimedVariantConfig", cfg)
	}
	if _, ok := TimingWindowsOf(cfg); ok {
		t.Error("TimingWindowsOf(sdvx:Single) returned ok")
	}
}

func TestLookupErrors(t *testing.T) {
	tests := []struct {
		name     string
		game     core.Game
		playtype core.Playtype
		want     error
	}{
		{"invalid playtype", core.GameIIDX, core.Playtype7K, ErrInvalidVariant},
		{"staged game", core.GamePopn, core.Playtype9B, ErrConfigurationNotFound},
		{"unknown game", core.Game("nope"), core.PlaytypeSP, ErrConfigurationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := GetVariantConfig(tt.game, tt.playtype)
			if cfg != nil {
				t.Errorf("expected nil config, got %T", cfg)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}

	var ive *InvalidVariantError
	_, err := GetVariantConfig(core.GameIIDX, core.PlaytypeSingle)
	if !errors.As(err, &ive) {
		t.Fatalf("expected *InvalidVariantError, got %T", err)
	}
	if ive.Game != core.GameIIDX || ive.Playtype != core.PlaytypeSingle {
		t.Errorf("InvalidVariantError = %+v", ive)
	}
}

func TestMissingVariantEntry(t *testing.T) {
	// A game that lists a playtype with no variant entry must fail loudly.
	games := []GameConfig{{
		InternalName:    core.GameIIDX,
		Name:            "beatmania IIDX",
		DefaultPlaytype: core.PlaytypeSP,
		ValidPlaytypes:  []core.Playtype{core.PlaytypeSP, core.PlaytypeDP},
	}}
	r, err := New(games, []VariantConfig{iidxVariant(core.IIDXSP, []core.Difficulty{"ANOTHER"})})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	_, err = r.GetVariantConfig(core.GameIIDX, core.PlaytypeDP)
	var nf *ConfigurationNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *ConfigurationNotFoundError, got %v", err)
	}
	if nf.Key != core.IIDXDP {
		t.Errorf("Key = %q, want %q", nf.Key, core.IIDXDP)
	}

	if _, err := r.GetGameConfig(core.GameSDVX); !errors.Is(err, ErrConfigurationNotFound) {
		t.Errorf("GetGameConfig(sdvx) error = %v", err)
	}
}

func TestGetVariantConfigByKey(t *testing.T) {
	cfg, err := GetVariantConfigByKey(core.DDRDP)
	if err != nil {
		t.Fatalf("GetVariantConfigByKey() failed: %v", err)
	}
	if cfg.Base().Key != core.DDRDP {
		t.Errorf("Key = %q", cfg.Base().Key)
	}

	if _, err := GetVariantConfigByKey("iidx"); !errors.Is(err, core.ErrInvalidVariantKey) {
		t.Errorf("expected ErrInvalidVariantKey, got %v", err)
	}

	// Surrounding whitespace is trimmed before the key is split.
	cfg, err = GetVariantConfigByKey(" iidx:SP\n")
	if err != nil {
		t.Fatalf("GetVariantConfigByKey(padded) failed: %v", err)
	}
	if cfg.Base().Key != core.IIDXSP {
		t.Errorf("Key = %q, want %q", cfg.Base().Key, core.IIDXSP)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	a := MustVariantConfig(core.GameIIDX, core.PlaytypeSP)
	a.Base().Grades[0] = "mutated"
	a.Base().GradeColours["A"] = core.ColourNone
	windows, _ := TimingWindowsOf(a)
	windows[0].MSBoundary = 999

	b := MustVariantConfig(core.GameIIDX, core.PlaytypeSP)
	if b.Base().Grades[0] != "F" {
		t.Error("grades were mutated through a returned config")
	}
	if b.Base().GradeColours["A"] != core.ColourGreen {
		t.Error("grade colours were mutated through a returned config")
	}
	if w, _ := TimingWindowsOf(b); w[0].MSBoundary != 16.667 {
		t.Error("timing windows were mutated through a returned config")
	}

	g := MustGameConfig(core.GameIIDX)
	g.ValidPlaytypes[0] = "XX"
	if MustGameConfig(core.GameIIDX).ValidPlaytypes[0] != core.PlaytypeSP {
		t.Error("game config was mutated through a returned value")
	}
}

func TestConcurrentLookups(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, k := range VariantKeys() {
				if _, err := GetVariantConfigByKey(k); err != nil {
					t.Errorf("GetVariantConfigByKey(%s) failed: %v", k, err)
				}
			}
		}()
	}
	wg.Wait()
}

func TestVariantKeysOrder(t *testing.T) {
	keys := VariantKeys()
	if len(keys) != 14 {
		t.Fatalf("len(VariantKeys()) = %d, want 14", len(keys))
	}
	want := []core.VariantKey{core.BMS7K, core.BMS14K}
	if diff := cmp.Diff(want, keys[:2]); diff != "" {
		t.Errorf("first keys mismatch (-want +got):\n%s", diff)
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGameConfig(jubeat) did not panic")
		}
	}()
	MustGameConfig(core.GameJubeat)
}

package registry

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/rhythm-registry/internal/core"
)

func TestExportCarriesTimingFlag(t *testing.T) {
	tests := []struct {
		game        core.Game
		playtype    core.Playtype
		wantTimed   bool
		wantWindows int
	}{
		{core.GameIIDX, core.PlaytypeSP, true, 3},
		{core.GameDDR, core.PlaytypeDP, true, 5},
		{core.GameSDVX, core.PlaytypeSingle, false, 0},
		{core.GameBMS, core.Playtype7K, false, 0},
	}

	for _, tt := range tests {
		cfg := MustVariantConfig(tt.game, tt.playtype)
		key := string(cfg.Base().Key)

		t.Run(key+"/json", func(t *testing.T) {
			data, err := json.Marshal(cfg)
			if err != nil {
				t.Fatalf("json.Marshal() failed: %v", err)
			}
			var out struct {
				Key                   string            `json:"key"`
				SupportsTimingWindows *bool             `json:"supportsTimingWindows"`
				TimingWindows         []json.RawMessage `json:"timingWindows"`
				Grades                []string          `json:"grades"`
			}
			if err := json.Unmarshal(data, &out); err != nil {
				t.Fatalf("json.Unmarshal() failed: %v", err)
			}
			if out.SupportsTimingWindows == nil || *out.SupportsTimingWindows != tt.wantTimed {
				t.Errorf("supportsTimingWindows = %v, want %v", out.SupportsTimingWindows, tt.wantTimed)
			}
			if len(out.TimingWindows) != tt.wantWindows {
				t.Errorf("got %d timing windows, want %d", len(out.TimingWindows), tt.wantWindows)
			}
			if out.Key != key || len(out.Grades) == 0 {
				t.Errorf("shared fields missing: key %q, %d grades", out.Key, len(out.Grades))
			}
		})

		t.Run(key+"/yaml", func(t *testing.T) {
			data, err := yaml.Marshal(cfg)
			if err != nil {
				t.Fatalf("yaml.Marshal() failed: %v", err)
			}
			var out map[string]any
			if err := yaml.Unmarshal(data, &out); err != nil {
				t.Fatalf("yaml.Unmarshal() failed: %v", err)
			}
			if got, ok := out["supportsTimingWindows"].(bool); !ok || got != tt.wantTimed {
				t.Errorf("supportsTimingWindows = %v, want %v", out["supportsTimingWindows"], tt.wantTimed)
			}
			if _, ok := out["timingWindows"]; ok != tt.wantTimed {
				t.Errorf("timingWindows present = %v, want %v", ok, tt.wantTimed)
			}
			if out["key"] != key {
				t.Errorf("key = %v, want %s", out["key"], key)
			}
		})
	}
}

package core

import (
	"errors"
	"testing"
)

func TestParseVariantKey(t *testing.T) {
	tests := []struct {
		in       string
		want     VariantKey
		game     Game
		playtype Playtype
		wantErr  bool
	}{
		{in: "iidx:SP", want: IIDXSP, game: GameIIDX, playtype: PlaytypeSP},
		{in: " gitadora:Dora ", want: GitadoraDora, game: GameGitadora, playtype: PlaytypeDora},
		{in: "bms:14K", want: BMS14K, game: GameBMS, playtype: Playtype14K},
		{in: "iidx", wantErr: true},
		{in: ":SP", wantErr: true},
		{in: "iidx:", wantErr: true},
		{in: "iidx:SP:DP", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVariantKey(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidVariantKey) {
					t.Errorf("ParseVariantKey(%q) error = %v, want ErrInvalidVariantKey", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVariantKey(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseVariantKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if got.Game() != tt.game || got.Playtype() != tt.playtype {
				t.Errorf("split = %q/%q, want %q/%q", got.Game(), got.Playtype(), tt.game, tt.playtype)
			}
		})
	}
}

func TestNewVariantKey(t *testing.T) {
	if got := NewVariantKey(GameUSC, PlaytypeController); got != USCController {
		t.Errorf("NewVariantKey() = %q, want %q", got, USCController)
	}
	if got := NewVariantKey(GamePopn, Playtype9B).String(); got != "popn:9B" {
		t.Errorf("String() = %q, want popn:9B", got)
	}
}

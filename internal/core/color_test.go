package core

import "testing"

func TestColourRGB(t *testing.T) {
	tests := []struct {
		colour  Colour
		hex     string
		wantErr bool
	}{
		{ColourGold, "#ffd700", false},
		{ColourPaleGreen, "#8eae4f", false},
		{Colour("rgba(0,0,0,1)"), "#000000", false},
		{ColourNone, "", true},
		{Colour("#ffffff"), "", true},
		{Colour("rgba(300, 0, 0, 1)"), "", true},
		{Colour("rgba(1, 2, 3)"), "", true},
	}

	for _, tt := range tests {
		_, _, _, err := tt.colour.RGB()
		if (err != nil) != tt.wantErr {
			t.Errorf("%q.RGB() error = %v, wantErr %v", tt.colour, err, tt.wantErr)
		}
		if got := tt.colour.Hex(); got != tt.hex {
			t.Errorf("%q.Hex() = %q, want %q", tt.colour, got, tt.hex)
		}
	}
}

func TestPalette(t *testing.T) {
	p := Palette()
	if len(p) != 18 {
		t.Fatalf("len(Palette()) = %d, want 18", len(p))
	}
	for i := 1; i < len(p); i++ {
		if p[i-1].Name() >= p[i].Name() {
			t.Errorf("palette not sorted at %d: %s >= %s", i, p[i-1].Name(), p[i].Name())
		}
	}
	for _, c := range p {
		if !c.InPalette() || !c.Valid() {
			t.Errorf("%s should be a valid palette colour", c.Name())
		}
		if c.Hex() == "" {
			t.Errorf("%s does not parse", c.Name())
		}
	}

	if ColourNone.Name() != "none" || ColourNone.Valid() {
		t.Error("ColourNone misreported")
	}
	if Colour("rgba(1, 2, 3, 1)").Name() != "custom" {
		t.Error("unnamed colour should be custom")
	}
}

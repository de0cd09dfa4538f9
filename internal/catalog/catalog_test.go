package catalog

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/rhythm-registry/internal/core"
	"github.com/vovakirdan/rhythm-registry/internal/registry"
)

func sortedKeys(keys []core.VariantKey) []core.VariantKey {
	out := append([]core.VariantKey(nil), keys...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestAllVariantKeysMatchRegistry(t *testing.T) {
	want := sortedKeys(registry.VariantKeys())
	got := sortedKeys(AllVariantKeys)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("catalog and registry disagree (-registry +catalog):\n%s", diff)
	}
}

func TestKeyCatalogAgainstRegistry(t *testing.T) {
	want := sortedKeys([]core.VariantKey{
		"iidx:SP", "iidx:DP", "bms:7K", "bms:14K", "chunithm:Single",
		"ddr:SP", "ddr:DP", "gitadora:Gita", "gitadora:Dora",
		"maimai:Single", "museca:Single", "sdvx:Single",
		"usc:Keyboard", "usc:Controller",
		"wacca:Single", "pms:Controller", "pms:Keyboard", "jubeat:Single",
	})
	catalog := sortedKeys(CatalogVariantKeys())
	if diff := cmp.Diff(want, catalog); diff != "" {
		t.Errorf("key catalog mismatch (-want +got):\n%s", diff)
	}

	reg := registry.Default()
	inCatalog := make(map[core.VariantKey]bool, len(catalog))
	for _, k := range catalog {
		inCatalog[k] = true
		if !reg.HasVariant(k) && !IsStaged(k) {
			t.Errorf("%s is catalogued but neither registered nor staged", k)
		}
	}
	for _, k := range reg.VariantKeys() {
		if !inCatalog[k] {
			t.Errorf("registered key %s is missing from the key catalog", k)
		}
	}

	// popn:9B is staged from the lookup tables alone.
	if !IsStaged(core.PopnNineB) || inCatalog[core.PopnNineB] {
		t.Errorf("popn:9B: staged %v, catalogued %v; want staged only", IsStaged(core.PopnNineB), inCatalog[core.PopnNineB])
	}
	if got := len(DeclaredVariantKeys()); got != len(catalog)+1 {
		t.Errorf("DeclaredVariantKeys() has %d keys, want %d", got, len(catalog)+1)
	}
}

func TestStagedKeysHaveNoEntry(t *testing.T) {
	reg := registry.Default()
	for _, k := range StagedVariantKeys {
		t.Run(string(k), func(t *testing.T) {
			if reg.HasVariant(k) {
				t.Fatalf("staged key %s has a registry entry", k)
			}
			_, err := reg.GetVariantConfigByKey(k)
			if !errors.Is(err, registry.ErrConfigurationNotFound) && !errors.Is(err, registry.ErrInvalidVariant) {
				t.Errorf("lookup error = %v, want not-found or invalid-variant", err)
			}
		})
	}
}

func TestPrettyVersionsComplete(t *testing.T) {
	for _, k := range DeclaredVariantKeys() {
		if _, ok := PrettyVersions[k]; !ok {
			t.Errorf("%s has no PrettyVersions entry", k)
		}
	}
	if len(PrettyVersions) != len(DeclaredVariantKeys()) {
		t.Errorf("PrettyVersions has %d entries, want %d", len(PrettyVersions), len(DeclaredVariantKeys()))
	}
}

func TestRegistryVersionsHaveNames(t *testing.T) {
	for _, k := range AllVariantKeys {
		cfg, err := registry.GetVariantConfigByKey(k)
		if err != nil {
			t.Fatalf("GetVariantConfigByKey(%s) failed: %v", k, err)
		}
		for _, v := range cfg.Base().Versions {
			if _, ok := PrettyVersions[k][v]; !ok {
				t.Errorf("%s: version %q has no display name", k, v)
			}
		}
	}
}

func TestPrettyVersion(t *testing.T) {
	tests := []struct {
		key  core.VariantKey
		code string
		want string
	}{
		{core.IIDXSP, "27", "HEROIC VERSE"},
		{core.SDVXSingle, "vivid", "VIVID WAVE"},
		{core.BMS7K, "anything", "anything"},
		{core.VariantKey("nope:X"), "1", "1"},
	}

	for _, tt := range tests {
		if got := PrettyVersion(tt.key, tt.code); got != tt.want {
			t.Errorf("PrettyVersion(%s, %q) = %q, want %q", tt.key, tt.code, got, tt.want)
		}
	}
}

func TestSupportedGamesCoverDeclaredKeys(t *testing.T) {
	games := make(map[core.Game]bool, len(AllSupportedGames))
	for _, g := range AllSupportedGames {
		games[g] = true
	}
	for _, k := range DeclaredVariantKeys() {
		if !games[k.Game()] {
			t.Errorf("%s: game %q missing from AllSupportedGames", k, k.Game())
		}
	}
	for _, g := range registry.Games() {
		if !games[g.InternalName] {
			t.Errorf("registered game %q missing from AllSupportedGames", g.InternalName)
		}
	}
}

func TestImportTypes(t *testing.T) {
	all := AllImportTypes()
	if len(all) != 20 {
		t.Fatalf("len(AllImportTypes()) = %d, want 20", len(all))
	}

	seen := make(map[ImportType]bool)
	for _, it := range all {
		if seen[it] {
			t.Errorf("duplicate import type %q", it)
		}
		seen[it] = true
	}

	for _, ch := range []Channel{ChannelFile, ChannelIR, ChannelAPI} {
		for _, it := range ImportTypesFor(ch) {
			if it.Channel() != ch {
				t.Errorf("%q.Channel() = %q, want %q", it, it.Channel(), ch)
			}
		}
	}

	if _, err := ParseImportType("ir/beatoraja"); err != nil {
		t.Errorf("ParseImportType(ir/beatoraja) failed: %v", err)
	}
	if _, err := ParseImportType("ir/nope"); !errors.Is(err, ErrUnknownImportType) {
		t.Errorf("ParseImportType(ir/nope) error = %v", err)
	}
}

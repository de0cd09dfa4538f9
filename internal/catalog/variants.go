package catalog

import "github.com/vovakirdan/rhythm-registry/internal/core"

// AllVariantKeys lists every variant with a live registry entry.
var AllVariantKeys = []core.VariantKey{
	core.IIDXSP,
	core.IIDXDP,
	core.BMS7K,
	core.BMS14K,
	core.ChunithmSingle,
	core.DDRSP,
	core.DDRDP,
	core.GitadoraGita,
	core.GitadoraDora,
	core.MaimaiSingle,
	core.MusecaSingle,
	core.SDVXSingle,
	core.USCKeyboard,
	core.USCController,
}

// catalogStagedKeys are listed in the platform's key catalog alongside the
// live keys, without a registry entry.
var catalogStagedKeys = []core.VariantKey{
	core.JubeatSingle,
	core.WaccaSingle,
	core.PMSController,
	core.PMSKeyboard,
}

// unionOnlyStagedKeys are absent from the key catalog. They only appear in
// the per-variant lookup tables (versions, vocabularies).
var unionOnlyStagedKeys = []core.VariantKey{
	core.PopnNineB,
}

// StagedVariantKeys are recognised by the platform but have no registry
// entry yet: the catalog's staged keys, then the lookup-table-only ones.
// Looking one up fails with a not-found error.
var StagedVariantKeys = append(append([]core.VariantKey(nil), catalogStagedKeys...), unionOnlyStagedKeys...)

// AllSupportedGames lists live and staged games.
var AllSupportedGames = []core.Game{
	core.GameIIDX,
	core.GameMuseca,
	core.GameMaimai,
	core.GameJubeat,
	core.GamePopn,
	core.GameSDVX,
	core.GameDDR,
	core.GameBMS,
	core.GameChunithm,
	core.GameGitadora,
	core.GameUSC,
	core.GameWacca,
	core.GamePMS,
}

// IsStaged reports whether k is declared but unreleased.
func IsStaged(k core.VariantKey) bool {
	for _, s := range StagedVariantKeys {
		if s == k {
			return true
		}
	}
	return false
}

// CatalogVariantKeys returns the keys of the platform's key catalog: every
// live key plus the staged keys listed with them. Keys known only from the
// lookup tables are left out.
func CatalogVariantKeys() []core.VariantKey {
	out := make([]core.VariantKey, 0, len(AllVariantKeys)+len(catalogStagedKeys))
	out = append(out, AllVariantKeys...)
	return append(out, catalogStagedKeys...)
}

// DeclaredVariantKeys returns live keys followed by staged keys.
func DeclaredVariantKeys() []core.VariantKey {
	out := make([]core.VariantKey, 0, len(AllVariantKeys)+len(StagedVariantKeys))
	out = append(out, AllVariantKeys...)
	return append(out, StagedVariantKeys...)
}

package catalog

import "github.com/vovakirdan/rhythm-registry/internal/core"

var iidxVersions = map[string]string{
	"20":        "tricoro",
	"21":        "SPADA",
	"22":        "PENDUAL",
	"23":        "copula",
	"24":        "SINOBUZ",
	"25":        "CANNON BALLERS",
	"26":        "ROOTAGE",
	"27":        "HEROIC VERSE",
	"28":        "BISTROVER",
	"29":        "CastHour",
	"3-cs":      "3rd Style CS",
	"4-cs":      "4th Style CS",
	"5-cs":      "5th Style CS",
	"6-cs":      "6th Style CS",
	"7-cs":      "7th Style CS",
	"8-cs":      "8th Style CS",
	"9-cs":      "9th Style CS",
	"10-cs":     "10th Style CS",
	"11-cs":     "IIDX RED CS",
	"12-cs":     "HAPPY SKY CS",
	"13-cs":     "DISTORTED CS",
	"14-cs":     "GOLD CS",
	"15-cs":     "DJ TROOPERS CS",
	"16-cs":     "EMPRESS CS",
	"26-omni":   "ROOTAGE Omnimix",
	"27-omni":   "HEROIC VERSE Omnimix",
	"28-omni":   "BISTROVER Omnimix",
	"27-2dxtra": "HEROIC VERSE 2dxtra",
	"28-2dxtra": "BISTROVER 2dxtra",
	"bmus":      "BEATMANIA US",
	"inf":       "INFINITAS",
}

var ddrVersions = map[string]string{"a20": "A20"}

var gitadoraVersions = map[string]string{"nextage": "NEX+AGE"}

// PrettyVersions maps each declared variant's version codes to display
// names. Variants without distinct versions map to an empty table.
var PrettyVersions = map[core.VariantKey]map[string]string{
	core.IIDXSP:         iidxVersions,
	core.IIDXDP:         iidxVersions,
	core.PopnNineB:      {"peace": "peace"},
	core.BMS7K:          {},
	core.BMS14K:         {},
	core.ChunithmSingle: {"paradiselost": "Paradise Lost"},
	core.DDRSP:          ddrVersions,
	core.DDRDP:          ddrVersions,
	core.GitadoraGita:   gitadoraVersions,
	core.GitadoraDora:   gitadoraVersions,
	core.MaimaiSingle:   {"finale": "FiNALE"},
	core.MusecaSingle: {
		"1.5":   "1 + 1/2",
		"1.5-b": "1 + 1/2 Rev. B",
	},
	core.SDVXSingle: {
		"booth":   "BOOTH",
		"inf":     "Infinite Infection",
		"gw":      "GRAVITY WARS",
		"heaven":  "HEAVENLY HAVEN",
		"vivid":   "VIVID WAVE",
		"konaste": "Konaste",
	},
	core.USCKeyboard:   {},
	core.USCController: {},
	core.WaccaSingle:   {"reverse": "REVERSE"},
	core.JubeatSingle:  {"festo": "festo"},
	core.PMSController: {},
	core.PMSKeyboard:   {},
}

// PrettyVersion returns the display name of a version code, or the code
// itself when the variant has no name for it.
func PrettyVersion(k core.VariantKey, code string) string {
	if name, ok := PrettyVersions[k][code]; ok {
		return name
	}
	return code
}

package registry

import "github.com/vovakirdan/rhythm-registry/internal/core"

func builtinGames() []GameConfig {
	return []GameConfig{
		{
			InternalName:    core.GameIIDX,
			Name:            "beatmania IIDX",
			DefaultPlaytype: core.PlaytypeSP,
			ValidPlaytypes:  []core.Playtype{core.PlaytypeSP, core.PlaytypeDP},
		},
		{
			InternalName:    core.GameMuseca,
			Name:            "MÚSECA",
			DefaultPlaytype: core.PlaytypeSingle,
			ValidPlaytypes:  []core.Playtype{core.PlaytypeSingle},
		},
		{
			InternalName:    core.GameChunithm,
			Name:            "CHUNITHM",
			DefaultPlaytype: core.PlaytypeSingle,
			ValidPlaytypes:  []core.Playtype{core.PlaytypeSingle},
		},
		{
			InternalName:    core.GameDDR,
			Name:            "DDR",
			DefaultPlaytype: core.PlaytypeSP,
			ValidPlaytypes:  []core.Playtype{core.PlaytypeSP, core.PlaytypeDP},
		},
		{
			InternalName:    core.GameBMS,
			Name:            "BMS",
			DefaultPlaytype: core.Playtype7K,
			ValidPlaytypes:  []core.Playtype{core.Playtype7K, core.Playtype14K},
		},
		{
			InternalName:    core.GameGitadora,
			Name:            "GITADORA",
			DefaultPlaytype: core.PlaytypeDora,
			ValidPlaytypes:  []core.Playtype{core.PlaytypeGita, core.PlaytypeDora},
		},
		{
			InternalName:    core.GameMaimai,
			Name:            "maimai",
			DefaultPlaytype: core.PlaytypeSingle,
			ValidPlaytypes:  []core.Playtype{core.PlaytypeSingle},
		},
		{
			InternalName:    core.GameSDVX,
			Name:            "SOUND VOLTEX",
			DefaultPlaytype: core.PlaytypeSingle,
			ValidPlaytypes:  []core.Playtype{core.PlaytypeSingle},
		},
		{
			InternalName:    core.GameUSC,
			Name:            "unnamed_sdvx_clone",
			DefaultPlaytype: core.PlaytypeKeyboard,
			ValidPlaytypes:  []core.Playtype{core.PlaytypeKeyboard, core.PlaytypeController},
		},
	}
}

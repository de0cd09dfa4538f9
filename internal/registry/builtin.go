package registry

import (
	c "github.com/vovakirdan/rhythm-registry/internal/core"
)

const defaultLevelTable = "Levels (N-1)"

func builtinVariants() []VariantConfig {
	return []VariantConfig{
		iidxVariant(c.IIDXSP, []c.Difficulty{"BEGINNER", "NORMAL", "HYPER", "ANOTHER", "LEGGENDARIA"}),
		iidxVariant(c.IIDXDP, []c.Difficulty{"NORMAL", "HYPER", "ANOTHER", "LEGGENDARIA"}),
		chunithmVariant(),
		sdvxVariant(),
		uscVariant(c.USCKeyboard),
		uscVariant(c.USCController),
		musecaVariant(),
		bmsVariant(c.BMS7K),
		bmsVariant(c.BMS14K),
		ddrVariant(c.DDRSP, []c.Difficulty{"BEGINNER", "BASIC", "DIFFICULT", "EXPERT", "CHALLENGE"}),
		ddrVariant(c.DDRDP, []c.Difficulty{"BASIC", "DIFFICULT", "EXPERT", "CHALLENGE"}),
		maimaiVariant(),
		gitadoraVariant(c.GitadoraGita),
		gitadoraVariant(c.GitadoraDora),
	}
}

// beatmania-style vocab shared by iidx and bms.

func bmGrades() ([]c.Grade, map[c.Grade]c.Colour, []float64) {
	return []c.Grade{"F", "E", "D", "C", "B", "A", "AA", "AAA", "MAX-", "MAX"},
		map[c.Grade]c.Colour{
			"F":    c.ColourGray,
			"E":    c.ColourRed,
			"D":    c.ColourMaroon,
			"C":    c.ColourPurple,
			"B":    c.ColourPaleBlue,
			"A":    c.ColourGreen,
			"AA":   c.ColourBlue,
			"AAA":  c.ColourGold,
			"MAX-": c.ColourTeal,
			"MAX":  c.ColourWhite,
		},
		[]float64{0, 22.22, 33.33, 44.44, 55.55, 66.66, 77.77, 88.88, 94.44, 100.0}
}

func bmLamps() ([]c.Lamp, map[c.Lamp]c.Colour) {
	return []c.Lamp{"NO PLAY", "FAILED", "ASSIST CLEAR", "EASY CLEAR", "CLEAR", "HARD CLEAR", "EX HARD CLEAR", "FULL COMBO"},
		map[c.Lamp]c.Colour{
			"NO PLAY":       c.ColourGray,
			"FAILED":        c.ColourRed,
			"ASSIST CLEAR":  c.ColourPurple,
			"EASY CLEAR":    c.ColourGreen,
			"CLEAR":         c.ColourBlue,
			"HARD CLEAR":    c.ColourOrange,
			"EX HARD CLEAR": c.ColourGold,
			"FULL COMBO":    c.ColourTeal,
		}
}

func bmJudgements() []c.Judgement {
	return []c.Judgement{"pgreat", "great", "good", "bad", "poor"}
}

func iidxVariant(key c.VariantKey, diffs []c.Difficulty) *TimedVariantConfig {
	grades, gradeColours, boundaries := bmGrades()
	lamps, lampColours := bmLamps()
	all := map[c.Difficulty]c.Colour{
		"BEGINNER":    c.ColourPaleGreen,
		"NORMAL":      c.ColourBlue,
		"HYPER":       c.ColourOrange,
		"ANOTHER":     c.ColourRed,
		"LEGGENDARIA": c.ColourPurple,
	}
	short := map[c.Difficulty]string{
		"BEGINNER":    "B",
		"NORMAL":      "N",
		"HYPER":       "H",
		"ANOTHER":     "A",
		"LEGGENDARIA": "L",
	}
	ratings := []c.RatingAlg{c.RatingBPI, c.RatingKtRating, c.RatingKtLampRating}

	return &TimedVariantConfig{
		VariantBase: VariantBase{
			Key:        key,
			PercentMax: 100,

			DefaultScoreRatingAlg:   c.RatingKtRating,
			DefaultSessionRatingAlg: c.RatingKtRating,
			DefaultProfileRatingAlg: c.RatingKtRating,
			ScoreRatingAlgs:         ratings,
			SessionRatingAlgs:       ratings,
			ProfileRatingAlgs:       ratings,

			Difficulties:      diffs,
			DefaultDifficulty: "ANOTHER",
			DifficultyColours: pick(all, diffs),
			ShortDifficulties: pick(short, diffs),

			Grades:          grades,
			GradeColours:    gradeColours,
			ClearGrade:      "A",
			GradeBoundaries: boundaries,

			Lamps:       lamps,
			LampColours: lampColours,
			ClearLamp:   "CLEAR",

			Judgements:   bmJudgements(),
			DefaultTable: defaultLevelTable,
			ScoreBucket:  c.ScoreBucketLamp,
			Versions: []string{
				"3-cs", "4-cs", "5-cs", "6-cs", "7-cs", "8-cs", "9-cs", "10-cs",
				"11-cs", "12-cs", "13-cs", "14-cs", "15-cs", "16-cs",
				"20", "21", "22", "23", "24", "25", "26", "27", "28", "29",
				"26-omni", "27-omni", "28-omni", "27-2dxtra", "28-2dxtra",
				"bmus", "inf",
			},
		},
		TimingWindows: []TimingWindow{
			{Name: "PGREAT", MSBoundary: 16.667, PointValue: 2},
			{Name: "GREAT", MSBoundary: 33.333, PointValue: 1},
			{Name: "GOOD", MSBoundary: 116.667, PointValue: 0},
		},
	}
}

func bmsVariant(key c.VariantKey) *UntimedVariantConfig {
	grades, gradeColours, boundaries := bmGrades()
	lamps, lampColours := bmLamps()
	ratings := []c.RatingAlg{c.RatingSieglinde, c.RatingKtLampRating}

	return &UntimedVariantConfig{
		VariantBase: VariantBase{
			Key:        key,
			PercentMax: 100,

			DefaultScoreRatingAlg:   c.RatingKtLampRating,
			DefaultSessionRatingAlg: c.RatingKtLampRating,
			DefaultProfileRatingAlg: c.RatingKtLampRating,
			ScoreRatingAlgs:         ratings,
			SessionRatingAlgs:       ratings,
			ProfileRatingAlgs:       ratings,

			Difficulties:      []c.Difficulty{"CHART"},
			DefaultDifficulty: "CHART",
			DifficultyColours: map[c.Difficulty]c.Colour{"CHART": c.ColourNone},

			Grades:          grades,
			GradeColours:    gradeColours,
			ClearGrade:      "A",
			GradeBoundaries: boundaries,

			Lamps:       lamps,
			LampColours: lampColours,
			ClearLamp:   "CLEAR",

			Judgements:   bmJudgements(),
			DefaultTable: "Insane",
			ScoreBucket:  c.ScoreBucketLamp,
		},
	}
}

func chunithmVariant() *UntimedVariantConfig {
	return &UntimedVariantConfig{
		VariantBase: VariantBase{
			Key:        c.ChunithmSingle,
			PercentMax: 101,

			DefaultScoreRatingAlg:   c.RatingRating,
			DefaultSessionRatingAlg: c.RatingRating,
			DefaultProfileRatingAlg: c.RatingNaiveRating,
			ScoreRatingAlgs:         []c.RatingAlg{c.RatingRating},
			SessionRatingAlgs:       []c.RatingAlg{c.RatingRating, c.RatingNaiveRating},
			ProfileRatingAlgs:       []c.RatingAlg{c.RatingNaiveRating},

			Difficulties:      []c.Difficulty{"BASIC", "ADVANCED", "EXPERT", "MASTER", "WORLD'S END"},
			DefaultDifficulty: "MASTER",
			DifficultyColours: map[c.Difficulty]c.Colour{
				"BASIC":       c.ColourBlue,
				"ADVANCED":    c.ColourOrange,
				"EXPERT":      c.ColourRed,
				"MASTER":      c.ColourPurple,
				"WORLD'S END": c.ColourVibrantYellow,
			},
			ShortDifficulties: map[c.Difficulty]string{
				"BASIC":       "BAS",
				"ADVANCED":    "ADV",
				"EXPERT":      "EXP",
				"MASTER":      "MAS",
				"WORLD'S END": "WE",
			},

			Grades: []c.Grade{"D", "C", "B", "BB", "BBB", "A", "AA", "AAA", "S", "SS", "SSS"},
			GradeColours: map[c.Grade]c.Colour{
				"D":   c.ColourRed,
				"C":   c.ColourPurple,
				"B":   c.ColourPaleBlue,
				"BB":  c.ColourBlue,
				"BBB": c.ColourVibrantBlue,
				"A":   c.ColourPaleGreen,
				"AA":  c.ColourGreen,
				"AAA": c.ColourVibrantGreen,
				"S":   c.ColourVibrantOrange,
				"SS":  c.ColourVibrantYellow,
				"SSS": c.ColourTeal,
			},
			ClearGrade:      "A",
			GradeBoundaries: []float64{0, 50, 60, 70, 80, 90, 92.5, 95, 97.5, 100, 100.75},

			Lamps: []c.Lamp{"FAILED", "CLEAR", "FULL COMBO", "ALL JUSTICE", "ALL JUSTICE CRITICAL"},
			LampColours: map[c.Lamp]c.Colour{
				"FAILED":               c.ColourRed,
				"CLEAR":                c.ColourPaleGreen,
				"FULL COMBO":           c.ColourPaleBlue,
				"ALL JUSTICE":          c.ColourGold,
				"ALL JUSTICE CRITICAL": c.ColourWhite,
			},
			ClearLamp: "CLEAR",

			Judgements:   []c.Judgement{"jcrit", "justice", "attack", "miss"},
			DefaultTable: defaultLevelTable,
			ScoreBucket:  c.ScoreBucketGrade,
			Versions:     []string{"paradiselost"},
		},
	}
}

// sound-voltex-style vocab shared by sdvx and usc.

func svGrades() ([]c.Grade, map[c.Grade]c.Colour, []float64) {
	return []c.Grade{"D", "C", "B", "A", "A+", "AA", "AA+", "AAA", "AAA+", "S"},
		map[c.Grade]c.Colour{
			"D":    c.ColourGray,
			"C":    c.ColourRed,
			"B":    c.ColourMaroon,
			"A":    c.ColourPaleBlue,
			"A+":   c.ColourBlue,
			"AA":   c.ColourPaleGreen,
			"AA+":  c.ColourGreen,
			"AAA":  c.ColourGold,
			"AAA+": c.ColourVibrantYellow,
			"S":    c.ColourTeal,
		},
		[]float64{0, 70, 80, 87, 90, 93, 95, 97, 98, 99}
}

func svLamps() ([]c.Lamp, map[c.Lamp]c.Colour) {
	return []c.Lamp{"FAILED", "CLEAR", "EXCESSIVE CLEAR", "ULTIMATE CHAIN", "PERFECT ULTIMATE CHAIN"},
		map[c.Lamp]c.Colour{
			"FAILED":                 c.ColourRed,
			"CLEAR":                  c.ColourGreen,
			"EXCESSIVE CLEAR":        c.ColourOrange,
			"ULTIMATE CHAIN":         c.ColourTeal,
			"PERFECT ULTIMATE CHAIN": c.ColourGold,
		}
}

func svBase(key c.VariantKey) VariantBase {
	grades, gradeColours, boundaries := svGrades()
	lamps, lampColours := svLamps()
	return VariantBase{
		Key:        key,
		PercentMax: 100,

		DefaultScoreRatingAlg:   c.RatingVF6,
		DefaultSessionRatingAlg: c.RatingProfileVF6,
		DefaultProfileRatingAlg: c.RatingVF6,
		ScoreRatingAlgs:         []c.RatingAlg{c.RatingVF6},
		SessionRatingAlgs:       []c.RatingAlg{c.RatingVF6, c.RatingProfileVF6},
		ProfileRatingAlgs:       []c.RatingAlg{c.RatingVF6},

		DefaultDifficulty: "EXH",

		Grades:          grades,
		GradeColours:    gradeColours,
		ClearGrade:      "A",
		GradeBoundaries: boundaries,

		Lamps:       lamps,
		LampColours: lampColours,
		ClearLamp:   "CLEAR",

		Judgements:   []c.Judgement{"critical", "near", "miss"},
		DefaultTable: defaultLevelTable,
		ScoreBucket:  c.ScoreBucketGrade,
	}
}

func sdvxVariant() *UntimedVariantConfig {
	b := svBase(c.SDVXSingle)
	b.Difficulties = []c.Difficulty{"NOV", "ADV", "EXH", "INF", "GRV", "HVN", "VVD", "MXM"}
	b.DifficultyColours = map[c.Difficulty]c.Colour{
		"NOV": c.ColourPurple,
		"ADV": c.ColourVibrantYellow,
		"EXH": c.ColourRed,
		"INF": c.ColourNone,
		"GRV": c.ColourOrange,
		"HVN": c.ColourTeal,
		"VVD": c.ColourNone,
		"MXM": c.ColourWhite,
	}
	b.Versions = []string{"booth", "inf", "gw", "heaven", "vivid", "konaste"}
	return &UntimedVariantConfig{VariantBase: b}
}

func uscVariant(key c.VariantKey) *UntimedVariantConfig {
	b := svBase(key)
	b.Difficulties = []c.Difficulty{"NOV", "ADV", "EXH", "INF"}
	b.DifficultyColours = map[c.Difficulty]c.Colour{
		"NOV": c.ColourPurple,
		"ADV": c.ColourVibrantYellow,
		"EXH": c.ColourRed,
		"INF": c.ColourNone,
	}
	return &UntimedVariantConfig{VariantBase: b}
}

func musecaVariant() *TimedVariantConfig {
	return &TimedVariantConfig{
		VariantBase: VariantBase{
			Key:        c.MusecaSingle,
			PercentMax: 100,

			DefaultScoreRatingAlg:   c.RatingKtRating,
			DefaultSessionRatingAlg: c.RatingKtRating,
			DefaultProfileRatingAlg: c.RatingKtRating,
			ScoreRatingAlgs:         []c.RatingAlg{c.RatingKtRating},
			SessionRatingAlgs:       []c.RatingAlg{c.RatingKtRating},
			ProfileRatingAlgs:       []c.RatingAlg{c.RatingKtRating},

			Difficulties:      []c.Difficulty{"Green", "Yellow", "Red"},
			DefaultDifficulty: "Red",
			DifficultyColours: map[c.Difficulty]c.Colour{
				"Green":  c.ColourGreen,
				"Yellow": c.ColourVibrantYellow,
				"Red":    c.ColourRed,
			},
			ShortDifficulties: map[c.Difficulty]string{
				"Green":  "G",
				"Yellow": "Y",
				"Red":    "R",
			},

			Grades: []c.Grade{"没", "拙", "凡", "佳", "良", "優", "秀", "傑", "傑G"},
			GradeColours: map[c.Grade]c.Colour{
				"没":  c.ColourGray,
				"拙":  c.ColourMaroon,
				"凡":  c.ColourRed,
				"佳":  c.ColourPaleGreen,
				"良":  c.ColourPaleBlue,
				"優":  c.ColourGreen,
				"秀":  c.ColourBlue,
				"傑":  c.ColourTeal,
				"傑G": c.ColourGold,
			},
			ClearGrade:      "良",
			GradeBoundaries: []float64{0, 60, 70, 80, 85, 90, 95, 97.5, 100},

			Lamps: []c.Lamp{"FAILED", "CLEAR", "CONNECT ALL", "PERFECT CONNECT ALL"},
			LampColours: map[c.Lamp]c.Colour{
				"FAILED":              c.ColourRed,
				"CLEAR":               c.ColourGreen,
				"CONNECT ALL":         c.ColourTeal,
				"PERFECT CONNECT ALL": c.ColourGold,
			},
			ClearLamp: "CLEAR",

			Judgements:   []c.Judgement{"critical", "near", "miss"},
			DefaultTable: defaultLevelTable,
			ScoreBucket:  c.ScoreBucketGrade,
			Versions:     []string{"1.5", "1.5-b"},
		},
		TimingWindows: []TimingWindow{
			{Name: "CRITICAL", MSBoundary: 33.333, PointValue: 2},
			{Name: "NEAR", MSBoundary: 66.667, PointValue: 1},
		},
	}
}

func ddrVariant(key c.VariantKey, diffs []c.Difficulty) *TimedVariantConfig {
	all := map[c.Difficulty]c.Colour{
		"BEGINNER":  c.ColourPaleBlue,
		"BASIC":     c.ColourOrange,
		"DIFFICULT": c.ColourRed,
		"EXPERT":    c.ColourGreen,
		"CHALLENGE": c.ColourPurple,
	}
	short := map[c.Difficulty]string{
		"BEGINNER":  "b",
		"BASIC":     "B",
		"DIFFICULT": "D",
		"EXPERT":    "E",
		"CHALLENGE": "C",
	}
	ratings := []c.RatingAlg{c.RatingMFCP, c.RatingKtRating}

	return &TimedVariantConfig{
		VariantBase: VariantBase{
			Key:        key,
			PercentMax: 100,

			DefaultScoreRatingAlg:   c.RatingKtRating,
			DefaultSessionRatingAlg: c.RatingKtRating,
			DefaultProfileRatingAlg: c.RatingKtRating,
			ScoreRatingAlgs:         ratings,
			SessionRatingAlgs:       ratings,
			ProfileRatingAlgs:       ratings,

			Difficulties:      diffs,
			DefaultDifficulty: "EXPERT",
			DifficultyColours: pick(all, diffs),
			ShortDifficulties: pick(short, diffs),

			Grades: []c.Grade{"D", "D+", "C-", "C", "C+", "B-", "B", "B+", "A-", "A", "A+", "AA-", "AA", "AA+", "AAA"},
			GradeColours: map[c.Grade]c.Colour{
				"D":   c.ColourGray,
				"D+":  c.ColourMaroon,
				"C-":  c.ColourRed,
				"C":   c.ColourPurple,
				"C+":  c.ColourVibrantPurple,
				"B-":  c.ColourPaleBlue,
				"B":   c.ColourBlue,
				"B+":  c.ColourVibrantBlue,
				"A-":  c.ColourPaleGreen,
				"A":   c.ColourGreen,
				"A+":  c.ColourVibrantGreen,
				"AA-": c.ColourPaleOrange,
				"AA":  c.ColourOrange,
				"AA+": c.ColourVibrantOrange,
				"AAA": c.ColourGold,
			},
			ClearGrade:      "A",
			GradeBoundaries: []float64{0, 55, 59, 60, 65, 69, 70, 75, 79, 80, 85, 89, 90, 95, 99},

			Lamps: []c.Lamp{"FAILED", "CLEAR", "LIFE4", "FULL COMBO", "GREAT FULL COMBO", "PERFECT FULL COMBO", "MARVELOUS FULL COMBO"},
			LampColours: map[c.Lamp]c.Colour{
				"FAILED":               c.ColourRed,
				"CLEAR":                c.ColourPaleGreen,
				"LIFE4":                c.ColourOrange,
				"FULL COMBO":           c.ColourPaleBlue,
				"GREAT FULL COMBO":     c.ColourGreen,
				"PERFECT FULL COMBO":   c.ColourGold,
				"MARVELOUS FULL COMBO": c.ColourTeal,
			},
			ClearLamp: "CLEAR",

			Judgements:   []c.Judgement{"marvelous", "perfect", "great", "good", "boo", "miss", "ok", "ng"},
			DefaultTable: defaultLevelTable,
			ScoreBucket:  c.ScoreBucketLamp,
			Versions:     []string{"a20"},
		},
		TimingWindows: []TimingWindow{
			{Name: "MARVELOUS", MSBoundary: 15, PointValue: 3},
			{Name: "PERFECT", MSBoundary: 30, PointValue: 2},
			{Name: "GREAT", MSBoundary: 59, PointValue: 1},
			{Name: "GOOD", MSBoundary: 89, PointValue: 0},
			{Name: "BAD", MSBoundary: 119, PointValue: 0},
		},
	}
}

func maimaiVariant() *UntimedVariantConfig {
	return &UntimedVariantConfig{
		VariantBase: VariantBase{
			Key: c.MaimaiSingle,
			// The top grade really depends on the chart's own maximum; 120
			// is a ceiling no chart exceeds.
			PercentMax: 120,

			DefaultScoreRatingAlg:   c.RatingKtRating,
			DefaultSessionRatingAlg: c.RatingKtRating,
			DefaultProfileRatingAlg: c.RatingKtRating,
			ScoreRatingAlgs:         []c.RatingAlg{c.RatingKtRating},
			SessionRatingAlgs:       []c.RatingAlg{c.RatingKtRating},
			ProfileRatingAlgs:       []c.RatingAlg{c.RatingKtRating},

			Difficulties:      []c.Difficulty{"Easy", "Basic", "Advanced", "Expert", "Master", "Re:Master"},
			DefaultDifficulty: "Master",
			DifficultyColours: map[c.Difficulty]c.Colour{
				"Easy":      c.ColourBlue,
				"Basic":     c.ColourGreen,
				"Advanced":  c.ColourOrange,
				"Expert":    c.ColourRed,
				"Master":    c.ColourPurple,
				"Re:Master": c.ColourWhite,
			},
			ShortDifficulties: map[c.Difficulty]string{
				"Easy":      "EAS",
				"Basic":     "BAS",
				"Advanced":  "ADV",
				"Expert":    "EXP",
				"Master":    "MAS",
				"Re:Master": "Re:MAS",
			},

			Grades: []c.Grade{"F", "E", "D", "C", "B", "A", "AA", "AAA", "S", "S+", "SS", "SS+", "SSS", "SSS+"},
			GradeColours: map[c.Grade]c.Colour{
				"F":    c.ColourGray,
				"E":    c.ColourRed,
				"D":    c.ColourMaroon,
				"C":    c.ColourPurple,
				"B":    c.ColourPaleGreen,
				"A":    c.ColourGreen,
				"AA":   c.ColourPaleBlue,
				"AAA":  c.ColourBlue,
				"S":    c.ColourGold,
				"S+":   c.ColourVibrantYellow,
				"SS":   c.ColourPaleOrange,
				"SS+":  c.ColourOrange,
				"SSS":  c.ColourTeal,
				"SSS+": c.ColourWhite,
			},
			ClearGrade:      "A",
			GradeBoundaries: []float64{0, 10, 20, 40, 60, 80, 90, 94, 97, 98, 99, 99.5, 100, 120},

			Lamps: []c.Lamp{"FAILED", "CLEAR", "FULL COMBO", "ALL PERFECT", "ALL PERFECT+"},
			LampColours: map[c.Lamp]c.Colour{
				"FAILED":       c.ColourRed,
				"CLEAR":        c.ColourGreen,
				"FULL COMBO":   c.ColourBlue,
				"ALL PERFECT":  c.ColourGold,
				"ALL PERFECT+": c.ColourTeal,
			},
			ClearLamp: "CLEAR",

			Judgements:   []c.Judgement{"perfect", "great", "good", "miss"},
			DefaultTable: "Levels",
			ScoreBucket:  c.ScoreBucketGrade,
			Versions:     []string{"finale"},
		},
	}
}

func gitadoraVariant(key c.VariantKey) *TimedVariantConfig {
	b := VariantBase{
		Key:        key,
		PercentMax: 100,

		DefaultScoreRatingAlg:   c.RatingSkill,
		DefaultSessionRatingAlg: c.RatingSkill,
		DefaultProfileRatingAlg: c.RatingSkill,
		ScoreRatingAlgs:         []c.RatingAlg{c.RatingSkill},
		SessionRatingAlgs:       []c.RatingAlg{c.RatingSkill},
		ProfileRatingAlgs:       []c.RatingAlg{c.RatingSkill},

		Difficulties:      []c.Difficulty{"BASIC", "ADVANCED", "EXTREME", "MASTER"},
		DefaultDifficulty: "EXTREME",
		DifficultyColours: map[c.Difficulty]c.Colour{
			"BASIC":    c.ColourBlue,
			"ADVANCED": c.ColourOrange,
			"EXTREME":  c.ColourRed,
			"MASTER":   c.ColourPurple,
		},
		ShortDifficulties: map[c.Difficulty]string{
			"BASIC":    "BAS",
			"ADVANCED": "ADV",
			"EXTREME":  "EXT",
			"MASTER":   "MAS",
		},

		Grades: []c.Grade{"C", "B", "A", "S", "SS", "MAX"},
		GradeColours: map[c.Grade]c.Colour{
			"C":   c.ColourPurple,
			"B":   c.ColourBlue,
			"A":   c.ColourGreen,
			"S":   c.ColourOrange,
			"SS":  c.ColourGold,
			"MAX": c.ColourWhite,
		},
		ClearGrade:      "A",
		GradeBoundaries: []float64{0, 63, 73, 80, 95, 100},

		Lamps: []c.Lamp{"FAILED", "CLEAR", "FULL COMBO", "EXCELLENT"},
		LampColours: map[c.Lamp]c.Colour{
			"FAILED":     c.ColourRed,
			"CLEAR":      c.ColourBlue,
			"FULL COMBO": c.ColourTeal,
			"EXCELLENT":  c.ColourGold,
		},
		ClearLamp: "CLEAR",

		Judgements:   []c.Judgement{"perfect", "great", "good", "ok", "miss"},
		DefaultTable: defaultLevelTable,
		ScoreBucket:  c.ScoreBucketGrade,
		Versions:     []string{"nextage"},
	}

	// Drums use tighter windows than guitar. OK is an approximation.
	windows := []TimingWindow{
		{Name: "PERFECT", MSBoundary: 27, PointValue: 1},
		{Name: "GREAT", MSBoundary: 48, PointValue: 0.5},
		{Name: "GOOD", MSBoundary: 72, PointValue: 0.2},
		{Name: "OK", MSBoundary: 116.667, PointValue: 0},
	}

	if key == c.GitadoraGita {
		b.Difficulties = append(b.Difficulties, "BASS BASIC", "BASS ADVANCED", "BASS EXTREME", "BASS MASTER")
		b.DifficultyColours["BASS BASIC"] = c.ColourVibrantBlue
		b.DifficultyColours["BASS ADVANCED"] = c.ColourVibrantOrange
		b.DifficultyColours["BASS EXTREME"] = c.ColourNone
		b.DifficultyColours["BASS MASTER"] = c.ColourVibrantPurple
		b.ShortDifficulties["BASS BASIC"] = "B-BAS"
		b.ShortDifficulties["BASS ADVANCED"] = "B-ADV"
		b.ShortDifficulties["BASS EXTREME"] = "B-EXT"
		b.ShortDifficulties["BASS MASTER"] = "B-MAS"

		windows = []TimingWindow{
			{Name: "PERFECT", MSBoundary: 33, PointValue: 1},
			{Name: "GREAT", MSBoundary: 57, PointValue: 0.5},
			{Name: "GOOD", MSBoundary: 81, PointValue: 0.2},
			{Name: "OK", MSBoundary: 116.667, PointValue: 0},
		}
	}

	return &TimedVariantConfig{VariantBase: b, TimingWindows: windows}
}

// pick restricts m to keys.
func pick[K comparable, V any](m map[K]V, keys []K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

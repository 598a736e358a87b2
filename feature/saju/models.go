package saju

// Input is a birth specification for a four-pillars computation.
type Input struct {
	// BirthTS is the birth timestamp in ISO 8601 form.
	BirthTS string `json:"birth_ts"`
	// Calendar is solar, lunar or lunar_leap.
	Calendar string `json:"calendar"`
	// Gender defaults to "unknown".
	Gender string `json:"gender"`
	// TZ defaults to "Asia/Seoul".
	TZ string `json:"tz"`
	// Place is an optional birthplace.
	Place string `json:"place,omitempty"`
}

// Pillar is one of the four pillars (year, month, day, hour).
type Pillar struct {
	HeavenlyStem  string   `json:"heavenly_stem"`
	EarthlyBranch string   `json:"earthly_branch"`
	HiddenStems   []string `json:"hidden_stems"`
}

// Luck is one decade-scale window in the luck timeline. Tag is one of
// opportunity, caution or neutral.
type Luck struct {
	StartYear int    `json:"start_year"`
	EndYear   int    `json:"end_year"`
	Tag       string `json:"tag"`
	Notes     string `json:"notes"`
}

// Result is the full four-pillars analysis.
type Result struct {
	Pillars            map[string]Pillar `json:"pillars"`
	TenGods            map[string]string `json:"ten_gods"`
	StrengthScore      float64           `json:"strength_score"`
	Elements           map[string]int    `json:"elements"`
	YongshinCandidates []string          `json:"yongshin_candidates"`
	LuckTimeline       []Luck            `json:"luck_timeline"`
}

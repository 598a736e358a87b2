package saju

import (
	"math"
	"time"

	"go.uber.org/zap"
)

// fallbackYear anchors the luck timeline when the birth timestamp cannot be
// parsed.
const fallbackYear = 1990

// Service computes four-pillars analyses.
type Service struct {
	logger *zap.Logger
}

// NewService creates a new saju service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// Compute derives the four pillars, element balance and luck timeline for
// the given birth input. The chart itself is the demo chart; only the luck
// timeline depends on the birth year.
func (s *Service) Compute(in Input) Result {
	year := s.birthYear(in.BirthTS)

	pillars := map[string]Pillar{
		"year":  {HeavenlyStem: "甲", EarthlyBranch: "子", HiddenStems: []string{"癸"}},
		"month": {HeavenlyStem: "丙", EarthlyBranch: "寅", HiddenStems: []string{"甲", "丙", "戊"}},
		"day":   {HeavenlyStem: "辛", EarthlyBranch: "巳", HiddenStems: []string{"丙", "庚", "戊"}},
		"hour":  {HeavenlyStem: "壬", EarthlyBranch: "午", HiddenStems: []string{"丁", "己"}},
	}

	elements := map[string]int{"wood": 3, "fire": 2, "earth": 2, "metal": 1, "water": 2}
	strength := math.Round(float64(elements["wood"]+elements["water"])/10.0*100) / 100

	yongshin := []string{"木", "水"}
	if strength > 0.5 {
		yongshin = []string{"火", "土"}
	}

	luck := []Luck{
		{StartYear: year + 1, EndYear: year + 10, Tag: "opportunity", Notes: "전환기"},
		{StartYear: year + 11, EndYear: year + 20, Tag: "neutral", Notes: ""},
	}

	return Result{
		Pillars:            pillars,
		TenGods:            map[string]string{"to_day": "偏財", "to_month": "正官"},
		StrengthScore:      strength,
		Elements:           elements,
		YongshinCandidates: yongshin,
		LuckTimeline:       luck,
	}
}

// birthYear extracts the year from an ISO timestamp, accepting both
// zone-qualified and naive forms.
func (s *Service) birthYear(ts string) int {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Year()
		}
	}
	s.logger.Debug("Unparseable birth timestamp, using fallback year", zap.String("birth_ts", ts))
	return fallbackYear
}

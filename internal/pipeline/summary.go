package pipeline

import (
	"math"
	"sort"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Score bands used for the summary counts.
const (
	excellentThreshold = 0.8
	goodThreshold      = 0.6
)

// Summary aggregates a batch result for reporting.
type Summary struct {
	TotalCandidates int          `json:"total_candidates"`
	Completed       int          `json:"completed"`
	Errors          int          `json:"errors"`
	ExcellentCount  int          `json:"excellent_count"` // score >= 0.8
	GoodCount       int          `json:"good_count"`      // 0.6 <= score < 0.8
	AverageScore    float64      `json:"average_score"`
	TopScore        float64      `json:"top_score"`
	MinYears        int          `json:"min_years_experience"`
	MaxYears        int          `json:"max_years_experience"`
	TopSkills       []SkillCount `json:"top_skills"`
}

// SkillCount is one entry of the skill frequency table.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// maxTopSkills caps the skill frequency table.
const maxTopSkills = 10

// Summarize computes aggregate statistics over a batch. Error items count
// toward totals but are excluded from score and experience aggregates.
func Summarize(items []*Item) Summary {
	s := Summary{TotalCandidates: len(items)}

	skillFreq := make(map[string]int)
	var scoreSum float64
	first := true

	for _, it := range items {
		if it.Status == types.StatusError {
			s.Errors++
			continue
		}
		s.Completed++

		score := it.Score()
		scoreSum += score
		if score > s.TopScore {
			s.TopScore = score
		}
		switch {
		case score >= excellentThreshold:
			s.ExcellentCount++
		case score >= goodThreshold:
			s.GoodCount++
		}

		if it.Profile != nil {
			years := it.Profile.YearsExperience
			if first {
				s.MinYears, s.MaxYears = years, years
				first = false
			} else {
				if years < s.MinYears {
					s.MinYears = years
				}
				if years > s.MaxYears {
					s.MaxYears = years
				}
			}
			for _, skill := range it.Profile.Skills {
				skillFreq[skill]++
			}
		}
	}

	if s.Completed > 0 {
		s.AverageScore = math.Round(scoreSum/float64(s.Completed)*1000) / 1000
	}
	s.TopSkills = topSkills(skillFreq, maxTopSkills)

	return s
}

func topSkills(freq map[string]int, limit int) []SkillCount {
	counts := make([]SkillCount, 0, len(freq))
	for skill, n := range freq {
		counts = append(counts, SkillCount{Skill: skill, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Skill < counts[j].Skill
	})
	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

package matcher

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/jonathan/resume-analyzer/internal/vocab"
)

const (
	// A required skill absent as a substring still earns partial credit when
	// some resume token is nearly identical to it.
	fuzzySkillThreshold = 80
	fuzzySkillCredit    = 0.8

	// Extra skills from the job description found in the resume accumulate a
	// small bonus on top of the base ratio.
	bonusSkillIncrement = 0.1
	bonusScale          = 0.1

	// With no required skills there is nothing to judge; score neutrally.
	neutralSkillScore = 0.5
)

// computeSkillScore scores required-skill coverage. Exact substring presence
// earns full credit per skill, a fuzzy token match earns fuzzySkillCredit,
// and auto-detected job-description skills present in the resume but missing
// from the required list add a capped bonus.
func computeSkillScore(resumeText string, requiredSkills []string, jobDescription string) float64 {
	if len(requiredSkills) == 0 {
		return neutralSkillScore
	}

	resumeLower := strings.ToLower(resumeText)
	resumeTokens := strings.Fields(resumeLower)

	matchedWeight := 0.0
	for _, skill := range requiredSkills {
		skillLower := strings.ToLower(skill)
		switch {
		case strings.Contains(resumeLower, skillLower):
			matchedWeight++
		case anyTokenRatioAbove(resumeTokens, skillLower, fuzzySkillThreshold):
			matchedWeight += fuzzySkillCredit
		}
	}

	requiredSet := make(map[string]struct{}, len(requiredSkills))
	for _, s := range requiredSkills {
		requiredSet[strings.ToLower(s)] = struct{}{}
	}

	bonus := 0.0
	for _, skill := range vocab.ExtractSkills(jobDescription) {
		skillLower := strings.ToLower(skill)
		if _, required := requiredSet[skillLower]; required {
			continue
		}
		if strings.Contains(resumeLower, skillLower) {
			bonus += bonusSkillIncrement
		}
	}

	base := matchedWeight / float64(len(requiredSkills))
	return clamp01(base + bonus*bonusScale)
}

func anyTokenRatioAbove(tokens []string, skill string, threshold int) bool {
	for _, token := range tokens {
		if fuzzy.Ratio(skill, token) > threshold {
			return true
		}
	}
	return false
}

// partitionSkills splits the required skills into matched and missing.
// Only exact case-insensitive substring presence counts as matched here;
// fuzzy hits affect the score but not this partition, so
// missing = required − matched always holds exactly.
func partitionSkills(resumeText string, requiredSkills []string) (matched, missing []string) {
	matched = make([]string, 0, len(requiredSkills))
	missing = make([]string, 0, len(requiredSkills))
	resumeLower := strings.ToLower(resumeText)
	for _, skill := range requiredSkills {
		if strings.Contains(resumeLower, strings.ToLower(skill)) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	return matched, missing
}

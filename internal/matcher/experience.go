package matcher

import (
	"regexp"
	"strconv"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/jonathan/resume-analyzer/internal/vocab"
)

const (
	// No stated requirement: lean positive without assuming a fit.
	neutralExperienceScore = 0.7

	// Meeting the requirement starts at 0.8 with a small per-year
	// overqualification bonus; falling short scales down with a 0.2 floor.
	qualifiedBase        = 0.8
	overqualifiedPerYear = 0.05
	underqualifiedScale  = 0.8
	underqualifiedFloor  = 0.2

	// Blend between the years-based score and the title match.
	experienceBlendWeight = 0.7
	titleBlendWeight      = 0.3

	neutralTitleScore = 0.5
)

var (
	resumeYearsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
		regexp.MustCompile(`(\d+)\+?\s*years?\s*in`),
		regexp.MustCompile(`experience.*?(\d+)\+?\s*years?`),
		regexp.MustCompile(`(\d+)\+?\s*yrs?\s*(?:of\s*)?experience`),
	}

	requiredYearsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?experience\s*required`),
		regexp.MustCompile(`minimum\s*(?:of\s*)?(\d+)\+?\s*years?`),
		regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?(?:relevant\s*)?experience`),
		regexp.MustCompile(`require[sd]?\s*(\d+)\+?\s*years?`),
	}
)

// computeExperienceScore compares years of experience mentioned in the resume
// against the job description's requirement, blended with a title match.
func computeExperienceScore(resumeText, jobDescription, jobTitle string) float64 {
	resumeYears := maxYearsMention(resumeText, resumeYearsPatterns)
	requiredYears := maxYearsMention(jobDescription, requiredYearsPatterns)

	var base float64
	switch {
	case requiredYears == 0:
		base = neutralExperienceScore
	case resumeYears >= requiredYears:
		base = clamp01(qualifiedBase + float64(resumeYears-requiredYears)*overqualifiedPerYear)
	default:
		base = float64(resumeYears) / float64(requiredYears) * underqualifiedScale
		if base < underqualifiedFloor {
			base = underqualifiedFloor
		}
	}

	titleScore := computeTitleScore(resumeText, jobTitle)

	return clamp01(base*experienceBlendWeight + titleScore*titleBlendWeight)
}

// maxYearsMention returns the largest year count matched by any of the
// phrasing patterns, or 0 when none match.
func maxYearsMention(text string, patterns []*regexp.Regexp) int {
	lower := strings.ToLower(text)
	best := 0
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil && n > best {
				best = n
			}
		}
	}
	return best
}

var roleLineRe = regexp.MustCompile(`(?m)^[^,\n]*(?:` + strings.Join(vocab.RoleKeywords, "|") + `)[^,\n]*`)

// computeTitleScore scores how closely the resume mentions the target title:
// 1.0 on an exact substring hit, otherwise the best fuzzy similarity against
// any role-looking resume line. No title given scores neutrally.
func computeTitleScore(resumeText, jobTitle string) float64 {
	if jobTitle == "" {
		return neutralTitleScore
	}

	resumeLower := strings.ToLower(resumeText)
	titleLower := strings.ToLower(jobTitle)

	if strings.Contains(resumeLower, titleLower) {
		return 1.0
	}

	best := 0.0
	for _, line := range roleLineRe.FindAllString(resumeLower, -1) {
		ratio := float64(fuzzy.Ratio(titleLower, strings.TrimSpace(line))) / 100
		if ratio > best {
			best = ratio
		}
	}
	return best
}

package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	experienceHeaderRe = regexp.MustCompile(`(?im)^[ \t]*(?:EXPERIENCE|WORK|EMPLOYMENT|PROFESSIONAL)`)

	// (Title) at|@|- (Company) separator (YYYY[-YYYY|Present|Current])
	jobEntryRe = regexp.MustCompile(`([A-Z][^,\n]+?)(?:\s+at\s+|\s+@\s+|\s+-\s+)([A-Z][^,\n]+?)(?:\s+\|\s+|\s+-\s+|\n)([0-9]{4}(?:\s*-\s*(?:[0-9]{4}|Present|Current))?)`)

	yearRe        = regexp.MustCompile(`\d{4}`)
	presentLikeRe = regexp.MustCompile(`(?i)present|current`)
)

// extractExperience parses the work-history section. No section or no
// matching entries yields an empty sequence, not an error.
func extractExperience(lineText string) []types.ExperienceEntry {
	loc := experienceHeaderRe.FindStringIndex(lineText)
	if loc == nil {
		return []types.ExperienceEntry{}
	}
	section := lineText[loc[0]:]
	// Only the first work-history section counts; a second header (say an
	// EMPLOYMENT block after EXPERIENCE) ends it.
	if next := experienceHeaderRe.FindStringIndex(lineText[loc[1]:]); next != nil {
		section = lineText[loc[0] : loc[1]+next[0]]
	}

	matches := jobEntryRe.FindAllStringSubmatch(section, -1)
	entries := make([]types.ExperienceEntry, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, types.ExperienceEntry{
			Title:    strings.TrimSpace(m[1]),
			Company:  strings.TrimSpace(m[2]),
			Duration: strings.TrimSpace(m[3]),
		})
	}
	return entries
}

// calculateYearsExperience sums the year spans of all experience entries.
// A duration with two years contributes end-start (floored at zero); an open
// duration ("2020 - Present") counts up to the current year; a lone year
// contributes 1; no years contribute 0.
func (e *Extractor) calculateYearsExperience(entries []types.ExperienceEntry) int {
	currentYear := e.now().Year()
	total := 0
	for _, entry := range entries {
		years := yearRe.FindAllString(entry.Duration, -1)
		switch {
		case len(years) >= 2:
			start := atoi(years[0])
			end := atoi(years[1])
			if end > start {
				total += end - start
			}
		case len(years) == 1:
			if presentLikeRe.MatchString(entry.Duration) {
				if span := currentYear - atoi(years[0]); span > 0 {
					total += span
				}
			} else {
				total++
			}
		}
	}
	return total
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

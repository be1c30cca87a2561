package extractor

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const degreeKeywordAlt = `Bachelor|Master|PhD|Doctorate|Associate|Diploma|B\.S\.|B\.A\.|M\.S\.|M\.A\.|MBA|Ph\.D\.|B\.Tech|M\.Tech`

var (
	degreeKeywordRe = regexp.MustCompile(`(?i)\b(?:` + degreeKeywordAlt + `)`)

	// "(degree) from|at (institution)[, year]" — tried first.
	eduLinkedRe = regexp.MustCompile(`(?i)((?:` + degreeKeywordAlt + `)[^,\n|]*?)\s+(?:from|at|\|)\s+([A-Za-z][^,\n]+)(?:\s*,\s*(\d{4}))?`)

	eduYearRe = regexp.MustCompile(`^\d{4}$`)
)

// extractEducation finds degree entries. Each entry needs a degree keyword;
// the institution comes from a from/at link or from the comma-separated rest
// of the line, and a trailing 4-digit field becomes the year. Text without
// degree keywords yields an empty sequence.
func extractEducation(lineText string) []types.EducationEntry {
	entries := make([]types.EducationEntry, 0)
	for _, line := range strings.Split(lineText, "\n") {
		if !degreeKeywordRe.MatchString(line) {
			continue
		}
		if m := eduLinkedRe.FindStringSubmatch(line); m != nil {
			entries = append(entries, types.EducationEntry{
				Degree:      strings.TrimSpace(m[1]),
				Institution: strings.TrimSpace(m[2]),
				Year:        m[3],
			})
			continue
		}
		if entry, ok := educationFromParts(line); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// educationFromParts splits a degree line on commas:
// "B.S. Computer Science, Stanford University, 2015".
func educationFromParts(line string) (types.EducationEntry, bool) {
	parts := strings.Split(line, ",")
	degreeIdx := -1
	for i, p := range parts {
		if degreeKeywordRe.MatchString(p) {
			degreeIdx = i
			break
		}
	}
	if degreeIdx < 0 {
		return types.EducationEntry{}, false
	}

	entry := types.EducationEntry{Degree: strings.TrimSpace(parts[degreeIdx])}
	for _, p := range parts[degreeIdx+1:] {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if eduYearRe.MatchString(p) {
			entry.Year = p
			continue
		}
		if entry.Institution == "" {
			entry.Institution = p
		}
	}
	return entry, true
}

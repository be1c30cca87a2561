package extractor

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/jonathan/resume-analyzer/internal/vocab"
)

// extractCertifications matches the vendor-certification vocabulary as
// case-insensitive substrings, preserving vocabulary order.
func extractCertifications(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0)
	for _, cert := range vocab.Certifications {
		if strings.Contains(lower, strings.ToLower(cert)) {
			found = append(found, cert)
		}
	}
	return found
}

// extractLanguages matches the spoken-language vocabulary as case-insensitive
// substrings.
func extractLanguages(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0)
	for _, lang := range vocab.SpokenLanguages {
		if strings.Contains(lower, strings.ToLower(lang)) {
			found = append(found, lang)
		}
	}
	return found
}

// minAwardLineLength filters out section headers and stray fragments.
const minAwardLineLength = 10

// extractAwards scans lines for award-indicating keywords, deduplicated and
// sorted for a stable order.
func extractAwards(lineText string) []string {
	seen := make(map[string]struct{})
	awards := make([]string, 0)
	for _, line := range strings.Split(lineText, "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= minAwardLineLength {
			continue
		}
		lower := strings.ToLower(line)
		for _, kw := range vocab.AwardKeywords {
			if strings.Contains(lower, kw) {
				if _, dup := seen[line]; !dup {
					seen[line] = struct{}{}
					awards = append(awards, line)
				}
				break
			}
		}
	}
	sort.Strings(awards)
	return awards
}

var (
	projectHeaderRe = regexp.MustCompile(`(?im)^[ \t]*(?:PROJECTS?|PORTFOLIO)\b`)
	allCapsLineRe   = regexp.MustCompile(`^[A-Z][A-Z\s]{1,}$`)
)

// extractProjects locates a PROJECTS/PORTFOLIO section and groups consecutive
// non-header lines into {name, description} records. A blank or all-caps line
// flushes the current record; the first all-caps line after the header ends
// the section.
func extractProjects(lineText string) []types.Project {
	loc := projectHeaderRe.FindStringIndex(lineText)
	if loc == nil {
		return []types.Project{}
	}

	lines := strings.Split(lineText[loc[0]:], "\n")
	projects := make([]types.Project, 0)
	var current *types.Project

	flush := func() {
		if current != nil {
			current.Description = strings.TrimSpace(current.Description)
			projects = append(projects, *current)
			current = nil
		}
	}

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if i == 0 {
			// The section header itself.
			continue
		}
		if line == "" {
			flush()
			continue
		}
		if allCapsLineRe.MatchString(line) {
			// Next section header: stop scanning.
			flush()
			break
		}
		if current == nil {
			current = &types.Project{Name: line}
		} else {
			current.Description += " " + line
		}
	}
	flush()

	return projects
}

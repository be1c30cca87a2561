package vocab

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// skillPattern pairs a canonical skill name with its compiled matcher.
type skillPattern struct {
	name string
	re   *regexp.Regexp
}

// skillPatterns is built once at startup from the category tables and shared
// read-only across all extraction calls.
var skillPatterns = compileSkillPatterns()

func allSkills() []string {
	categories := [][]string{
		ProgrammingLanguages, WebTechnologies, Databases, CloudDevOps,
		DataScienceML, MobileDevelopment, ToolsFrameworks, Methodologies,
	}
	seen := make(map[string]struct{})
	skills := make([]string, 0, 128)
	for _, cat := range categories {
		for _, s := range cat {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			skills = append(skills, s)
		}
	}
	return skills
}

func compileSkillPatterns() []skillPattern {
	skills := allSkills()
	patterns := make([]skillPattern, 0, len(skills))
	for _, s := range skills {
		patterns = append(patterns, skillPattern{name: s, re: compileWordPattern(s)})
	}
	return patterns
}

// compileWordPattern builds a case-insensitive word-boundary pattern for term.
// \b only works against word-character edges, so for terms that start or end
// with symbols (C++, C#, CI/CD) the boundary on that side is dropped.
func compileWordPattern(term string) *regexp.Regexp {
	pattern := regexp.QuoteMeta(strings.ToLower(term))
	if startsWithWordChar(term) {
		pattern = `\b` + pattern
	}
	if endsWithWordChar(term) {
		pattern += `\b`
	}
	return regexp.MustCompile(`(?i)` + pattern)
}

func startsWithWordChar(s string) bool {
	if s == "" {
		return false
	}
	return isWordChar(rune(s[0]))
}

func endsWithWordChar(s string) bool {
	if s == "" {
		return false
	}
	return isWordChar(rune(s[len(s)-1]))
}

func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ExtractSkills matches the closed skill dictionary against text using
// word-boundary, case-insensitive matching and returns the sorted,
// deduplicated canonical names that matched. Skills outside the dictionary
// are never detected.
func ExtractSkills(text string) []string {
	found := make([]string, 0)
	for _, p := range skillPatterns {
		if p.re.MatchString(text) {
			found = append(found, p.name)
		}
	}
	sort.Strings(found)
	return found
}

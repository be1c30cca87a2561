// Package textutil provides the shared text cleanup, tokenization, and
// statistics helpers used by the extractor and the matching engine.
package textutil

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	// Conservative allow-list: word characters plus the punctuation that
	// carries signal in resumes (emails, phone numbers, degree abbreviations).
	disallowedRe = regexp.MustCompile(`[^\w\s@.,()-]`)
	spacesRe     = regexp.MustCompile(` +`)
)

// Normalize collapses all whitespace runs to single spaces, strips characters
// outside the allow-list, and trims the result. It is idempotent and total:
// empty input yields empty output.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = disallowedRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// StripSpecial replaces characters outside the allow-list with spaces while
// leaving whitespace (including newlines) alone, so line structure survives
// for the section-oriented extractors.
func StripSpecial(text string) string {
	return disallowedRe.ReplaceAllString(text, " ")
}

// CleanLines normalizes text while preserving line structure: line endings
// become LF, horizontal whitespace runs inside each line collapse to single
// spaces, lines are trimmed, and runs of blank lines collapse to one.
// Line-oriented extractors (sections, projects, awards) need this instead of
// Normalize, which flattens the document into a single line.
func CleanLines(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(spacesRe.ReplaceAllString(strings.ReplaceAll(line, "\t", " "), " "))
		if line == "" {
			if !blank && len(cleaned) > 0 {
				cleaned = append(cleaned, "")
			}
			blank = true
			continue
		}
		blank = false
		cleaned = append(cleaned, line)
	}
	return strings.TrimRight(strings.Join(cleaned, "\n"), "\n")
}

var wordRe = regexp.MustCompile(`\b\w+\b`)

// Words returns all word tokens (letters, digits, underscore) in text.
func Words(text string) []string {
	return wordRe.FindAllString(text, -1)
}

// WordSet returns the set of lowercased word tokens in text.
func WordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range wordRe.FindAllString(strings.ToLower(text), -1) {
		set[w] = struct{}{}
	}
	return set
}

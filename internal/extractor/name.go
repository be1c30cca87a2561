package extractor

import (
	"regexp"
	"strings"
)

const (
	// How much of the document the NER passes look at. Names sit at the top
	// of a resume; locations usually appear in the contact block.
	nerNameWindow     = 500
	nerLocationWindow = 1000

	nameScanLines = 5
)

var (
	namePatternRe = regexp.MustCompile(`^([A-Z][a-z]+ [A-Z][a-z]+(?: [A-Z][a-z]+)?)`)
	phoneDigitsRe = regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// extractName finds the candidate's name. Strategies in order: a NER pass
// over the top of the document selecting the first PERSON entity, then a
// capitalized-words pattern over the first few lines (skipping contact
// lines), then the sentinel default.
func (e *Extractor) extractName(lineText string) string {
	if e.tagger != nil {
		if name := firstEntity(e.tagger.Entities(head(lineText, nerNameWindow)), labelPerson); name != "" {
			return name
		}
	}

	lines := strings.Split(lineText, "\n")
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if strings.Contains(line, "@") || phoneDigitsRe.MatchString(line) {
			continue
		}
		if m := namePatternRe.FindStringSubmatch(line); m != nil {
			return m[1]
		}
	}

	return nameNotFound
}

var (
	// City, ST / City Name, ST / City, Country — tried in order.
	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`[A-Z][a-z]+,\s*[A-Z]{2}\b`),
		regexp.MustCompile(`[A-Z][a-z]+ [A-Z][a-z]+,\s*[A-Z]{2}\b`),
		regexp.MustCompile(`[A-Z][a-z]+,\s*[A-Z][a-z]+`),
	}
)

// extractLocation finds a location string, preferring the explicit
// "City, ST"-shaped patterns and falling back to a NER pass tagged GPE/LOC.
func (e *Extractor) extractLocation(text string) string {
	for _, re := range locationPatterns {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	if e.tagger != nil {
		if loc := firstEntity(e.tagger.Entities(head(text, nerLocationWindow)), labelGeo, labelLocation); loc != "" {
			return loc
		}
	}
	return ""
}

package matcher

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/textutil"
)

const (
	// Semantic similarity blends Jaccard word overlap with the TF-IDF cosine.
	jaccardBlendWeight = 0.3
	tfidfBlendWeight   = 0.7
)

// computeKeywordScore is the TF-IDF cosine similarity between the two texts.
// The vectorizer is constructed fresh per call: it is fit on exactly this
// two-document corpus and never shared across calls.
func computeKeywordScore(resumeText, jobDescription string) float64 {
	v := newVectorizer()
	return v.Similarity(resumeText, jobDescription)
}

// computeSemanticScore blends Jaccard similarity of the lowercased word sets
// with the already-computed keyword score.
func computeSemanticScore(resumeText, jobDescription string, keywordScore float64) float64 {
	resumeWords := textutil.WordSet(resumeText)
	jobWords := textutil.WordSet(jobDescription)

	intersection := 0
	for w := range resumeWords {
		if _, ok := jobWords[w]; ok {
			intersection++
		}
	}
	union := len(resumeWords) + len(jobWords) - intersection

	jaccard := 0.0
	if union > 0 {
		jaccard = float64(intersection) / float64(union)
	}

	return jaccard*jaccardBlendWeight + keywordScore*tfidfBlendWeight
}

var alphaTokenRe = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)

// keywordStopWords excludes common words from the matched-keywords list.
var keywordStopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {}, "you": {},
	"all": {}, "can": {}, "had": {}, "her": {}, "was": {}, "one": {}, "our": {},
	"out": {}, "day": {}, "get": {}, "has": {}, "him": {}, "his": {}, "how": {},
	"man": {}, "new": {}, "now": {}, "old": {}, "see": {}, "two": {}, "way": {},
	"who": {}, "boy": {}, "did": {}, "its": {}, "let": {}, "put": {}, "say": {},
	"she": {}, "too": {}, "use": {},
}

// matchedKeywords returns the sorted significant tokens shared by the job
// description and the resume: alphabetic, lowercased, longer than three
// characters, stop words removed.
func matchedKeywords(resumeText, jobDescription string) []string {
	resumeWords := alphaTokenSet(resumeText)
	jobWords := alphaTokenSet(jobDescription)

	matched := make([]string, 0)
	for w := range jobWords {
		if _, inResume := resumeWords[w]; !inResume {
			continue
		}
		if _, stop := keywordStopWords[w]; stop {
			continue
		}
		if len(w) > 3 {
			matched = append(matched, w)
		}
	}
	sort.Strings(matched)
	return matched
}

func alphaTokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range alphaTokenRe.FindAllString(strings.ToLower(text), -1) {
		set[w] = struct{}{}
	}
	return set
}

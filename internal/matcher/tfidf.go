package matcher

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/textutil"
)

// maxFeatures caps the vocabulary at the most frequent terms.
const maxFeatures = 5000

var tfidfTokenRe = regexp.MustCompile(`\b\w\w+\b`)

// vectorizer computes TF-IDF cosine similarity over a two-document corpus:
// lowercased tokens of two or more word characters, English stop words
// removed, unigrams and bigrams, smoothed inverse document frequency, and
// l2-normalized vectors. A vectorizer is fit per comparison and must not be
// shared across concurrent calls; newVectorizer is cheap.
type vectorizer struct {
	maxFeatures int
}

func newVectorizer() *vectorizer {
	return &vectorizer{maxFeatures: maxFeatures}
}

// Similarity returns the cosine similarity of the two documents' TF-IDF
// vectors, 0 when either document vectorizes to nothing.
func (v *vectorizer) Similarity(docA, docB string) float64 {
	countsA := termCounts(docA)
	countsB := termCounts(docB)
	if len(countsA) == 0 || len(countsB) == 0 {
		return 0
	}

	vocabulary := v.buildVocabulary(countsA, countsB)

	vecA := tfidfVector(countsA, countsB, vocabulary)
	vecB := tfidfVector(countsB, countsA, vocabulary)

	dot := 0.0
	for term, a := range vecA {
		dot += a * vecB[term]
	}
	return dot
}

// termCounts tokenizes a document into unigram and bigram counts, with stop
// words removed before n-gram generation.
func termCounts(doc string) map[string]int {
	raw := tfidfTokenRe.FindAllString(strings.ToLower(doc), -1)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if _, stop := textutil.EnglishStopWords[t]; stop {
			continue
		}
		tokens = append(tokens, t)
	}

	counts := make(map[string]int, len(tokens)*2)
	for i, t := range tokens {
		counts[t]++
		if i+1 < len(tokens) {
			counts[t+" "+tokens[i+1]]++
		}
	}
	return counts
}

// buildVocabulary takes the union of both documents' terms, keeping only the
// top maxFeatures by total frequency (ties broken alphabetically).
func (v *vectorizer) buildVocabulary(countsA, countsB map[string]int) map[string]struct{} {
	type termFreq struct {
		term  string
		count int
	}
	totals := make(map[string]int, len(countsA)+len(countsB))
	for t, c := range countsA {
		totals[t] += c
	}
	for t, c := range countsB {
		totals[t] += c
	}

	if len(totals) <= v.maxFeatures {
		vocabulary := make(map[string]struct{}, len(totals))
		for t := range totals {
			vocabulary[t] = struct{}{}
		}
		return vocabulary
	}

	ranked := make([]termFreq, 0, len(totals))
	for t, c := range totals {
		ranked = append(ranked, termFreq{term: t, count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].term < ranked[j].term
	})

	vocabulary := make(map[string]struct{}, v.maxFeatures)
	for _, tf := range ranked[:v.maxFeatures] {
		vocabulary[tf.term] = struct{}{}
	}
	return vocabulary
}

// tfidfVector builds the l2-normalized TF-IDF vector for the document with
// counts `own`, using smoothed idf over the two-document corpus:
// idf = ln((1+n)/(1+df)) + 1 with n = 2.
func tfidfVector(own, other map[string]int, vocabulary map[string]struct{}) map[string]float64 {
	vec := make(map[string]float64, len(own))
	norm := 0.0
	for term, count := range own {
		if _, inVocab := vocabulary[term]; !inVocab {
			continue
		}
		df := 1
		if other[term] > 0 {
			df = 2
		}
		idf := math.Log(3.0/float64(1+df)) + 1
		w := float64(count) * idf
		vec[term] = w
		norm += w * w
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for term := range vec {
		vec[term] /= norm
	}
	return vec
}

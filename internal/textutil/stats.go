package textutil

import (
	"math"
	"strings"
)

// Statistics summarizes basic lexical properties of a text.
type Statistics struct {
	WordCount          int     `json:"word_count"`
	CharacterCount     int     `json:"character_count"`
	SentenceCount      int     `json:"sentence_count"`
	AverageWordLength  float64 `json:"average_word_length"`
	UniqueWords        int     `json:"unique_words"`
	VocabularyRichness float64 `json:"vocabulary_richness"`
	StopWordRatio      float64 `json:"stop_word_ratio"`
}

// ComputeStatistics calculates text statistics. It is total: empty input
// yields a zeroed result (with CharacterCount still reflecting the input).
func ComputeStatistics(text string) Statistics {
	stats := Statistics{CharacterCount: len(text)}

	words := Words(strings.ToLower(text))
	if len(words) == 0 {
		return stats
	}

	stats.WordCount = len(words)
	stats.SentenceCount = countSentences(text)

	totalLen := 0
	unique := make(map[string]struct{}, len(words))
	stopCount := 0
	for _, w := range words {
		totalLen += len(w)
		unique[w] = struct{}{}
		if _, ok := EnglishStopWords[w]; ok {
			stopCount++
		}
	}

	stats.AverageWordLength = round2(float64(totalLen) / float64(len(words)))
	stats.UniqueWords = len(unique)
	stats.VocabularyRichness = round3(float64(len(unique)) / float64(len(words)))
	stats.StopWordRatio = round3(float64(stopCount) / float64(len(words)))
	return stats
}

func round2(f float64) float64 { return math.Round(f*100) / 100 }
func round3(f float64) float64 { return math.Round(f*1000) / 1000 }

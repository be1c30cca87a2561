package textutil

import (
	"regexp"
	"strings"
)

var sentenceEndRe = regexp.MustCompile(`[.!?]+`)

// FleschReadingEase computes the Flesch reading-ease score of text.
// Higher is easier to read; typical prose lands between 0 and 100, though the
// formula is unbounded. Empty or wordless text returns 0.
func FleschReadingEase(text string) float64 {
	words := Words(text)
	if len(words) == 0 {
		return 0
	}

	sentences := countSentences(text)
	if sentences == 0 {
		sentences = 1
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	wordCount := float64(len(words))
	return 206.835 - 1.015*(wordCount/float64(sentences)) - 84.6*(float64(syllables)/wordCount)
}

func countSentences(text string) int {
	return len(sentenceEndRe.FindAllString(text, -1))
}

// countSyllables estimates syllables by counting vowel groups, with the usual
// silent-e adjustment. Always at least 1 for a non-empty word.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

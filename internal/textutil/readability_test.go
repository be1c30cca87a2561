package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFleschReadingEase_Empty(t *testing.T) {
	assert.Equal(t, 0.0, FleschReadingEase(""))
	assert.Equal(t, 0.0, FleschReadingEase("   "))
}

func TestFleschReadingEase_SimpleSentence(t *testing.T) {
	// 3 words, 1 sentence, 3 syllables:
	// 206.835 - 1.015*3 - 84.6*1 = 119.19
	score := FleschReadingEase("The cat sat.")
	assert.InDelta(t, 119.19, score, 0.01)
}

func TestFleschReadingEase_SimplerTextScoresHigher(t *testing.T) {
	simple := FleschReadingEase("The cat sat on the mat. The dog ran to the park.")
	complex := FleschReadingEase("Comprehensive organizational accountability necessitates extraordinary interdisciplinary collaboration.")
	assert.Greater(t, simple, complex)
}

func TestFleschReadingEase_NoSentencePunctuation(t *testing.T) {
	// Treated as a single sentence rather than dividing by zero.
	score := FleschReadingEase("Python Java Docker Kubernetes")
	assert.NotZero(t, score)
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"table", 2},
		{"like", 1},
		{"engineering", 4},
		{"rhythm", 1},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, countSyllables(tt.word))
		})
	}
}

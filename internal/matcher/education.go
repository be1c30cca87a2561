package matcher

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/vocab"
)

const (
	// No stated degree requirement: neutral.
	neutralEducationScore = 0.7

	// Falling short of the required level earns proportional credit; any
	// detectable education keeps a floor.
	educationPartialScale = 0.8
	educationFloor        = 0.3
)

// computeEducationScore maps both texts onto the ordinal degree ladder and
// compares the highest level found on each side.
func computeEducationScore(resumeText, jobDescription string) float64 {
	requiredLevel := maxDegreeLevel(jobDescription)
	if requiredLevel == 0 {
		return neutralEducationScore
	}

	candidateLevel := maxDegreeLevel(resumeText)
	switch {
	case candidateLevel >= requiredLevel:
		return 1.0
	case candidateLevel > 0:
		return clamp01(float64(candidateLevel) / float64(requiredLevel) * educationPartialScale)
	default:
		return educationFloor
	}
}

// maxDegreeLevel returns the highest rank on the degree ladder whose keyword
// appears in text, or 0.
func maxDegreeLevel(text string) int {
	lower := strings.ToLower(text)
	best := 0
	for keyword, level := range vocab.DegreeLevels {
		if level > best && strings.Contains(lower, keyword) {
			best = level
		}
	}
	return best
}

package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeEducationScore_MeetsRequirement(t *testing.T) {
	score := computeEducationScore(
		"Bachelor of Science in Computer Science",
		"Bachelor's degree required",
	)
	assert.Equal(t, 1.0, score)
}

func TestComputeEducationScore_ExceedsRequirement(t *testing.T) {
	score := computeEducationScore(
		"PhD in Machine Learning",
		"Master's degree preferred",
	)
	assert.Equal(t, 1.0, score)
}

func TestComputeEducationScore_PartialCredit(t *testing.T) {
	// bachelor (3) against master (4): 3/4 * 0.8 = 0.6
	score := computeEducationScore(
		"Bachelor of Arts",
		"Master's degree required",
	)
	assert.InDelta(t, 0.6, score, 1e-9)
}

func TestComputeEducationScore_NoEducationFloor(t *testing.T) {
	score := computeEducationScore(
		"Self-taught programmer",
		"PhD required",
	)
	assert.Equal(t, educationFloor, score)
}

func TestComputeEducationScore_NoRequirementIsNeutral(t *testing.T) {
	score := computeEducationScore("PhD in Physics", "no degree mentioned here")
	assert.Equal(t, neutralEducationScore, score)
}

func TestMaxDegreeLevel(t *testing.T) {
	assert.Equal(t, 0, maxDegreeLevel("no credentials"))
	assert.Equal(t, 1, maxDegreeLevel("high school diploma"))
	assert.Equal(t, 4, maxDegreeLevel("MBA from Wharton"))
	// The highest mentioned level wins.
	assert.Equal(t, 5, maxDegreeLevel("bachelor, master, and doctorate degrees"))
}

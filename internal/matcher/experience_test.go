package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeExperienceScore_Overqualified(t *testing.T) {
	// base 0.8 + 3*0.05 = 0.95, blended with the neutral title score:
	// 0.95*0.7 + 0.5*0.3 = 0.815
	score := computeExperienceScore(
		"8 years of experience building services",
		"5+ years of experience required",
		"",
	)
	assert.InDelta(t, 0.815, score, 1e-9)
}

func TestComputeExperienceScore_Underqualified(t *testing.T) {
	// base 2/5*0.8 = 0.32; 0.32*0.7 + 0.5*0.3 = 0.374
	score := computeExperienceScore(
		"2 years of experience",
		"5 years of experience required",
		"",
	)
	assert.InDelta(t, 0.374, score, 1e-9)
}

func TestComputeExperienceScore_UnderqualifiedFloor(t *testing.T) {
	// No resume years against a steep requirement bottoms out at the floor.
	score := computeExperienceScore(
		"recent graduate",
		"minimum of 10 years",
		"",
	)
	assert.InDelta(t, underqualifiedFloor*experienceBlendWeight+neutralTitleScore*titleBlendWeight, score, 1e-9)
}

func TestComputeExperienceScore_NoRequirementIsNeutral(t *testing.T) {
	// 0.7*0.7 + 0.5*0.3 = 0.64
	score := computeExperienceScore("5 years of experience", "great team, nice office", "")
	assert.InDelta(t, 0.64, score, 1e-9)
}

func TestComputeExperienceScore_ExactTitleBoost(t *testing.T) {
	// Neutral years base with an exact title hit: 0.7*0.7 + 1.0*0.3 = 0.79
	score := computeExperienceScore(
		"Worked as a Software Engineer at Acme",
		"join our team",
		"Software Engineer",
	)
	assert.InDelta(t, 0.79, score, 1e-9)
}

func TestMaxYearsMention_TakesLargest(t *testing.T) {
	years := maxYearsMention(
		"3 years in frontend, then 7 years of experience in backend",
		resumeYearsPatterns,
	)
	assert.Equal(t, 7, years)
}

func TestMaxYearsMention_NoMention(t *testing.T) {
	assert.Zero(t, maxYearsMention("no numbers here", resumeYearsPatterns))
}

func TestComputeTitleScore(t *testing.T) {
	assert.Equal(t, neutralTitleScore, computeTitleScore("anything", ""))
	assert.Equal(t, 1.0, computeTitleScore("Senior Data Engineer at BigCo", "Data Engineer"))

	// A similar role line earns partial credit via fuzzy matching.
	partial := computeTitleScore("Senior Software Develper at Acme Corp", "Software Developer")
	assert.Greater(t, partial, 0.5)
	assert.Less(t, partial, 1.0)
}

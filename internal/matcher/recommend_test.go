package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendations_WeakSkillsListsMissing(t *testing.T) {
	recs := Recommendations(0.4, 0.7, 0.7, []string{"Go", "Rust", "Kafka", "Terraform"})

	assert.Contains(t, recs, "Consider candidates with stronger technical skill alignment")
	// Only the first three missing skills are named.
	assert.Contains(t, recs, "Key missing skills: Go, Rust, Kafka")
}

func TestRecommendations_WeakSkillsNoMissingList(t *testing.T) {
	recs := Recommendations(0.4, 0.7, 0.7, nil)
	assert.Equal(t, []string{"Consider candidates with stronger technical skill alignment"}, recs)
}

func TestRecommendations_WeakExperience(t *testing.T) {
	recs := Recommendations(0.7, 0.4, 0.7, nil)
	assert.Equal(t, []string{"Candidate may need additional experience for this role"}, recs)
}

func TestRecommendations_Overqualified(t *testing.T) {
	recs := Recommendations(0.7, 0.95, 0.7, nil)
	assert.Equal(t, []string{"Candidate appears overqualified - consider for senior roles"}, recs)
}

func TestRecommendations_WeakEducation(t *testing.T) {
	recs := Recommendations(0.7, 0.7, 0.4, nil)
	assert.Equal(t, []string{"Educational background may not fully align with requirements"}, recs)
}

func TestRecommendations_StrongCandidate(t *testing.T) {
	recs := Recommendations(0.9, 0.8, 0.9, nil)
	assert.Equal(t, []string{"Strong candidate - recommend for interview"}, recs)
}

func TestRecommendations_StrongAndOverqualifiedBothFire(t *testing.T) {
	recs := Recommendations(0.9, 0.95, 0.9, nil)
	assert.Equal(t, []string{
		"Candidate appears overqualified - consider for senior roles",
		"Strong candidate - recommend for interview",
	}, recs)
}

func TestRecommendations_Default(t *testing.T) {
	recs := Recommendations(0.7, 0.7, 0.7, nil)
	assert.Equal(t, []string{"Well-balanced candidate profile"}, recs)
}

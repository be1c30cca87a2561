package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func testItems() []*Item {
	return []*Item{
		{
			ID:       "1",
			Filename: "alice.pdf",
			Status:   types.StatusCompleted,
			Starred:  true,
			Profile:  &types.CandidateProfile{Name: "Alice Johnson", Skills: []string{"Python", "Docker"}, YearsExperience: 8},
			Match:    &types.MatchResult{MatchScore: 0.85},
		},
		{
			ID:       "2",
			Filename: "bob.pdf",
			Status:   types.StatusCompleted,
			Profile:  &types.CandidateProfile{Name: "Bob Lee", Skills: []string{"Java"}, YearsExperience: 3},
			Match:    &types.MatchResult{MatchScore: 0.55},
		},
		{
			ID:       "3",
			Filename: "corrupt.pdf",
			Status:   types.StatusError,
			Error:    "failed to parse",
		},
	}
}

func TestFilter_MinScore(t *testing.T) {
	got := Filter{MinScore: 0.6}.Apply(testItems())
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestFilter_ScoreRange(t *testing.T) {
	got := Filter{MinScore: 0.5, MaxScore: 0.6}.Apply(testItems())
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestFilter_Skill(t *testing.T) {
	got := Filter{Skill: "python"}.Apply(testItems())
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestFilter_Search(t *testing.T) {
	byName := Filter{Search: "bob"}.Apply(testItems())
	assert.Len(t, byName, 1)
	assert.Equal(t, "2", byName[0].ID)

	byFile := Filter{Search: "corrupt"}.Apply(testItems())
	assert.Len(t, byFile, 1)
	assert.Equal(t, "3", byFile[0].ID)
}

func TestFilter_StarredOnly(t *testing.T) {
	got := Filter{StarredOnly: true}.Apply(testItems())
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestFilter_ErrorsOnly(t *testing.T) {
	got := Filter{ErrorsOnly: true}.Apply(testItems())
	assert.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestFilter_Empty(t *testing.T) {
	got := Filter{}.Apply(testItems())
	assert.Len(t, got, 3)
}

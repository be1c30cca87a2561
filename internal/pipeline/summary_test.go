package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestSortItems_ByScore(t *testing.T) {
	items := testItems()
	SortItems(items, SortByScore)

	assert.Equal(t, []string{"1", "2", "3"}, ids(items))
}

func TestSortItems_ByName(t *testing.T) {
	items := testItems()
	SortItems(items, SortByName)

	// The error item has no profile and sorts by filename.
	assert.Equal(t, "Alice Johnson", items[0].CandidateName())
	assert.Equal(t, "Bob Lee", items[1].CandidateName())
	assert.Equal(t, "corrupt.pdf", items[2].CandidateName())
}

func TestSortItems_ByYears(t *testing.T) {
	items := testItems()
	SortItems(items, SortByYears)

	assert.Equal(t, []string{"1", "2", "3"}, ids(items))
}

func TestSortItems_ScoreTieFallsBackToName(t *testing.T) {
	items := []*Item{
		{ID: "b", Profile: &types.CandidateProfile{Name: "Zoe"}, Match: &types.MatchResult{MatchScore: 0.5}},
		{ID: "a", Profile: &types.CandidateProfile{Name: "Amy"}, Match: &types.MatchResult{MatchScore: 0.5}},
	}
	SortItems(items, SortByScore)
	assert.Equal(t, []string{"a", "b"}, ids(items))
}

func ids(items []*Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestSummarize(t *testing.T) {
	s := Summarize(testItems())

	assert.Equal(t, 3, s.TotalCandidates)
	assert.Equal(t, 2, s.Completed)
	assert.Equal(t, 1, s.Errors)
	assert.Equal(t, 1, s.ExcellentCount)
	assert.Equal(t, 0, s.GoodCount)
	assert.InDelta(t, 0.7, s.AverageScore, 1e-9)
	assert.InDelta(t, 0.85, s.TopScore, 1e-9)
	assert.Equal(t, 3, s.MinYears)
	assert.Equal(t, 8, s.MaxYears)

	require.NotEmpty(t, s.TopSkills)
	assert.Equal(t, "Docker", s.TopSkills[0].Skill)
	assert.Equal(t, 1, s.TopSkills[0].Count)
	assert.Len(t, s.TopSkills, 3)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TotalCandidates)
	assert.Zero(t, s.AverageScore)
	assert.Empty(t, s.TopSkills)
}

package pipeline

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Filter narrows a batch result's items for review.
type Filter struct {
	MinScore    float64 // inclusive lower bound on the composite score
	MaxScore    float64 // inclusive upper bound; 0 means no upper bound
	Skill       string  // required skill, matched case-insensitively
	Search      string  // substring over candidate name and filename
	StarredOnly bool
	ErrorsOnly  bool
}

// Apply returns the items passing every set criterion, preserving order.
func (f Filter) Apply(items []*Item) []*Item {
	out := make([]*Item, 0, len(items))
	for _, it := range items {
		if f.matches(it) {
			out = append(out, it)
		}
	}
	return out
}

func (f Filter) matches(it *Item) bool {
	if f.ErrorsOnly && it.Status != types.StatusError {
		return false
	}
	if f.StarredOnly && !it.Starred {
		return false
	}
	score := it.Score()
	if score < f.MinScore {
		return false
	}
	if f.MaxScore > 0 && score > f.MaxScore {
		return false
	}
	if f.Skill != "" && !hasSkill(it, f.Skill) {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(it.CandidateName()), needle) &&
			!strings.Contains(strings.ToLower(it.Filename), needle) {
			return false
		}
	}
	return true
}

func hasSkill(it *Item, skill string) bool {
	if it.Profile == nil {
		return false
	}
	for _, s := range it.Profile.Skills {
		if strings.EqualFold(s, skill) {
			return true
		}
	}
	return false
}

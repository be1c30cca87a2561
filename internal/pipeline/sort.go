package pipeline

import (
	"sort"
	"strings"
)

// SortKey selects the ordering for SortItems.
type SortKey string

const (
	SortByScore SortKey = "score"  // composite score, high to low
	SortByName  SortKey = "name"   // candidate name, A to Z
	SortByYears SortKey = "years"  // years of experience, high to low
	SortByTime  SortKey = "upload" // upload time, newest first
)

// SortItems orders items in place. Ties fall back to candidate name so the
// ordering is stable across runs.
func SortItems(items []*Item, key SortKey) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch key {
		case SortByName:
			return nameLess(a, b)
		case SortByYears:
			ya, yb := yearsOf(a), yearsOf(b)
			if ya != yb {
				return ya > yb
			}
		case SortByTime:
			if a.UploadTime != b.UploadTime {
				return a.UploadTime > b.UploadTime
			}
		default:
			sa, sb := a.Score(), b.Score()
			if sa != sb {
				return sa > sb
			}
		}
		return nameLess(a, b)
	})
}

func nameLess(a, b *Item) bool {
	return strings.ToLower(a.CandidateName()) < strings.ToLower(b.CandidateName())
}

func yearsOf(it *Item) int {
	if it.Profile == nil {
		return 0
	}
	return it.Profile.YearsExperience
}

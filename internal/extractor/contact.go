package extractor

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Grouped pattern first so area-code formatting can apply; the plain
	// digit-run pattern is the raw fallback.
	phoneGroupedRe = regexp.MustCompile(`\+?1?[-.\s]?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`)
	phonePlainRe   = regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`)

	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
	websiteRe  = regexp.MustCompile(`https?://[-\w.]+(?::\d+)?(?:/[\w/_.%-]*)?(?:\?[\w&=%.-]*)?`)
)

// extractEmail returns the first email address in text, or "".
func extractEmail(text string) string {
	return emailRe.FindString(text)
}

// extractPhone returns the first phone number in text, normalized to
// "(XXX) XXX-XXXX" when the area-code grouping is recognized, or "".
func extractPhone(text string) string {
	if m := phoneGroupedRe.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("(%s) %s-%s", m[1], m[2], m[3])
	}
	return phonePlainRe.FindString(text)
}

// ExtractContactInfo scans text for every contact handle: email addresses,
// phone numbers, LinkedIn and GitHub profiles, and websites. Each list is
// deduplicated and sorted.
func ExtractContactInfo(text string) *types.ContactInfo {
	phones := make([]string, 0)
	for _, m := range phoneGroupedRe.FindAllStringSubmatch(text, -1) {
		phones = append(phones, fmt.Sprintf("(%s) %s-%s", m[1], m[2], m[3]))
	}

	return &types.ContactInfo{
		Emails:   dedupeSorted(emailRe.FindAllString(text, -1)),
		Phones:   dedupeSorted(phones),
		LinkedIn: dedupeSorted(linkedinRe.FindAllString(text, -1)),
		GitHub:   dedupeSorted(githubRe.FindAllString(text, -1)),
		Websites: dedupeSorted(websiteRe.FindAllString(text, -1)),
	}
}

func dedupeSorted(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

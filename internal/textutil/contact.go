package textutil

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
)

var (
	emailValidRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nonDigitRe   = regexp.MustCompile(`\D`)
	fourDigitRe  = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// ValidateEmail reports whether email is a plausible address.
func ValidateEmail(email string) bool {
	return emailValidRe.MatchString(email)
}

// ValidatePhone reports whether phone contains a valid US number (10 digits,
// or 11 with a leading country code).
func ValidatePhone(phone string) bool {
	n := len(nonDigitRe.ReplaceAllString(phone, ""))
	return n == 10 || n == 11
}

// FormatPhone formats a phone number as (XXX) XXX-XXXX, or +1 (XXX) XXX-XXXX
// for 11-digit numbers with a leading 1. Unformattable input is returned as-is.
func FormatPhone(phone string) string {
	digits := nonDigitRe.ReplaceAllString(phone, "")
	switch {
	case len(digits) == 10:
		return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
	case len(digits) == 11 && digits[0] == '1':
		return fmt.Sprintf("+1 (%s) %s-%s", digits[1:4], digits[4:7], digits[7:])
	default:
		return phone
	}
}

// ExtractYears returns the sorted, deduplicated 4-digit years (1900-2099)
// found in text.
func ExtractYears(text string) []int {
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, m := range fourDigitRe.FindAllString(text, -1) {
		y, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if _, dup := seen[y]; dup {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

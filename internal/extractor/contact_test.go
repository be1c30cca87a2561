package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmail(t *testing.T) {
	assert.Equal(t, "jane@example.com", extractEmail("Contact jane@example.com or call"))
	assert.Empty(t, extractEmail("no address here"))
}

func TestExtractPhone_Formats(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Call 555-123-4567 today", "(555) 123-4567"},
		{"Call (555) 123-4567 today", "(555) 123-4567"},
		{"Call +1 555.123.4567 today", "(555) 123-4567"},
		{"no number", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extractPhone(tt.input), tt.input)
	}
}

func TestExtractContactInfo(t *testing.T) {
	text := `Reach me at jane@example.com or jane.work@corp.io.
Phone: 555-123-4567 or 555-987-6543.
Profiles: linkedin.com/in/janedoe and github.com/janedoe
Portfolio: https://janedoe.dev/projects`

	info := ExtractContactInfo(text)

	assert.Equal(t, []string{"jane.work@corp.io", "jane@example.com"}, info.Emails)
	assert.Equal(t, []string{"(555) 123-4567", "(555) 987-6543"}, info.Phones)
	assert.Equal(t, []string{"linkedin.com/in/janedoe"}, info.LinkedIn)
	assert.Equal(t, []string{"github.com/janedoe"}, info.GitHub)
	assert.Equal(t, []string{"https://janedoe.dev/projects"}, info.Websites)
}

func TestExtractContactInfo_Deduplicates(t *testing.T) {
	info := ExtractContactInfo("jane@example.com again jane@example.com")
	assert.Equal(t, []string{"jane@example.com"}, info.Emails)
}

func TestExtractContactInfo_Empty(t *testing.T) {
	info := ExtractContactInfo("")
	assert.Empty(t, info.Emails)
	assert.Empty(t, info.Phones)
	assert.Empty(t, info.Websites)
}

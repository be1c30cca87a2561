package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("jane.doe@example.com"))
	assert.True(t, ValidateEmail("dev+tag@sub.domain.io"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
	assert.False(t, ValidateEmail(""))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("(555) 123-4567"))
	assert.True(t, ValidatePhone("555.123.4567"))
	assert.True(t, ValidatePhone("1-555-123-4567"))
	assert.False(t, ValidatePhone("12345"))
	assert.False(t, ValidatePhone(""))
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "(555) 123-4567", FormatPhone("5551234567"))
	assert.Equal(t, "(555) 123-4567", FormatPhone("555.123.4567"))
	assert.Equal(t, "+1 (555) 123-4567", FormatPhone("1 555 123 4567"))
	// Unformattable input passes through unchanged.
	assert.Equal(t, "12345", FormatPhone("12345"))
}

func TestExtractYears(t *testing.T) {
	years := ExtractYears("Worked 2018 - 2022, then 2022 to Present. Graduated 1999.")
	assert.Equal(t, []int{1999, 2018, 2022}, years)
}

func TestExtractYears_IgnoresNonYearNumbers(t *testing.T) {
	years := ExtractYears("Managed 5000 servers worth $1200000 since 2020")
	assert.Equal(t, []int{2020}, years)
}

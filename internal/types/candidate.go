// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CandidateProfile represents the structured information extracted from one resume.
// It is created once per file and never mutated afterwards. Fields that could not
// be extracted hold their documented defaults (empty string, empty slice, zero),
// never nil, so downstream aggregation code does not special-case missing data.
type CandidateProfile struct {
	Filename         string            `json:"filename"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	Location         string            `json:"location"`
	Skills           []string          `json:"skills"`
	Experience       []ExperienceEntry `json:"experience"`
	YearsExperience  int               `json:"years_experience"`
	Education        []EducationEntry  `json:"education"`
	Certifications   []string          `json:"certifications"`
	Projects         []Project         `json:"projects"`
	Languages        []string          `json:"languages"`
	Awards           []string          `json:"awards"`
	ReadabilityScore float64           `json:"readability_score"`
	TextLength       int               `json:"text_length"`
	ParsedAt         string            `json:"parsed_at"` // RFC3339

	// Status is "completed" for a normal extraction and "error" when the
	// top-level parse recovered from an unexpected failure. ErrorMessage is
	// only set in the error case.
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// ExperienceEntry represents one position in the work history, in document order.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"` // raw duration string, e.g. "2018 - 2022" or "2020 - Present"
	Description string `json:"description"`
}

// EducationEntry represents one degree. Year is empty when not stated.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year,omitempty"`
}

// Project represents an entry from a PROJECTS/PORTFOLIO section.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ContactInfo holds every contact handle found in a text, deduplicated.
type ContactInfo struct {
	Emails   []string `json:"emails"`
	Phones   []string `json:"phones"`
	LinkedIn []string `json:"linkedin"`
	GitHub   []string `json:"github"`
	Websites []string `json:"websites"`
}

// Profile status values.
const (
	StatusCompleted = "completed"
	StatusError     = "error"
)

// NewCandidateProfile returns a profile with all sequence fields initialized
// so an unparsed profile still marshals with empty arrays rather than nulls.
func NewCandidateProfile(filename string) *CandidateProfile {
	return &CandidateProfile{
		Filename:       filename,
		Skills:         []string{},
		Experience:     []ExperienceEntry{},
		Education:      []EducationEntry{},
		Certifications: []string{},
		Projects:       []Project{},
		Languages:      []string{},
		Awards:         []string{},
		Status:         StatusCompleted,
	}
}

package types

import "strings"

// JobRequirement represents the caller-supplied description of the role being
// matched against. It is ephemeral: built per request, never stored.
type JobRequirement struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
}

// NewJobRequirement builds a JobRequirement from free text plus a
// comma-separated skill list. Blank entries after splitting are discarded, so
// malformed input like "Go,,  ,React" degrades to ["Go", "React"].
func NewJobRequirement(title, description, requiredSkillsCSV string) *JobRequirement {
	return &JobRequirement{
		Title:          strings.TrimSpace(title),
		Description:    description,
		RequiredSkills: SplitSkillsCSV(requiredSkillsCSV),
	}
}

// SplitSkillsCSV parses a comma-separated skill list into trimmed, non-empty entries.
func SplitSkillsCSV(csv string) []string {
	parts := strings.Split(csv, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

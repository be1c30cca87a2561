package types

// MatchResult represents the scoring engine's output for one
// (CandidateProfile, JobRequirement) pair. All scores are in [0, 1].
// MatchedSkills and MissingSkills partition the job's required skills:
// MissingSkills is exactly RequiredSkills minus MatchedSkills.
type MatchResult struct {
	MatchScore              float64 `json:"match_score"`
	SkillMatchScore         float64 `json:"skill_match_score"`
	ExperienceMatchScore    float64 `json:"experience_match_score"`
	EducationMatchScore     float64 `json:"education_match_score"`
	KeywordMatchScore       float64 `json:"keyword_match_score"`
	SemanticSimilarityScore float64 `json:"semantic_similarity_score"`

	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	KeywordsMatched []string `json:"keywords_matched"`
	Recommendations []string `json:"recommendations"`

	// Breakdown holds each component score formatted as a percentage string,
	// for presentation layers that render score tables.
	Breakdown map[string]string `json:"match_breakdown,omitempty"`

	// Err is set when scoring recovered from an internal failure; the result
	// is then all zeroes with a single recommendation flagging the failure.
	Err string `json:"error,omitempty"`
}

// NewMatchResult returns a zero-valued result with sequence fields
// initialized, the shape returned when scoring fails internally.
func NewMatchResult() *MatchResult {
	return &MatchResult{
		MatchedSkills:   []string{},
		MissingSkills:   []string{},
		KeywordsMatched: []string{},
		Recommendations: []string{},
	}
}

// Package matcher scores how well a resume matches a job requirement using
// five weighted component scores: skills, experience, education, keyword
// (TF-IDF cosine), and semantic (Jaccard blend). Scoring is a deterministic
// pure function of its inputs: identical inputs always produce identical
// results.
package matcher

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Component weights for the composite score.
const (
	skillsWeight     = 0.4
	experienceWeight = 0.3
	educationWeight  = 0.2
	keywordsWeight   = 0.1

	// The weighted overall score is blended with the semantic score.
	// Heuristic constants carried from the reference scoring model; tune
	// only alongside the score-compatibility tests.
	overallBlendWeight  = 0.8
	semanticBlendWeight = 0.2
)

// Matcher computes match scores. It holds no mutable state and is safe for
// concurrent use; any per-call state (the TF-IDF vectorizer) is constructed
// fresh inside each Score call.
type Matcher struct{}

// New returns a Matcher.
func New() *Matcher {
	return &Matcher{}
}

// Score computes the full match result for a resume against a job
// description. requiredSkillsCSV is a comma-separated skill list; blank
// entries are discarded. Score never returns an error: an internal failure
// yields an all-zero result with Err set and a single recommendation
// flagging the failure.
func (m *Matcher) Score(resumeText, jobDescription, jobTitle, requiredSkillsCSV string) (result *types.MatchResult) {
	defer func() {
		if r := recover(); r != nil {
			failed := types.NewMatchResult()
			failed.Err = fmt.Sprintf("%v", r)
			failed.Recommendations = []string{"Error in matching process"}
			result = failed
		}
	}()

	requiredSkills := types.SplitSkillsCSV(requiredSkillsCSV)

	skillScore := computeSkillScore(resumeText, requiredSkills, jobDescription)
	experienceScore := computeExperienceScore(resumeText, jobDescription, jobTitle)
	educationScore := computeEducationScore(resumeText, jobDescription)
	keywordScore := computeKeywordScore(resumeText, jobDescription)
	semanticScore := computeSemanticScore(resumeText, jobDescription, keywordScore)

	overall := skillScore*skillsWeight +
		experienceScore*experienceWeight +
		educationScore*educationWeight +
		keywordScore*keywordsWeight

	finalScore := clamp01(overall*overallBlendWeight + semanticScore*semanticBlendWeight)

	matched, missing := partitionSkills(resumeText, requiredSkills)

	result = &types.MatchResult{
		MatchScore:              finalScore,
		SkillMatchScore:         skillScore,
		ExperienceMatchScore:    experienceScore,
		EducationMatchScore:     educationScore,
		KeywordMatchScore:       keywordScore,
		SemanticSimilarityScore: semanticScore,
		MatchedSkills:           matched,
		MissingSkills:           missing,
		KeywordsMatched:         matchedKeywords(resumeText, jobDescription),
		Recommendations:         Recommendations(skillScore, experienceScore, educationScore, missing),
		Breakdown: map[string]string{
			"skills":     formatPercent(skillScore),
			"experience": formatPercent(experienceScore),
			"education":  formatPercent(educationScore),
			"keywords":   formatPercent(keywordScore),
			"semantic":   formatPercent(semanticScore),
		},
	}
	return result
}

// ScoreJob scores a resume against a structured JobRequirement.
func (m *Matcher) ScoreJob(resumeText string, job *types.JobRequirement) *types.MatchResult {
	csv := ""
	for i, s := range job.RequiredSkills {
		if i > 0 {
			csv += ","
		}
		csv += s
	}
	return m.Score(resumeText, job.Description, job.Title, csv)
}

func formatPercent(score float64) string {
	return fmt.Sprintf("%.1f%%", score*100)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

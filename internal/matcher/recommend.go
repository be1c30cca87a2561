package matcher

import "strings"

// Rule thresholds for recommendations.
const (
	weakSkillThreshold        = 0.6
	weakExperienceThreshold   = 0.5
	overqualifiedThreshold    = 0.9
	weakEducationThreshold    = 0.5
	strongSkillThreshold      = 0.8
	strongExperienceThreshold = 0.7

	maxMissingSkillsListed = 3
)

// Recommendations derives narrative hiring suggestions from the component
// scores. Rules are evaluated in a fixed order and are not mutually
// exclusive; every rule that fires contributes, and a profile that trips no
// rule gets the single default message.
func Recommendations(skillScore, experienceScore, educationScore float64, missingSkills []string) []string {
	recs := make([]string, 0, 4)

	if skillScore < weakSkillThreshold {
		recs = append(recs, "Consider candidates with stronger technical skill alignment")
		if len(missingSkills) > 0 {
			top := missingSkills
			if len(top) > maxMissingSkillsListed {
				top = top[:maxMissingSkillsListed]
			}
			recs = append(recs, "Key missing skills: "+strings.Join(top, ", "))
		}
	}

	if experienceScore < weakExperienceThreshold {
		recs = append(recs, "Candidate may need additional experience for this role")
	} else if experienceScore > overqualifiedThreshold {
		recs = append(recs, "Candidate appears overqualified - consider for senior roles")
	}

	if educationScore < weakEducationThreshold {
		recs = append(recs, "Educational background may not fully align with requirements")
	}

	if skillScore > strongSkillThreshold && experienceScore > strongExperienceThreshold {
		recs = append(recs, "Strong candidate - recommend for interview")
	}

	if len(recs) == 0 {
		recs = append(recs, "Well-balanced candidate profile")
	}

	return recs
}

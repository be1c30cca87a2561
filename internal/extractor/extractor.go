// Package extractor turns free-form resume text into a structured
// CandidateProfile. Every field extractor is total: it returns its documented
// default when nothing matches, so one field can never block the others.
package extractor

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/textutil"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/jonathan/resume-analyzer/internal/vocab"
)

// nameNotFound is the sentinel returned when no candidate name is detected.
const nameNotFound = "Name not found"

// Extractor extracts structured candidate data from resume text.
// The zero value is not usable; construct with New.
type Extractor struct {
	tagger EntityTagger
	now    func() time.Time
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTagger replaces the default NER tagger. Passing nil disables the NER
// strategies entirely; the regex fallbacks still run.
func WithTagger(t EntityTagger) Option {
	return func(e *Extractor) { e.tagger = t }
}

// WithClock replaces the wall clock used to resolve "Present" durations.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) { e.now = now }
}

// New returns an Extractor backed by the prose NER model.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		tagger: proseTagger{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ParseResume extracts a CandidateProfile from resume text. It never returns
// an error: an unexpected failure in any extractor yields a degraded profile
// with Status set to "error" and all structured fields at their defaults.
func (e *Extractor) ParseResume(text, filename string) (profile *types.CandidateProfile) {
	profile = types.NewCandidateProfile(filename)

	defer func() {
		if r := recover(); r != nil {
			errored := types.NewCandidateProfile(filename)
			errored.Name = "Error parsing resume"
			errored.Status = types.StatusError
			errored.ErrorMessage = fmt.Sprintf("%v", r)
			errored.ParsedAt = e.now().UTC().Format(time.RFC3339)
			profile = errored
		}
	}()

	// Two views of the document: lineText keeps line structure for the
	// section-oriented extractors, flat is the fully normalized form the
	// matcher and readability metrics are defined over.
	lineText := textutil.CleanLines(text)
	flat := textutil.Normalize(text)

	profile.Name = e.extractName(lineText)
	profile.Email = extractEmail(flat)
	profile.Phone = extractPhone(flat)
	profile.Location = e.extractLocation(flat)

	profile.Skills = vocab.ExtractSkills(lineText)

	profile.Experience = extractExperience(lineText)
	profile.YearsExperience = e.calculateYearsExperience(profile.Experience)

	profile.Education = extractEducation(lineText)

	profile.Certifications = extractCertifications(flat)
	profile.Projects = extractProjects(lineText)
	profile.Languages = extractLanguages(flat)
	profile.Awards = extractAwards(lineText)

	profile.ReadabilityScore = textutil.FleschReadingEase(flat)
	profile.TextLength = len(flat)
	profile.ParsedAt = e.now().UTC().Format(time.RFC3339)

	return profile
}

func trimmed(s string) string { return strings.TrimSpace(s) }

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

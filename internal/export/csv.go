package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/pipeline"
)

var csvHeader = []string{
	"Name",
	"Email",
	"Phone",
	"Location",
	"Match Score",
	"Skills Match",
	"Experience Match",
	"Education Match",
	"Skills",
	"Years Experience",
	"Education",
	"Certifications",
	"Starred",
	"Notes",
	"Upload Time",
	"Filename",
}

// WriteCSV writes one row per item with percentage-formatted scores.
func WriteCSV(w io.Writer, items []*pipeline.Item) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, it := range items {
		if err := cw.Write(csvRow(it)); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", it.Filename, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(it *pipeline.Item) []string {
	var (
		name, email, phone, location string
		skills, education, certs     string
		years                        int
	)
	if p := it.Profile; p != nil {
		name, email, phone, location = p.Name, p.Email, p.Phone, p.Location
		skills = strings.Join(p.Skills, ", ")
		certs = strings.Join(p.Certifications, "; ")
		years = p.YearsExperience

		parts := make([]string, 0, len(p.Education))
		for _, edu := range p.Education {
			parts = append(parts, fmt.Sprintf("%s from %s", edu.Degree, edu.Institution))
		}
		education = strings.Join(parts, "; ")
	}

	var match, skillScore, expScore, eduScore string
	if m := it.Match; m != nil {
		match = formatPercent(m.MatchScore)
		skillScore = formatPercent(m.SkillMatchScore)
		expScore = formatPercent(m.ExperienceMatchScore)
		eduScore = formatPercent(m.EducationMatchScore)
	}

	starred := ""
	if it.Starred {
		starred = "yes"
	}

	return []string{
		name,
		email,
		phone,
		location,
		match,
		skillScore,
		expScore,
		eduScore,
		skills,
		strconv.Itoa(years),
		education,
		certs,
		starred,
		it.Notes,
		it.UploadTime,
		it.Filename,
	}
}

package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func exportTime() time.Time {
	return time.Date(2024, 1, 15, 9, 30, 5, 0, time.UTC)
}

func exportItems() []*pipeline.Item {
	return []*pipeline.Item{
		{
			ID:         "f47ac10b-58cc-4372-a567-0e02b2c3d479",
			Filename:   "alice.pdf",
			FileSize:   2048,
			UploadTime: "2024-01-15T09:00:00Z",
			Status:     types.StatusCompleted,
			Starred:    true,
			Notes:      "strong backend background",
			Profile: &types.CandidateProfile{
				Name:            "Alice Johnson",
				Email:           "alice@example.com",
				Phone:           "(555) 123-4567",
				Location:        "Austin, TX",
				Skills:          []string{"Python", "Docker"},
				YearsExperience: 8,
				Education: []types.EducationEntry{
					{Degree: "B.S. Computer Science", Institution: "UT Austin", Year: "2015"},
				},
				Certifications: []string{"AWS Certified"},
				Status:         types.StatusCompleted,
			},
			Match: &types.MatchResult{
				MatchScore:           0.853,
				SkillMatchScore:      1.0,
				ExperienceMatchScore: 0.815,
				EducationMatchScore:  1.0,
				MatchedSkills:        []string{"Python", "Docker"},
				MissingSkills:        []string{},
				KeywordsMatched:      []string{"backend"},
				Recommendations:      []string{"Strong candidate - recommend for interview"},
			},
		},
		{
			ID:       "9b2d7a12-0c4e-4d0b-8a63-5f8d1c2e3f40",
			Filename: "corrupt.pdf",
			Status:   types.StatusError,
			Error:    "extracting pdf text: open reader failed",
		},
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "resume_analysis_20240115_093005.csv", Filename("csv", exportTime()))
	assert.Equal(t, "resume_analysis_20240115_093005.json", Filename("json", exportTime()))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, exportItems()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, csvHeader, rows[0])

	alice := rows[1]
	assert.Equal(t, "Alice Johnson", alice[0])
	assert.Equal(t, "alice@example.com", alice[1])
	assert.Equal(t, "85.3%", alice[4])
	assert.Equal(t, "100.0%", alice[5])
	assert.Equal(t, "Python, Docker", alice[8])
	assert.Equal(t, "8", alice[9])
	assert.Equal(t, "B.S. Computer Science from UT Austin", alice[10])
	assert.Equal(t, "yes", alice[12])
	assert.Equal(t, "alice.pdf", alice[15])

	// The error item still exports a row, with empty profile columns.
	errored := rows[2]
	assert.Empty(t, errored[0])
	assert.Equal(t, "corrupt.pdf", errored[15])
}

func TestWriteJSON_EnvelopeAndSchema(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, exportItems(), exportTime()))

	var env Envelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.Equal(t, "2024-01-15T09:30:05Z", env.ExportInfo.Timestamp)
	assert.Equal(t, 2, env.ExportInfo.TotalCandidates)
	assert.Equal(t, exportVersion, env.ExportInfo.Version)
	require.Len(t, env.Candidates, 2)

	assert.NoError(t, schemas.ValidateExport(buf.String()))
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, exportItems(), exportTime()))
	report := buf.String()

	assert.Contains(t, report, "# Resume Analysis Report")
	assert.Contains(t, report, "**Generated on:** 2024-01-15 09:30:05")
	assert.Contains(t, report, "**Total Candidates Analyzed:** 2")
	assert.Contains(t, report, "**Failed Analyses:** 1")
	assert.Contains(t, report, "### 1. Alice Johnson")
	assert.Contains(t, report, "**Match Score:** 85.3%")
	assert.Contains(t, report, "**Top Skills:** Python, Docker")
	assert.Contains(t, report, "**Education:** B.S. Computer Science")
	assert.Contains(t, report, "- **Docker:** 1 candidates (50.0%)")
}

func TestWriteMarkdown_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, nil, exportTime()))
	assert.Contains(t, buf.String(), "**Total Candidates Analyzed:** 0")
}

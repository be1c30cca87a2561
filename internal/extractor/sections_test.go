package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCertifications(t *testing.T) {
	found := extractCertifications("AWS Certified Solutions Architect and Scrum Master, 2021")
	assert.Equal(t, []string{"AWS Certified", "Scrum Master"}, found)
}

func TestExtractCertifications_None(t *testing.T) {
	assert.Empty(t, extractCertifications("no credentials listed"))
}

func TestExtractLanguages(t *testing.T) {
	found := extractLanguages("Fluent in English and Spanish, conversational German")
	assert.Equal(t, []string{"English", "Spanish", "German"}, found)
}

func TestExtractAwards(t *testing.T) {
	text := `AWARDS
Employee of the Year 2022
Won first prize at the company hackathon
Attended a conference`

	awards := extractAwards(text)
	require.Len(t, awards, 2)
	assert.Contains(t, awards, "Employee of the Year 2022")
	assert.Contains(t, awards, "Won first prize at the company hackathon")
}

func TestExtractAwards_SkipsShortLines(t *testing.T) {
	assert.Empty(t, extractAwards("award\nprize"))
}

func TestExtractProjects_Grouping(t *testing.T) {
	text := `PROJECTS
Inventory Tracker
Built a warehouse inventory system
Added barcode scanning support

Weather Dashboard
Real-time weather visualizations

EDUCATION
B.S. Computer Science`

	projects := extractProjects(text)
	require.Len(t, projects, 2)
	assert.Equal(t, "Inventory Tracker", projects[0].Name)
	assert.Equal(t, "Built a warehouse inventory system Added barcode scanning support", projects[0].Description)
	assert.Equal(t, "Weather Dashboard", projects[1].Name)
	assert.Equal(t, "Real-time weather visualizations", projects[1].Description)
}

func TestExtractProjects_NoSection(t *testing.T) {
	assert.Empty(t, extractProjects("EXPERIENCE\nEngineer at Acme"))
}

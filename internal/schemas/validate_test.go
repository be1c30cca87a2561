package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validExport = `{
	"export_info": {
		"timestamp": "2024-01-15T09:30:05Z",
		"total_candidates": 1,
		"version": "2.0"
	},
	"candidates": [
		{
			"id": "f47ac10b-58cc-4372-a567-0e02b2c3d479",
			"filename": "alice.pdf",
			"status": "completed",
			"starred": false,
			"match": {"match_score": 0.85}
		}
	]
}`

func TestValidateExport_Valid(t *testing.T) {
	assert.NoError(t, ValidateExport(validExport))
}

func TestValidateExport_MissingExportInfo(t *testing.T) {
	err := ValidateExport(`{"candidates": []}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateExport_ScoreOutOfRange(t *testing.T) {
	doc := `{
		"export_info": {"timestamp": "t", "total_candidates": 1, "version": "2.0"},
		"candidates": [
			{"id": "1", "filename": "a.pdf", "status": "completed", "match": {"match_score": 1.5}}
		]
	}`
	err := ValidateExport(doc)
	require.Error(t, err)
}

func TestValidateExport_BadStatus(t *testing.T) {
	doc := `{
		"export_info": {"timestamp": "t", "total_candidates": 1, "version": "2.0"},
		"candidates": [
			{"id": "1", "filename": "a.pdf", "status": "pending"}
		]
	}`
	assert.Error(t, ValidateExport(doc))
}

func TestValidateProfile(t *testing.T) {
	valid := `{
		"filename": "alice.pdf",
		"name": "Alice Johnson",
		"skills": ["Python"],
		"years_experience": 8,
		"status": "completed"
	}`
	assert.NoError(t, ValidateProfile(valid))

	invalid := `{"filename": "alice.pdf", "name": "Alice", "skills": "Python", "status": "completed"}`
	assert.Error(t, ValidateProfile(invalid))
}

func TestValidateExportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(validExport), 0o644))
	assert.NoError(t, ValidateExportFile(path))
}

func TestValidateExportFile_Missing(t *testing.T) {
	err := ValidateExportFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestValidateJSONString_InvalidSchema(t *testing.T) {
	err := ValidateJSONString(`{not a schema`, `{}`)
	require.Error(t, err)

	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok, "error should be SchemaLoadError type")
}

package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jonathan/resume-analyzer/internal/pipeline"
)

// exportVersion is the schema version stamped into JSON exports.
const exportVersion = "2.0"

// Envelope is the top-level JSON export document.
type Envelope struct {
	ExportInfo Info             `json:"export_info"`
	Candidates []*pipeline.Item `json:"candidates"`
}

// Info describes when and how an export was produced.
type Info struct {
	Timestamp       string `json:"timestamp"`
	TotalCandidates int    `json:"total_candidates"`
	Version         string `json:"version"`
}

// WriteJSON writes the full item data wrapped in an export envelope.
func WriteJSON(w io.Writer, items []*pipeline.Item, now time.Time) error {
	env := Envelope{
		ExportInfo: Info{
			Timestamp:       now.UTC().Format(time.RFC3339),
			TotalCandidates: len(items),
			Version:         exportVersion,
		},
		Candidates: items,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("failed to encode JSON export: %w", err)
	}
	return nil
}

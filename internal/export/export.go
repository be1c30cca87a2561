// Package export renders batch analysis results as CSV, JSON, and Markdown
// reports.
package export

import (
	"fmt"
	"time"
)

const timestampLayout = "20060102_150405"

// Filename builds the conventional report name for an export, e.g.
// "resume_analysis_20240115_093005.csv".
func Filename(extension string, now time.Time) string {
	return fmt.Sprintf("resume_analysis_%s.%s", now.Format(timestampLayout), extension)
}

func formatPercent(score float64) string {
	return fmt.Sprintf("%.1f%%", score*100)
}

package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/pipeline"
)

const (
	reportTopCandidates = 10
	reportTopSkills     = 5
)

// WriteMarkdown writes an analysis report: executive summary, top candidates,
// and a skill frequency table. Items are assumed sorted by score; only the
// summary reads all of them.
func WriteMarkdown(w io.Writer, items []*pipeline.Item, now time.Time) error {
	summary := pipeline.Summarize(items)

	var b strings.Builder
	b.WriteString("# Resume Analysis Report\n\n")
	fmt.Fprintf(&b, "**Generated on:** %s\n\n", now.Format("2006-01-02 15:04:05"))

	b.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&b, "- **Total Candidates Analyzed:** %d\n", summary.TotalCandidates)
	fmt.Fprintf(&b, "- **Excellent Matches (80%%+):** %d (%s)\n",
		summary.ExcellentCount, share(summary.ExcellentCount, summary.TotalCandidates))
	fmt.Fprintf(&b, "- **Good Matches (60-79%%):** %d (%s)\n",
		summary.GoodCount, share(summary.GoodCount, summary.TotalCandidates))
	fmt.Fprintf(&b, "- **Average Match Score:** %s\n", formatPercent(summary.AverageScore))
	if summary.Errors > 0 {
		fmt.Fprintf(&b, "- **Failed Analyses:** %d\n", summary.Errors)
	}
	b.WriteString("\n")

	b.WriteString("## Top Performing Candidates\n\n")
	for i, it := range items {
		if i >= reportTopCandidates {
			break
		}
		writeCandidate(&b, i+1, it)
	}

	if len(summary.TopSkills) > 0 {
		b.WriteString("## Skills Analysis\n\n")
		b.WriteString("### Most Common Skills\n\n")
		for _, sc := range summary.TopSkills {
			fmt.Fprintf(&b, "- **%s:** %d candidates (%s)\n",
				sc.Skill, sc.Count, share(sc.Count, summary.TotalCandidates))
		}
		b.WriteString("\n")
	}

	if summary.Completed > 0 {
		b.WriteString("## Recommendations\n\n")
		fmt.Fprintf(&b, "- Contact the top %d candidates first.\n",
			minInt(reportTopCandidates, summary.ExcellentCount+summary.GoodCount))
		fmt.Fprintf(&b, "- Experience range across candidates: %d-%d years.\n",
			summary.MinYears, summary.MaxYears)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeCandidate(b *strings.Builder, rank int, it *pipeline.Item) {
	fmt.Fprintf(b, "### %d. %s\n\n", rank, it.CandidateName())
	fmt.Fprintf(b, "- **Match Score:** %s\n", formatPercent(it.Score()))

	if p := it.Profile; p != nil {
		fmt.Fprintf(b, "- **Email:** %s\n", orNA(p.Email))
		fmt.Fprintf(b, "- **Phone:** %s\n", orNA(p.Phone))
		skills := p.Skills
		if len(skills) > reportTopSkills {
			skills = skills[:reportTopSkills]
		}
		fmt.Fprintf(b, "- **Top Skills:** %s\n", orNA(strings.Join(skills, ", ")))
		fmt.Fprintf(b, "- **Experience:** %d years\n", p.YearsExperience)
		degree := ""
		if len(p.Education) > 0 {
			degree = p.Education[0].Degree
		}
		fmt.Fprintf(b, "- **Education:** %s\n", orNA(degree))
	}
	b.WriteString("\n")
}

func share(count, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(count)/float64(total)*100)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

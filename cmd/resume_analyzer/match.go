package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/matcher"
)

var matchCommand = &cobra.Command{
	Use:   "match <resume-file>",
	Short: "Score a single resume against a job description",
	Long:  "Scores one resume against a job description file using weighted skill, experience, education, and keyword matching, and prints the match result as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatchCmd,
}

var (
	matchJob      string
	matchJobTitle string
	matchSkills   string
)

func init() {
	matchCommand.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job description text file (required)")
	matchCommand.Flags().StringVarP(&matchJobTitle, "title", "t", "", "Job title used for the title match")
	matchCommand.Flags().StringVarP(&matchSkills, "skills", "s", "", "Comma-separated required skills")
	_ = matchCommand.MarkFlagRequired("job")

	rootCmd.AddCommand(matchCommand)
}

func runMatchCmd(cmd *cobra.Command, args []string) error {
	resumePath := args[0]
	content, err := os.ReadFile(resumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume %s: %w", resumePath, err)
	}

	resumeText, err := ingestion.ExtractText(content, resumePath)
	if err != nil {
		return fmt.Errorf("failed to extract text from %s: %w", resumePath, err)
	}

	jobText, err := os.ReadFile(matchJob)
	if err != nil {
		return fmt.Errorf("failed to read job description %s: %w", matchJob, err)
	}

	result := matcher.New().Score(resumeText, string(jobText), matchJobTitle, matchSkills)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

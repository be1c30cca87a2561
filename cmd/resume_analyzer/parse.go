package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/extractor"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
)

var parseCommand = &cobra.Command{
	Use:   "parse <resume-file>",
	Short: "Extract a structured candidate profile from a single resume",
	Long:  "Extracts contact details, skills, work history, education, and text statistics from one resume file and prints the profile as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCommand)
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read resume %s: %w", path, err)
	}

	text, err := ingestion.ExtractText(content, path)
	if err != nil {
		return fmt.Errorf("failed to extract text from %s: %w", path, err)
	}

	profile := extractor.New().ParseResume(text, filepath.Base(path))

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(profile)
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/export"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a directory of resumes against a job description",
	Long: `Runs the full analysis pipeline over every resume file in a directory: text extraction -> profile parsing -> match scoring, then writes a report.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath string
	analyzeJob        string
	analyzeResumesDir string
	analyzeJobTitle   string
	analyzeSkills     string
	analyzeWorkers    int
	analyzeOutputDir  string
	analyzeFormat     string
	analyzeVerbose    bool
	analyzeLogJSON    bool
)

func init() {
	// Config file flag (processed first)
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file")
	analyzeCommand.Flags().StringVarP(&analyzeResumesDir, "resumes", "r", "", "Directory of resume files (.pdf, .docx, .txt)")
	analyzeCommand.Flags().StringVarP(&analyzeJobTitle, "title", "t", "", "Job title used for the title match")
	analyzeCommand.Flags().StringVarP(&analyzeSkills, "skills", "s", "", "Comma-separated required skills")
	analyzeCommand.Flags().IntVarP(&analyzeWorkers, "workers", "w", 0, "Number of concurrent analysis workers")
	analyzeCommand.Flags().StringVarP(&analyzeOutputDir, "output", "o", "", "Directory for exported reports (default: current directory)")
	analyzeCommand.Flags().StringVarP(&analyzeFormat, "format", "f", "", "Report format: json, csv, or markdown (default: json)")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")
	analyzeCommand.Flags().BoolVar(&analyzeLogJSON, "log-json", false, "Emit JSON-encoded logs")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("resumes") {
		cfg.ResumesDir = analyzeResumesDir
	}
	if cmd.Flags().Changed("title") {
		cfg.JobTitle = analyzeJobTitle
	}
	if cmd.Flags().Changed("skills") {
		cfg.RequiredSkills = analyzeSkills
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = analyzeWorkers
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = analyzeOutputDir
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = analyzeFormat
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
	if cmd.Flags().Changed("log-json") {
		cfg.LogJSON = analyzeLogJSON
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Workers:   config.DefaultWorkers,
		OutputDir: ".",
		Format:    "json",
	})

	if cfg.Job == "" {
		return fmt.Errorf("a job description is required (use --job or a config file)")
	}
	if cfg.ResumesDir == "" {
		return fmt.Errorf("a resumes directory is required (use --resumes or a config file)")
	}

	log, err := logger.New(cfg.LogJSON, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	job, err := loadJobRequirement(cfg.Job, cfg.JobTitle, cfg.RequiredSkills)
	if err != nil {
		return err
	}

	files, err := collectResumeFiles(cfg.ResumesDir, log)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no supported resume files found in %s", cfg.ResumesDir)
	}

	runner := pipeline.NewRunner(log, cfg.Workers)
	result, err := runner.Run(ctx, job, files)
	if err != nil {
		return err
	}

	reportPath, err := writeReport(result, cfg.OutputDir, cfg.Format)
	if err != nil {
		return err
	}

	printSummary(cmd, result)
	cmd.Printf("\nReport written to %s\n", reportPath)
	return nil
}

// loadJobRequirement reads the job description file and applies overrides.
func loadJobRequirement(jobPath, title, skillsCSV string) (*types.JobRequirement, error) {
	data, err := os.ReadFile(jobPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read job description %s: %w", jobPath, err)
	}
	return types.NewJobRequirement(title, string(data), skillsCSV), nil
}

// collectResumeFiles reads every supported file in dir, non-recursively.
func collectResumeFiles(dir string, log *zap.Logger) ([]pipeline.File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resumes directory %s: %w", dir, err)
	}

	var files []pipeline.File
	for _, entry := range entries {
		if entry.IsDir() || !ingestion.Supported(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			log.Warn("skipping unreadable file", zap.String("path", path), zap.Error(err))
			continue
		}
		files = append(files, pipeline.File{Name: entry.Name(), Content: content})
	}
	return files, nil
}

// writeReport renders the batch result in the requested format and returns
// the report path. JSON exports are checked against the export schema before
// being reported as written.
func writeReport(result *pipeline.BatchResult, outputDir, format string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	now := time.Now()
	var ext string
	switch format {
	case "csv":
		ext = "csv"
	case "markdown":
		ext = "md"
	case "json", "":
		ext = "json"
	default:
		return "", fmt.Errorf("unknown report format %q (expected json, csv, or markdown)", format)
	}

	path := filepath.Join(outputDir, export.Filename(ext, now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	switch ext {
	case "csv":
		err = export.WriteCSV(f, result.Items)
	case "md":
		err = export.WriteMarkdown(f, result.Items, now)
	default:
		err = export.WriteJSON(f, result.Items, now)
	}
	if err != nil {
		return "", err
	}

	if ext == "json" {
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("failed to flush report file %s: %w", path, err)
		}
		if err := schemas.ValidateExportFile(path); err != nil {
			return "", fmt.Errorf("exported report failed schema validation: %w", err)
		}
	}

	return path, nil
}

func printSummary(cmd *cobra.Command, result *pipeline.BatchResult) {
	summary := pipeline.Summarize(result.Items)

	cmd.Printf("Batch %s finished in %s\n", result.BatchID, result.Duration)
	cmd.Printf("  Candidates analyzed: %d (%d errors)\n", summary.TotalCandidates, summary.Errors)
	cmd.Printf("  Excellent matches:   %d\n", summary.ExcellentCount)
	cmd.Printf("  Good matches:        %d\n", summary.GoodCount)
	cmd.Printf("  Average score:       %.1f%%\n", summary.AverageScore*100)

	cmd.Printf("\nTop candidates:\n")
	for i, it := range result.Items {
		if i >= 5 {
			break
		}
		name := it.CandidateName()
		if it.Status == types.StatusError {
			cmd.Printf("  %d. %s (error: %s)\n", i+1, name, it.Error)
			continue
		}
		var skills string
		if it.Match != nil && len(it.Match.MatchedSkills) > 0 {
			skills = " [" + strings.Join(it.Match.MatchedSkills, ", ") + "]"
		}
		cmd.Printf("  %d. %s: %.1f%%%s\n", i+1, name, it.Score()*100, skills)
	}
}

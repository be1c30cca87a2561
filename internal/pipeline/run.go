// Package pipeline provides the high-level orchestration for batch resume analysis.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/extractor"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/matcher"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// File is raw resume input for a batch run.
type File struct {
	Name    string
	Content []byte
}

// Item is the per-resume outcome of a batch run. Starred and Notes are
// reviewer annotations carried through exports; the run itself never sets them.
type Item struct {
	ID         string                  `json:"id"`
	Filename   string                  `json:"filename"`
	FileSize   int64                   `json:"file_size"`
	UploadTime string                  `json:"upload_time"`
	Status     string                  `json:"status"`
	Profile    *types.CandidateProfile `json:"profile,omitempty"`
	Match      *types.MatchResult      `json:"match,omitempty"`
	Starred    bool                    `json:"starred"`
	Notes      string                  `json:"notes,omitempty"`
	Error      string                  `json:"error,omitempty"`
}

// Score returns the composite match score, or 0 when matching never ran.
func (it *Item) Score() float64 {
	if it.Match == nil {
		return 0
	}
	return it.Match.MatchScore
}

// CandidateName returns the extracted name, or the filename as a fallback.
func (it *Item) CandidateName() string {
	if it.Profile != nil && it.Profile.Name != "" {
		return it.Profile.Name
	}
	return it.Filename
}

// BatchResult holds every item of one run, sorted by descending match score.
type BatchResult struct {
	BatchID   string  `json:"batch_id"`
	JobTitle  string  `json:"job_title"`
	StartedAt string  `json:"started_at"`
	Duration  string  `json:"duration"`
	Items     []*Item `json:"items"`
}

// Runner executes resume analysis over a worker pool.
type Runner struct {
	extractor *extractor.Extractor
	matcher   *matcher.Matcher
	log       *zap.Logger
	workers   int
	now       func() time.Time
}

// NewRunner builds a Runner with the given worker pool size. A non-positive
// size runs items sequentially.
func NewRunner(log *zap.Logger, workers int) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	if workers <= 0 {
		workers = 1
	}
	return &Runner{
		extractor: extractor.New(),
		matcher:   matcher.New(),
		log:       log,
		workers:   workers,
		now:       time.Now,
	}
}

// Run analyzes every file against the job requirement. A failing file
// becomes an error item; it never aborts the batch. The only error returned
// is context cancellation.
func (r *Runner) Run(ctx context.Context, job *types.JobRequirement, files []File) (*BatchResult, error) {
	if job == nil {
		return nil, fmt.Errorf("job requirement is nil")
	}

	start := r.now()
	result := &BatchResult{
		BatchID:   uuid.New().String(),
		JobTitle:  job.Title,
		StartedAt: start.UTC().Format(time.RFC3339),
		Items:     make([]*Item, len(files)),
	}

	r.log.Info("starting batch analysis",
		zap.String("batch_id", result.BatchID),
		zap.Int("files", len(files)),
		zap.Int("workers", r.workers))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			result.Items[i] = r.analyzeOne(f, job)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch %s canceled: %w", result.BatchID, err)
	}

	SortItems(result.Items, SortByScore)
	result.Duration = r.now().Sub(start).Round(time.Millisecond).String()

	r.log.Info("batch analysis complete",
		zap.String("batch_id", result.BatchID),
		zap.String("duration", result.Duration))

	return result, nil
}

// analyzeOne runs extraction and matching for a single file. Failures are
// recorded on the item so one bad resume cannot sink the batch.
func (r *Runner) analyzeOne(f File, job *types.JobRequirement) *Item {
	item := &Item{
		ID:         uuid.New().String(),
		Filename:   f.Name,
		FileSize:   int64(len(f.Content)),
		UploadTime: r.now().UTC().Format(time.RFC3339),
		Status:     types.StatusCompleted,
	}

	text, err := ingestion.ExtractText(f.Content, f.Name)
	if err != nil {
		r.log.Warn("text extraction failed",
			zap.String("filename", f.Name),
			zap.Error(err))
		item.Status = types.StatusError
		item.Error = err.Error()
		return item
	}

	profile := r.extractor.ParseResume(text, f.Name)
	item.Profile = profile
	if profile.Status == types.StatusError {
		item.Status = types.StatusError
		item.Error = profile.ErrorMessage
	}

	match := r.matcher.ScoreJob(text, job)
	item.Match = match

	r.log.Debug("resume analyzed",
		zap.String("filename", f.Name),
		zap.String("candidate", item.CandidateName()),
		zap.Float64("score", item.Score()))

	return item
}

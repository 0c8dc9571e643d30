package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"pdf-evidence-be/pkg/processing"

	"github.com/google/uuid"
)

// ProcessingAPI is the slice of the remote API the runner drives.
type ProcessingAPI interface {
	Upload(ctx context.Context, fileName string, content io.Reader, progress processing.ProgressFunc) (*processing.UploadedFile, error)
	Parse(ctx context.Context, fileName string) (*processing.ParseResult, error)
	ExtractEvidence(ctx context.Context, fileName, essayTopic string) (*processing.ExtractResult, error)
}

// StatusNotifier receives one user-visible message per stage transition.
type StatusNotifier interface {
	Notify(ctx context.Context, item Item, message string)
}

// Input is one accepted file with its content.
type Input struct {
	FileName string
	Size     int64
	Content  []byte
}

// Rejection is a file that failed validation; it was never tracked.
type Rejection struct {
	FileName string
	Reason   string
}

// Runner drives accepted files through the pipeline sequentially. Failures
// are isolated per item: a failed stage parks that item in its failure
// terminal and the batch moves on.
type Runner struct {
	tracker  *Tracker
	api      ProcessingAPI
	notifier StatusNotifier
	topic    string
	maxBytes int64
	refresh  func(ctx context.Context)
}

func NewRunner(tracker *Tracker, api ProcessingAPI, notifier StatusNotifier, analysisTopic string, maxBytes int64, refresh func(ctx context.Context)) *Runner {
	return &Runner{
		tracker:  tracker,
		api:      api,
		notifier: notifier,
		topic:    analysisTopic,
		maxBytes: maxBytes,
		refresh:  refresh,
	}
}

// Job pairs a tracked item with its file content for processing.
type Job struct {
	item    Item
	content []byte
}

// Accept validates the batch. Valid files become queued items; invalid ones
// come back as rejections without ever entering the tracker.
func (r *Runner) Accept(inputs []Input) ([]Item, []Rejection, []Job) {
	var (
		accepted []Item
		rejected []Rejection
		jobs     []Job
	)

	for _, in := range inputs {
		if err := ValidateFile(in.FileName, in.Size, r.maxBytes); err != nil {
			ve, ok := err.(*ValidationError)
			if !ok {
				ve = &ValidationError{FileName: in.FileName, Reason: err.Error()}
			}
			rejected = append(rejected, Rejection{FileName: ve.FileName, Reason: ve.Reason})
			continue
		}

		item := r.tracker.Track(in.FileName, in.Size)
		accepted = append(accepted, item)
		jobs = append(jobs, Job{item: item, content: in.Content})
	}

	return accepted, rejected, jobs
}

// Process runs the batch to completion. After every item has reached a
// terminal stage, a best-effort evidence refresh is triggered.
func (r *Runner) Process(ctx context.Context, batch []Job) {
	for _, q := range batch {
		r.processOne(ctx, q)
	}
	if r.refresh != nil {
		r.refresh(ctx)
	}
}

func (r *Runner) processOne(ctx context.Context, q Job) {
	id := q.item.Id

	// Stage 1: upload
	r.transition(ctx, id, StageUploading)

	uploaded, err := r.api.Upload(ctx, q.item.FileName, bytes.NewReader(q.content), func(percent int) {
		r.tracker.SetProgress(id, percent)
	})
	if err != nil {
		r.fail(ctx, id, StageUploadFailed, err)
		return
	}
	r.tracker.SetURL(id, uploaded.URL)
	r.transition(ctx, id, StageUploadComplete)

	// Stage 2: parse
	r.transition(ctx, id, StageParsing)
	if _, err := r.api.Parse(ctx, q.item.FileName); err != nil {
		r.fail(ctx, id, StageParseFailed, err)
		return
	}
	r.transition(ctx, id, StageParseComplete)

	// Stage 3: analysis
	r.transition(ctx, id, StageAnalyzing)
	result, err := r.api.ExtractEvidence(ctx, q.item.FileName, r.topic)
	if err != nil {
		r.fail(ctx, id, StageAnalysisFailed, err)
		return
	}
	r.tracker.SetAnalysis(id, result.Analysis)
	r.transition(ctx, id, StageComplete)
}

func (r *Runner) transition(ctx context.Context, id uuid.UUID, to Stage) {
	item, err := r.tracker.Transition(id, to)
	if err != nil {
		return
	}
	if r.notifier != nil {
		r.notifier.Notify(ctx, item, StatusMessage(item))
	}
}

func (r *Runner) fail(ctx context.Context, id uuid.UUID, to Stage, cause error) {
	item, err := r.tracker.Fail(id, to, cause.Error())
	if err != nil {
		return
	}
	if r.notifier != nil {
		r.notifier.Notify(ctx, item, StatusMessage(item))
	}
}

// StatusMessage renders the human-readable status line for an item's current
// stage, including the captured error detail on failure terminals.
func StatusMessage(item Item) string {
	switch item.Stage {
	case StageQueued:
		return fmt.Sprintf("Queued: %s", item.FileName)
	case StageUploading:
		return fmt.Sprintf("Uploading %s...", item.FileName)
	case StageUploadComplete:
		return fmt.Sprintf("Upload completed: %s", item.FileName)
	case StageParsing:
		return fmt.Sprintf("Parsing document %s...", item.FileName)
	case StageParseComplete:
		return fmt.Sprintf("Parsed: %s", item.FileName)
	case StageAnalyzing:
		return fmt.Sprintf("Analyzing content of %s...", item.FileName)
	case StageComplete:
		return fmt.Sprintf("Analysis completed: %s", item.FileName)
	case StageUploadFailed:
		return fmt.Sprintf("Upload failed for %s: %s", item.FileName, item.Error)
	case StageParseFailed:
		return fmt.Sprintf("Parsing failed for %s: %s", item.FileName, item.Error)
	case StageAnalysisFailed:
		return fmt.Sprintf("Analysis failed for %s: %s", item.FileName, item.Error)
	}
	return fmt.Sprintf("Processing %s...", item.FileName)
}

package pipeline

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"pdf-evidence-be/pkg/processing"

	"github.com/google/uuid"
)

type Stage string

const (
	StageQueued         Stage = "queued"
	StageUploading      Stage = "uploading"
	StageUploadComplete Stage = "upload_complete"
	StageParsing        Stage = "parsing"
	StageParseComplete  Stage = "parse_complete"
	StageAnalyzing      Stage = "analyzing"
	StageComplete       Stage = "complete"
	StageUploadFailed   Stage = "upload_failed"
	StageParseFailed    Stage = "parse_failed"
	StageAnalysisFailed Stage = "analysis_failed"
)

// Terminal reports whether no further transitions are possible.
func (s Stage) Terminal() bool {
	switch s {
	case StageComplete, StageUploadFailed, StageParseFailed, StageAnalysisFailed:
		return true
	}
	return false
}

// Failed reports whether the stage is a failure terminal.
func (s Stage) Failed() bool {
	switch s {
	case StageUploadFailed, StageParseFailed, StageAnalysisFailed:
		return true
	}
	return false
}

// transitions is the only legal stage graph. Parse never starts before upload
// completes; analysis never starts before parse completes.
var transitions = map[Stage][]Stage{
	StageQueued:         {StageUploading},
	StageUploading:      {StageUploadComplete, StageUploadFailed},
	StageUploadComplete: {StageParsing},
	StageParsing:        {StageParseComplete, StageParseFailed},
	StageParseComplete:  {StageAnalyzing},
	StageAnalyzing:      {StageComplete, StageAnalysisFailed},
}

var (
	ErrNotTracked        = errors.New("pipeline: item not tracked")
	ErrInvalidTransition = errors.New("pipeline: invalid stage transition")
)

// Item is one file moving through the upload -> parse -> analyze pipeline.
type Item struct {
	Id        uuid.UUID
	FileName  string
	Size      int64
	Stage     Stage
	Progress  int
	URL       string
	Error     string
	Analysis  *processing.PaperAnalysis
	UpdatedAt time.Time
}

// Tracker holds pipeline items keyed by identity, never by slice position, so
// a late-arriving completion for one item can only ever touch that item.
type Tracker struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*Item
	order []uuid.UUID
}

func NewTracker() *Tracker {
	return &Tracker{
		items: make(map[uuid.UUID]*Item),
	}
}

// Track registers a validated file as a queued item and returns a snapshot.
func (t *Tracker) Track(fileName string, size int64) Item {
	item := &Item{
		Id:        uuid.New(),
		FileName:  fileName,
		Size:      size,
		Stage:     StageQueued,
		UpdatedAt: time.Now(),
	}

	t.mu.Lock()
	t.items[item.Id] = item
	t.order = append(t.order, item.Id)
	t.mu.Unlock()

	return *item
}

// Transition moves an item to the next stage, enforcing the stage graph.
func (t *Tracker) Transition(id uuid.UUID, to Stage) (Item, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	item, ok := t.items[id]
	if !ok {
		return Item{}, ErrNotTracked
	}

	allowed := false
	for _, next := range transitions[item.Stage] {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return Item{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, item.Stage, to)
	}

	item.Stage = to
	item.UpdatedAt = time.Now()
	if to == StageUploadComplete {
		item.Progress = 100
	}
	if to.Failed() {
		item.Progress = 0
	}
	return *item, nil
}

// Fail transitions the item to a failure terminal and records the message.
func (t *Tracker) Fail(id uuid.UUID, to Stage, message string) (Item, error) {
	item, err := t.Transition(id, to)
	if err != nil {
		return Item{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if stored, ok := t.items[id]; ok {
		stored.Error = message
		item = *stored
	}
	return item, nil
}

// SetProgress updates the upload progress percentage (clamped to 0-100).
func (t *Tracker) SetProgress(id uuid.UUID, percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if item, ok := t.items[id]; ok {
		item.Progress = percent
		item.UpdatedAt = time.Now()
	}
}

// SetURL records the stored resource locator after a successful upload.
func (t *Tracker) SetURL(id uuid.UUID, url string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if item, ok := t.items[id]; ok {
		item.URL = url
	}
}

// SetAnalysis stores the analysis payload on a completed item.
func (t *Tracker) SetAnalysis(id uuid.UUID, analysis *processing.PaperAnalysis) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if item, ok := t.items[id]; ok {
		item.Analysis = analysis
	}
}

// Item returns a snapshot of one item.
func (t *Tracker) Item(id uuid.UUID) (Item, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	item, ok := t.items[id]
	if !ok {
		return Item{}, false
	}
	return *item, true
}

// Items returns snapshots of all items in tracking order.
func (t *Tracker) Items() []Item {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Item, 0, len(t.order))
	for _, id := range t.order {
		if item, ok := t.items[id]; ok {
			out = append(out, *item)
		}
	}
	return out
}

// RemoveByName drops all items tracked under a file name (after a backend
// delete).
func (t *Tracker) RemoveByName(fileName string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.order[:0]
	for _, id := range t.order {
		if item, ok := t.items[id]; ok && item.FileName == fileName {
			delete(t.items, id)
			continue
		}
		kept = append(kept, id)
	}
	t.order = kept
}

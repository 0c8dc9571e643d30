package pipeline

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"pdf-evidence-be/pkg/processing"
)

// fakeAPI scripts per-file failures for each pipeline stage.
type fakeAPI struct {
	mu           sync.Mutex
	uploadFails  map[string]error
	parseFails   map[string]error
	extractFails map[string]error
	calls        []string
}

func (f *fakeAPI) record(op, name string) {
	f.mu.Lock()
	f.calls = append(f.calls, op+":"+name)
	f.mu.Unlock()
}

func (f *fakeAPI) Upload(_ context.Context, fileName string, content io.Reader, progress processing.ProgressFunc) (*processing.UploadedFile, error) {
	f.record("upload", fileName)
	if err := f.uploadFails[fileName]; err != nil {
		return nil, err
	}
	if progress != nil {
		progress(100)
	}
	return &processing.UploadedFile{URL: "https://store.example/" + fileName}, nil
}

func (f *fakeAPI) Parse(_ context.Context, fileName string) (*processing.ParseResult, error) {
	f.record("parse", fileName)
	if err := f.parseFails[fileName]; err != nil {
		return nil, err
	}
	return &processing.ParseResult{Pages: []processing.ParsedPage{{Page: 1, Text: "text"}}}, nil
}

func (f *fakeAPI) ExtractEvidence(_ context.Context, fileName, _ string) (*processing.ExtractResult, error) {
	f.record("extract", fileName)
	if err := f.extractFails[fileName]; err != nil {
		return nil, err
	}
	return &processing.ExtractResult{Analysis: &processing.PaperAnalysis{Summary: "summary of " + fileName}}, nil
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(_ context.Context, _ Item, message string) {
	n.mu.Lock()
	n.messages = append(n.messages, message)
	n.mu.Unlock()
}

func newTestRunner(api *fakeAPI, refresh func(ctx context.Context)) (*Runner, *Tracker, *recordingNotifier) {
	tracker := NewTracker()
	notifier := &recordingNotifier{}
	return NewRunner(tracker, api, notifier, "analysis topic", DefaultMaxUploadBytes, refresh), tracker, notifier
}

func TestAcceptRejectsInvalidFiles(t *testing.T) {
	runner, tracker, _ := newTestRunner(&fakeAPI{}, nil)

	accepted, rejected, jobs := runner.Accept([]Input{
		{FileName: "good.pdf", Size: 1024, Content: []byte("pdf")},
		{FileName: "big.pdf", Size: 15 * 1024 * 1024, Content: nil},
		{FileName: "notes.txt", Size: 10, Content: []byte("x")},
		{FileName: "empty.pdf", Size: 0},
	})

	if len(accepted) != 1 || accepted[0].FileName != "good.pdf" {
		t.Errorf("accepted = %+v, want only good.pdf", accepted)
	}
	if len(jobs) != 1 {
		t.Errorf("jobs = %d, want 1", len(jobs))
	}
	if len(rejected) != 3 {
		t.Fatalf("rejected = %+v, want 3 entries", rejected)
	}

	// Rejected files never enter the tracker.
	if got := len(tracker.Items()); got != 1 {
		t.Errorf("tracker holds %d items, want 1", got)
	}
}

func TestProcessHappyPath(t *testing.T) {
	api := &fakeAPI{}
	refreshed := false
	runner, tracker, notifier := newTestRunner(api, func(context.Context) { refreshed = true })

	accepted, _, jobs := runner.Accept([]Input{{FileName: "doc.pdf", Size: 100, Content: []byte("pdf")}})
	runner.Process(context.Background(), jobs)

	item, ok := tracker.Item(accepted[0].Id)
	if !ok {
		t.Fatal("item disappeared")
	}
	if item.Stage != StageComplete {
		t.Errorf("Stage = %s, want %s", item.Stage, StageComplete)
	}
	if item.URL != "https://store.example/doc.pdf" {
		t.Errorf("URL = %q", item.URL)
	}
	if item.Analysis == nil || item.Analysis.Summary != "summary of doc.pdf" {
		t.Errorf("Analysis = %+v", item.Analysis)
	}
	if !refreshed {
		t.Error("refresh hook should run after the batch")
	}

	// One message per transition: uploading, upload_complete, parsing,
	// parse_complete, analyzing, complete.
	if len(notifier.messages) != 6 {
		t.Errorf("notifications = %v, want 6 messages", notifier.messages)
	}
}

func TestProcessIsolatesFailures(t *testing.T) {
	api := &fakeAPI{
		parseFails: map[string]error{"bad.pdf": errors.New("corrupt xref table")},
	}
	runner, tracker, notifier := newTestRunner(api, nil)

	accepted, _, jobs := runner.Accept([]Input{
		{FileName: "bad.pdf", Size: 10, Content: []byte("x")},
		{FileName: "good.pdf", Size: 10, Content: []byte("x")},
	})
	runner.Process(context.Background(), jobs)

	bad, _ := tracker.Item(accepted[0].Id)
	if bad.Stage != StageParseFailed {
		t.Errorf("bad.pdf Stage = %s, want %s", bad.Stage, StageParseFailed)
	}
	if bad.Error != "corrupt xref table" {
		t.Errorf("bad.pdf Error = %q", bad.Error)
	}

	good, _ := tracker.Item(accepted[1].Id)
	if good.Stage != StageComplete {
		t.Errorf("good.pdf Stage = %s, want %s: one failure must not block the batch", good.Stage, StageComplete)
	}

	// Analysis never ran for the failed file.
	for _, call := range api.calls {
		if call == "extract:bad.pdf" {
			t.Error("extract should not run after a parse failure")
		}
	}

	// The failure message carries the error detail.
	found := false
	for _, msg := range notifier.messages {
		if msg == "Parsing failed for bad.pdf: corrupt xref table" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing failure message, got %v", notifier.messages)
	}
}

func TestProcessUploadFailureStopsItem(t *testing.T) {
	api := &fakeAPI{
		uploadFails: map[string]error{"doc.pdf": errors.New("network down")},
	}
	runner, tracker, _ := newTestRunner(api, nil)

	accepted, _, jobs := runner.Accept([]Input{{FileName: "doc.pdf", Size: 10, Content: []byte("x")}})
	runner.Process(context.Background(), jobs)

	item, _ := tracker.Item(accepted[0].Id)
	if item.Stage != StageUploadFailed {
		t.Errorf("Stage = %s, want %s", item.Stage, StageUploadFailed)
	}
	for _, call := range api.calls {
		if call == "parse:doc.pdf" || call == "extract:doc.pdf" {
			t.Errorf("stage %s should not run after upload failure", call)
		}
	}
}

func TestStatusMessages(t *testing.T) {
	tests := []struct {
		item Item
		want string
	}{
		{Item{FileName: "a.pdf", Stage: StageQueued}, "Queued: a.pdf"},
		{Item{FileName: "a.pdf", Stage: StageUploading}, "Uploading a.pdf..."},
		{Item{FileName: "a.pdf", Stage: StageComplete}, "Analysis completed: a.pdf"},
		{Item{FileName: "a.pdf", Stage: StageAnalysisFailed, Error: "timeout"}, "Analysis failed for a.pdf: timeout"},
	}
	for _, tt := range tests {
		if got := StatusMessage(tt.item); got != tt.want {
			t.Errorf("StatusMessage(%s) = %q, want %q", tt.item.Stage, got, tt.want)
		}
	}
}

package pipeline

import (
	"errors"
	"testing"
)

func TestTrackStartsQueued(t *testing.T) {
	tr := NewTracker()
	item := tr.Track("doc.pdf", 1024)

	if item.Stage != StageQueued {
		t.Errorf("Stage = %s, want %s", item.Stage, StageQueued)
	}
	if item.FileName != "doc.pdf" || item.Size != 1024 {
		t.Errorf("unexpected item: %+v", item)
	}
}

func TestTransitionEnforcesStageGraph(t *testing.T) {
	tr := NewTracker()
	item := tr.Track("doc.pdf", 1)

	// Cannot skip uploading.
	if _, err := tr.Transition(item.Id, StageParsing); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("queued -> parsing = %v, want ErrInvalidTransition", err)
	}

	// The happy path in order.
	for _, stage := range []Stage{
		StageUploading, StageUploadComplete, StageParsing,
		StageParseComplete, StageAnalyzing, StageComplete,
	} {
		if _, err := tr.Transition(item.Id, stage); err != nil {
			t.Fatalf("Transition to %s: %v", stage, err)
		}
	}

	// Terminal stages allow nothing further.
	if _, err := tr.Transition(item.Id, StageUploading); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("complete -> uploading = %v, want ErrInvalidTransition", err)
	}
}

func TestTransitionUnknownItem(t *testing.T) {
	tr := NewTracker()
	other := tr.Track("doc.pdf", 1)
	tr.RemoveByName("doc.pdf")

	if _, err := tr.Transition(other.Id, StageUploading); !errors.Is(err, ErrNotTracked) {
		t.Errorf("Transition on removed item = %v, want ErrNotTracked", err)
	}
}

func TestFailRecordsErrorAndZeroesProgress(t *testing.T) {
	tr := NewTracker()
	item := tr.Track("doc.pdf", 1)
	tr.Transition(item.Id, StageUploading)
	tr.SetProgress(item.Id, 60)

	failed, err := tr.Fail(item.Id, StageUploadFailed, "connection reset")
	if err != nil {
		t.Fatal(err)
	}
	if failed.Error != "connection reset" {
		t.Errorf("Error = %q, want the failure message", failed.Error)
	}
	if failed.Progress != 0 {
		t.Errorf("Progress = %d, want 0 on failure", failed.Progress)
	}
	if !failed.Stage.Terminal() || !failed.Stage.Failed() {
		t.Errorf("Stage %s should be a failure terminal", failed.Stage)
	}
}

func TestUploadCompleteSetsFullProgress(t *testing.T) {
	tr := NewTracker()
	item := tr.Track("doc.pdf", 1)
	tr.Transition(item.Id, StageUploading)
	tr.SetProgress(item.Id, 37)

	done, err := tr.Transition(item.Id, StageUploadComplete)
	if err != nil {
		t.Fatal(err)
	}
	if done.Progress != 100 {
		t.Errorf("Progress = %d, want 100 after upload_complete", done.Progress)
	}
}

func TestSetProgressClamps(t *testing.T) {
	tr := NewTracker()
	item := tr.Track("doc.pdf", 1)

	tr.SetProgress(item.Id, 150)
	if got, _ := tr.Item(item.Id); got.Progress != 100 {
		t.Errorf("Progress = %d, want clamped to 100", got.Progress)
	}

	tr.SetProgress(item.Id, -5)
	if got, _ := tr.Item(item.Id); got.Progress != 0 {
		t.Errorf("Progress = %d, want clamped to 0", got.Progress)
	}
}

func TestConcurrentItemsAreIndependent(t *testing.T) {
	tr := NewTracker()
	a := tr.Track("a.pdf", 1)
	b := tr.Track("b.pdf", 1)

	tr.Transition(a.Id, StageUploading)
	if _, err := tr.Fail(a.Id, StageUploadFailed, "boom"); err != nil {
		t.Fatal(err)
	}

	// b is untouched by a's failure.
	got, ok := tr.Item(b.Id)
	if !ok || got.Stage != StageQueued || got.Error != "" {
		t.Errorf("item b changed by a's failure: %+v", got)
	}
}

func TestItemsKeepTrackingOrder(t *testing.T) {
	tr := NewTracker()
	names := []string{"one.pdf", "two.pdf", "three.pdf"}
	for _, n := range names {
		tr.Track(n, 1)
	}

	items := tr.Items()
	if len(items) != len(names) {
		t.Fatalf("Items returned %d, want %d", len(items), len(names))
	}
	for i, n := range names {
		if items[i].FileName != n {
			t.Errorf("Items[%d] = %s, want %s", i, items[i].FileName, n)
		}
	}
}

func TestRemoveByName(t *testing.T) {
	tr := NewTracker()
	tr.Track("keep.pdf", 1)
	tr.Track("drop.pdf", 1)
	tr.Track("drop.pdf", 2)

	tr.RemoveByName("drop.pdf")

	items := tr.Items()
	if len(items) != 1 || items[0].FileName != "keep.pdf" {
		t.Errorf("Items after RemoveByName = %+v", items)
	}
}

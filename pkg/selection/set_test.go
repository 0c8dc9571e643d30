package selection

import "testing"

type evidence struct {
	doc  string
	text string
}

func newEvidenceSet() *Set[evidence] {
	return NewSet(func(e evidence) Key {
		return Key{DocumentName: e.doc, RawText: e.text}
	})
}

func TestAddIsIdempotent(t *testing.T) {
	s := newEvidenceSet()
	e := evidence{doc: "paper.pdf", text: "finding one"}

	if !s.Add(e) {
		t.Fatal("first Add should change the set")
	}
	if s.Add(e) {
		t.Error("second Add of the same key should be a no-op")
	}
	if got := s.Len(); got != 1 {
		t.Errorf("Len = %d, want 1", got)
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	s := newEvidenceSet()
	e := evidence{doc: "paper.pdf", text: "finding one"}

	if s.Remove(e) {
		t.Error("Remove of absent key should report no change")
	}

	s.Add(e)
	if !s.Remove(e) {
		t.Error("Remove of present key should report a change")
	}
	if s.IsSelected(Key{DocumentName: "paper.pdf", RawText: "finding one"}) {
		t.Error("key should be gone after Remove")
	}
}

func TestToggle(t *testing.T) {
	s := newEvidenceSet()
	e := evidence{doc: "paper.pdf", text: "finding one"}

	if !s.Toggle(e) {
		t.Error("first Toggle should select")
	}
	if s.Toggle(e) {
		t.Error("second Toggle should deselect")
	}
	if got := s.Len(); got != 0 {
		t.Errorf("Len = %d, want 0", got)
	}
}

func TestIdentityDistinguishesSameDocument(t *testing.T) {
	s := newEvidenceSet()
	s.Add(evidence{doc: "paper.pdf", text: "finding one"})
	s.Add(evidence{doc: "paper.pdf", text: "finding two"})

	if got := s.Len(); got != 2 {
		t.Fatalf("Len = %d, want 2: same document with different text must be distinct", got)
	}

	// Same text from a different document is also distinct.
	s.Add(evidence{doc: "other.pdf", text: "finding one"})
	if got := s.Len(); got != 3 {
		t.Errorf("Len = %d, want 3", got)
	}
}

func TestItemsPreserveInsertionOrder(t *testing.T) {
	s := newEvidenceSet()
	in := []evidence{
		{doc: "c.pdf", text: "third"},
		{doc: "a.pdf", text: "first"},
		{doc: "b.pdf", text: "second"},
	}
	for _, e := range in {
		s.Add(e)
	}

	got := s.Items()
	if len(got) != len(in) {
		t.Fatalf("Items returned %d entries, want %d", len(got), len(in))
	}
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("Items[%d] = %+v, want %+v", i, got[i], in[i])
		}
	}
}

func TestClear(t *testing.T) {
	s := newEvidenceSet()
	s.Add(evidence{doc: "a.pdf", text: "x"})
	s.Add(evidence{doc: "b.pdf", text: "y"})

	s.Clear()

	if got := s.Len(); got != 0 {
		t.Errorf("Len after Clear = %d, want 0", got)
	}
	if len(s.Items()) != 0 {
		t.Error("Items after Clear should be empty")
	}
}

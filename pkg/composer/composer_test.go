package composer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"pdf-evidence-be/pkg/processing"
)

type fakeGenerator struct {
	calls int
	last  processing.EssayGenerationRequest
	err   error
}

func (f *fakeGenerator) GenerateEssay(ctx context.Context, req processing.EssayGenerationRequest) (*processing.EssayStructure, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &processing.EssayStructure{EssayPlanning: "plan"}, nil
}

func TestComposeEmptySelectionFailsFast(t *testing.T) {
	gen := &fakeGenerator{}
	c := New(gen)

	_, err := c.Compose(context.Background(), nil, Request{Topic: "climate"})
	if !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}
	if gen.calls != 0 {
		t.Fatalf("expected no generation call, got %d", gen.calls)
	}
}

func TestComposeFormatsContext(t *testing.T) {
	gen := &fakeGenerator{}
	c := New(gen)

	sources := []Source{
		{DocumentName: "a.pdf", RawText: "first finding"},
		{DocumentName: "b.pdf", RawText: "second finding"},
	}
	structure, err := c.Compose(context.Background(), sources, Request{
		Topic:            "climate",
		WordCount:        800,
		IncludeCitations: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if structure == nil || structure.EssayPlanning != "plan" {
		t.Fatalf("unexpected structure: %+v", structure)
	}
	if gen.calls != 1 {
		t.Fatalf("expected exactly one generation call, got %d", gen.calls)
	}

	want := "[Source: a.pdf]\nfirst finding\n\n[Source: b.pdf]\nsecond finding"
	if gen.last.Context != want {
		t.Fatalf("context mismatch:\nwant %q\ngot  %q", want, gen.last.Context)
	}
	if gen.last.Topic != "climate" || gen.last.WordCount != 800 || !gen.last.IncludeCitations {
		t.Fatalf("request parameters not forwarded: %+v", gen.last)
	}
}

func TestComposePreservesSourceOrder(t *testing.T) {
	gen := &fakeGenerator{}
	c := New(gen)

	sources := []Source{
		{DocumentName: "z.pdf", RawText: "third"},
		{DocumentName: "a.pdf", RawText: "first"},
	}
	if _, err := c.Compose(context.Background(), sources, Request{Topic: "t"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(gen.last.Context, "[Source: z.pdf]") {
		t.Fatalf("sources were reordered: %q", gen.last.Context)
	}
}

func TestComposePropagatesGenerationError(t *testing.T) {
	genErr := errors.New("model overloaded")
	gen := &fakeGenerator{err: genErr}
	c := New(gen)

	structure, err := c.Compose(context.Background(), []Source{{DocumentName: "a.pdf", RawText: "x"}}, Request{Topic: "t"})
	if !errors.Is(err, genErr) {
		t.Fatalf("expected generation error, got %v", err)
	}
	if structure != nil {
		t.Fatalf("expected nil structure on failure, got %+v", structure)
	}
}

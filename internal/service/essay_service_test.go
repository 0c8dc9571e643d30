package service

import (
	"context"
	"testing"

	"pdf-evidence-be/internal/dto"
	"pdf-evidence-be/internal/entity"
	"pdf-evidence-be/internal/repository/contract"
	"pdf-evidence-be/internal/repository/specification"
	"pdf-evidence-be/internal/repository/unitofwork"
	"pdf-evidence-be/pkg/composer"
	"pdf-evidence-be/pkg/processing"

	"github.com/google/uuid"
)

type fakeEssayDrafts struct {
	draft *entity.EssayDraft
}

func (f *fakeEssayDrafts) Upsert(_ context.Context, draft *entity.EssayDraft) error {
	stored := *draft
	f.draft = &stored
	return nil
}

func (f *fakeEssayDrafts) Delete(_ context.Context, _ uuid.UUID) error {
	f.draft = nil
	return nil
}

func (f *fakeEssayDrafts) FindOne(_ context.Context, _ ...specification.Specification) (*entity.EssayDraft, error) {
	return f.draft, nil
}

type fakeSelections struct {
	rows []*entity.SelectedEvidence
}

func (f *fakeSelections) Create(_ context.Context, row *entity.SelectedEvidence) error {
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeSelections) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeSelections) DeleteAllByClientId(_ context.Context, _ uuid.UUID) error {
	f.rows = nil
	return nil
}

func (f *fakeSelections) FindOne(_ context.Context, _ ...specification.Specification) (*entity.SelectedEvidence, error) {
	if len(f.rows) == 0 {
		return nil, nil
	}
	return f.rows[0], nil
}

func (f *fakeSelections) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.SelectedEvidence, error) {
	return f.rows, nil
}

func (f *fakeSelections) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(f.rows)), nil
}

type fakeUnitOfWork struct {
	drafts     *fakeEssayDrafts
	selections *fakeSelections
}

func (f *fakeUnitOfWork) Begin(_ context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error                 { return nil }
func (f *fakeUnitOfWork) Rollback() error               { return nil }

func (f *fakeUnitOfWork) WorkspaceRepository() contract.WorkspaceRepository { return nil }
func (f *fakeUnitOfWork) EssayDraftRepository() contract.EssayDraftRepository {
	return f.drafts
}
func (f *fakeUnitOfWork) SelectedEvidenceRepository() contract.SelectedEvidenceRepository {
	return f.selections
}
func (f *fakeUnitOfWork) EditorDocumentRepository() contract.EditorDocumentRepository { return nil }
func (f *fakeUnitOfWork) ChatSessionRepository() contract.ChatSessionRepository       { return nil }
func (f *fakeUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository       { return nil }

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork { return f.uow }

type capturingGenerator struct {
	last  processing.EssayGenerationRequest
	calls int
}

func (g *capturingGenerator) GenerateEssay(_ context.Context, req processing.EssayGenerationRequest) (*processing.EssayStructure, error) {
	g.calls++
	g.last = req
	return &processing.EssayStructure{
		EssayPlanning: "plan",
		EssayStructure: processing.EssayBody{
			BodyParagraphs: []processing.Paragraph{{ParagraphNumber: 1, Content: "body"}},
		},
	}, nil
}

func newTestEssayService(gen *capturingGenerator, selections *fakeSelections) (IEssayService, *fakeEssayDrafts) {
	drafts := &fakeEssayDrafts{}
	factory := &fakeFactory{uow: &fakeUnitOfWork{drafts: drafts, selections: selections}}
	return NewEssayService(factory, composer.New(gen), "Write an essay about the selected evidence", 1000), drafts
}

func selectionRow(doc, text string) *entity.SelectedEvidence {
	return &entity.SelectedEvidence{
		Id:       uuid.New(),
		Evidence: entity.Evidence{DocumentName: doc, RawText: text},
	}
}

func TestGenerateFallsBackToDefaultTopic(t *testing.T) {
	gen := &capturingGenerator{}
	svc, _ := newTestEssayService(gen, &fakeSelections{rows: []*entity.SelectedEvidence{
		selectionRow("a.pdf", "finding"),
	}})

	_, err := svc.Generate(context.Background(), uuid.New(), &dto.GenerateEssayRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.last.Topic != "Write an essay about the selected evidence" {
		t.Errorf("Topic = %q, want the configured default", gen.last.Topic)
	}
	if gen.last.WordCount != 1000 {
		t.Errorf("WordCount = %d, want the configured default", gen.last.WordCount)
	}
}

func TestGenerateUsesClientTopic(t *testing.T) {
	gen := &capturingGenerator{}
	svc, _ := newTestEssayService(gen, &fakeSelections{rows: []*entity.SelectedEvidence{
		selectionRow("a.pdf", "finding"),
	}})

	_, err := svc.Generate(context.Background(), uuid.New(), &dto.GenerateEssayRequest{
		Topic:     "climate policy",
		WordCount: 500,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.last.Topic != "climate policy" {
		t.Errorf("Topic = %q, want the client's topic", gen.last.Topic)
	}
	if gen.last.WordCount != 500 {
		t.Errorf("WordCount = %d, want the client's word count", gen.last.WordCount)
	}
}

func TestGenerateEmptySelectionMakesNoCall(t *testing.T) {
	gen := &capturingGenerator{}
	svc, drafts := newTestEssayService(gen, &fakeSelections{})

	_, err := svc.Generate(context.Background(), uuid.New(), &dto.GenerateEssayRequest{Topic: "t"})
	if err == nil {
		t.Fatal("expected an error for an empty selection")
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times, want 0", gen.calls)
	}
	if drafts.draft != nil && drafts.draft.IsGenerating {
		t.Error("draft left flagged as generating after a failed run")
	}
}

func TestGenerateStoresDraftWithIdentityOrder(t *testing.T) {
	gen := &capturingGenerator{}
	svc, drafts := newTestEssayService(gen, &fakeSelections{rows: []*entity.SelectedEvidence{
		selectionRow("a.pdf", "finding"),
	}})

	if _, err := svc.Generate(context.Background(), uuid.New(), &dto.GenerateEssayRequest{Topic: "t"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if drafts.draft == nil {
		t.Fatal("no draft stored")
	}
	if drafts.draft.IsGenerating {
		t.Error("stored draft still flagged as generating")
	}
	if len(drafts.draft.ParagraphOrder) != 1 || drafts.draft.ParagraphOrder[0] != 0 {
		t.Errorf("ParagraphOrder = %v, want identity", drafts.draft.ParagraphOrder)
	}
}

package service

import (
	"context"
	"errors"
	"time"

	"pdf-evidence-be/internal/dto"
	"pdf-evidence-be/internal/entity"
	"pdf-evidence-be/internal/pkg/serverutils"
	"pdf-evidence-be/internal/repository/specification"
	"pdf-evidence-be/internal/repository/unitofwork"
	"pdf-evidence-be/pkg/composer"
	"pdf-evidence-be/pkg/sequence"

	"github.com/google/uuid"
)

type IEssayService interface {
	Generate(ctx context.Context, clientId uuid.UUID, req *dto.GenerateEssayRequest) (*dto.GenerateEssayResponse, error)
	Show(ctx context.Context, clientId uuid.UUID) (*dto.ShowEssayResponse, error)
	Reorder(ctx context.Context, clientId uuid.UUID, req *dto.ReorderParagraphsRequest) (*dto.ReorderParagraphsResponse, error)
	Clear(ctx context.Context, clientId uuid.UUID) (*dto.ClearEssayResponse, error)
}

type essayService struct {
	uowFactory       unitofwork.RepositoryFactory
	composer         *composer.Composer
	defaultTopic     string
	defaultWordCount int
}

func NewEssayService(uowFactory unitofwork.RepositoryFactory, cmp *composer.Composer, defaultTopic string, defaultWordCount int) IEssayService {
	return &essayService{
		uowFactory:       uowFactory,
		composer:         cmp,
		defaultTopic:     defaultTopic,
		defaultWordCount: defaultWordCount,
	}
}

// Generate composes an essay from the current selection. The stored draft is
// replaced atomically on success; a failed generation leaves any previous
// draft untouched. The paragraph order resets to identity because the new
// structure invalidates the old permutation.
func (c *essayService) Generate(ctx context.Context, clientId uuid.UUID, req *dto.GenerateEssayRequest) (*dto.GenerateEssayResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	drafts := uow.EssayDraftRepository()

	existing, err := drafts.FindOne(ctx, specification.ByClientID{ClientID: clientId})
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.IsGenerating {
		return nil, serverutils.NewAppError(409, "a generation is already in progress")
	}

	rows, err := uow.SelectedEvidenceRepository().FindAll(ctx,
		specification.ByClientID{ClientID: clientId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	sources := make([]composer.Source, 0, len(rows))
	for _, row := range rows {
		sources = append(sources, composer.Source{
			DocumentName: row.Evidence.DocumentName,
			RawText:      row.Evidence.RawText,
		})
	}

	topic := req.Topic
	if topic == "" {
		topic = c.defaultTopic
	}
	wordCount := req.WordCount
	if wordCount == 0 {
		wordCount = c.defaultWordCount
	}

	if err := c.setGenerating(ctx, clientId, existing, true); err != nil {
		return nil, err
	}

	structure, err := c.composer.Compose(ctx, sources, composer.Request{
		Topic:            topic,
		WordCount:        wordCount,
		IncludeCitations: req.IncludeCitations,
	})
	if err != nil {
		// Leave the previous draft intact, only drop the in-progress flag.
		if clearErr := c.setGenerating(ctx, clientId, existing, false); clearErr != nil {
			return nil, clearErr
		}
		if errors.Is(err, composer.ErrEmptySelection) {
			return nil, serverutils.BadRequest("select at least one piece of evidence first")
		}
		return nil, err
	}

	now := time.Now()
	draft := &entity.EssayDraft{
		Id:             uuid.New(),
		ClientId:       clientId,
		Structure:      structure,
		ParagraphOrder: identityOrder(len(structure.EssayStructure.BodyParagraphs)),
		IsGenerating:   false,
		CreatedAt:      now,
		UpdatedAt:      &now,
	}
	if existing != nil {
		draft.Id = existing.Id
		draft.CreatedAt = existing.CreatedAt
	}

	if err := drafts.Upsert(ctx, draft); err != nil {
		return nil, err
	}

	return &dto.GenerateEssayResponse{Structure: structure}, nil
}

// Show returns the draft with body paragraphs resolved through the stored
// display order.
func (c *essayService) Show(ctx context.Context, clientId uuid.UUID) (*dto.ShowEssayResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	draft, err := uow.EssayDraftRepository().FindOne(ctx, specification.ByClientID{ClientID: clientId})
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, serverutils.NotFound("no essay draft yet")
	}

	structure := draft.Structure
	order := draft.ParagraphOrder
	if structure != nil {
		n := len(structure.EssayStructure.BodyParagraphs)
		store := sequence.New()
		store.Load(order, n)

		reordered := *structure
		reordered.EssayStructure.BodyParagraphs = sequence.Resolve(store, structure.EssayStructure.BodyParagraphs)
		structure = &reordered
		order = store.Order()
	}

	return &dto.ShowEssayResponse{
		Structure:      structure,
		ParagraphOrder: order,
		IsGenerating:   draft.IsGenerating,
		UpdatedAt:      draft.UpdatedAt,
	}, nil
}

func (c *essayService) Reorder(ctx context.Context, clientId uuid.UUID, req *dto.ReorderParagraphsRequest) (*dto.ReorderParagraphsResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	drafts := uow.EssayDraftRepository()

	draft, err := drafts.FindOne(ctx, specification.ByClientID{ClientID: clientId})
	if err != nil {
		return nil, err
	}
	if draft == nil || draft.Structure == nil {
		return nil, serverutils.NotFound("no essay draft yet")
	}

	n := len(draft.Structure.EssayStructure.BodyParagraphs)
	store := sequence.New()
	store.Load(draft.ParagraphOrder, n)

	if err := store.Reorder(req.FromIndex, req.ToIndex); err != nil {
		return nil, serverutils.BadRequest("paragraph index out of range")
	}

	now := time.Now()
	draft.ParagraphOrder = store.Order()
	draft.UpdatedAt = &now
	if err := drafts.Upsert(ctx, draft); err != nil {
		return nil, err
	}

	return &dto.ReorderParagraphsResponse{ParagraphOrder: draft.ParagraphOrder}, nil
}

func (c *essayService) Clear(ctx context.Context, clientId uuid.UUID) (*dto.ClearEssayResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.EssayDraftRepository().Delete(ctx, clientId); err != nil {
		return nil, err
	}
	return &dto.ClearEssayResponse{Cleared: true}, nil
}

func (c *essayService) setGenerating(ctx context.Context, clientId uuid.UUID, existing *entity.EssayDraft, generating bool) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	draft := existing
	if draft == nil {
		draft = &entity.EssayDraft{
			Id:        uuid.New(),
			ClientId:  clientId,
			CreatedAt: now,
		}
	}
	draft.IsGenerating = generating
	draft.UpdatedAt = &now
	return uow.EssayDraftRepository().Upsert(ctx, draft)
}

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

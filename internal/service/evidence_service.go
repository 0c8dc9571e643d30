package service

import (
	"context"
	"sort"
	"time"

	"pdf-evidence-be/internal/dto"
	"pdf-evidence-be/internal/entity"
	"pdf-evidence-be/internal/repository/contract"
	"pdf-evidence-be/internal/repository/specification"
	"pdf-evidence-be/internal/repository/unitofwork"
	"pdf-evidence-be/pkg/processing"
	"pdf-evidence-be/pkg/selection"

	"github.com/google/uuid"
)

type IEvidenceService interface {
	List(ctx context.Context, clientId uuid.UUID) (*dto.ListEvidenceResponse, error)
	Select(ctx context.Context, clientId uuid.UUID, req *dto.SelectEvidenceRequest) (*dto.SelectionStateResponse, error)
	Deselect(ctx context.Context, clientId uuid.UUID, req *dto.SelectEvidenceRequest) (*dto.SelectionStateResponse, error)
	Toggle(ctx context.Context, clientId uuid.UUID, req *dto.ToggleEvidenceRequest) (*dto.SelectionStateResponse, error)
	Clear(ctx context.Context, clientId uuid.UUID) (*dto.ClearSelectionResponse, error)
}

type evidenceService struct {
	uowFactory unitofwork.RepositoryFactory
	client     *processing.Client
}

func NewEvidenceService(uowFactory unitofwork.RepositoryFactory, client *processing.Client) IEvidenceService {
	return &evidenceService{
		uowFactory: uowFactory,
		client:     client,
	}
}

// List fetches the evidence catalog from the remote store, groups records by
// source document and marks the ones this workspace has selected.
func (c *evidenceService) List(ctx context.Context, clientId uuid.UUID) (*dto.ListEvidenceResponse, error) {
	records, err := c.client.ListEvidence(ctx)
	if err != nil {
		return nil, err
	}

	selected, err := c.loadSelection(ctx, clientId)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]dto.EvidenceWithState)
	var docOrder []string
	for _, rec := range records {
		key := selection.Key{DocumentName: rec.DocumentName, RawText: rec.RawText}
		if _, ok := grouped[rec.DocumentName]; !ok {
			docOrder = append(docOrder, rec.DocumentName)
		}
		grouped[rec.DocumentName] = append(grouped[rec.DocumentName], dto.EvidenceWithState{
			EvidenceRecord: rec,
			Selected:       selected.IsSelected(key),
		})
	}

	sort.Strings(docOrder)
	resp := &dto.ListEvidenceResponse{Documents: []dto.EvidenceDocument{}, Selected: selected.Len()}
	for _, name := range docOrder {
		recs := grouped[name]
		// Strongest evidence first inside each document.
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].RelevanceScore > recs[j].RelevanceScore
		})
		resp.Documents = append(resp.Documents, dto.EvidenceDocument{
			DocumentName: name,
			Records:      recs,
		})
	}

	return resp, nil
}

func (c *evidenceService) Select(ctx context.Context, clientId uuid.UUID, req *dto.SelectEvidenceRequest) (*dto.SelectionStateResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SelectedEvidenceRepository()

	evidence, err := c.resolveRecord(ctx, req.DocumentName, req.RawText)
	if err != nil {
		return nil, err
	}

	// Idempotent: the unique index absorbs repeats.
	err = repo.Create(ctx, &entity.SelectedEvidence{
		Id:        uuid.New(),
		ClientId:  clientId,
		Evidence:  *evidence,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	return c.selectionState(ctx, repo, clientId, true)
}

func (c *evidenceService) Deselect(ctx context.Context, clientId uuid.UUID, req *dto.SelectEvidenceRequest) (*dto.SelectionStateResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SelectedEvidenceRepository()

	existing, err := repo.FindOne(ctx,
		specification.ByClientID{ClientID: clientId},
		specification.ByEvidenceIdentity{DocumentName: req.DocumentName, RawText: req.RawText},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := repo.Delete(ctx, existing.Id); err != nil {
			return nil, err
		}
	}

	return c.selectionState(ctx, repo, clientId, false)
}

func (c *evidenceService) Toggle(ctx context.Context, clientId uuid.UUID, req *dto.ToggleEvidenceRequest) (*dto.SelectionStateResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SelectedEvidenceRepository()

	existing, err := repo.FindOne(ctx,
		specification.ByClientID{ClientID: clientId},
		specification.ByEvidenceIdentity{DocumentName: req.DocumentName, RawText: req.RawText},
	)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := repo.Delete(ctx, existing.Id); err != nil {
			return nil, err
		}
		return c.selectionState(ctx, repo, clientId, false)
	}

	sel := dto.SelectEvidenceRequest{DocumentName: req.DocumentName, RawText: req.RawText}
	return c.Select(ctx, clientId, &sel)
}

func (c *evidenceService) Clear(ctx context.Context, clientId uuid.UUID) (*dto.ClearSelectionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SelectedEvidenceRepository()

	count, err := repo.Count(ctx, specification.ByClientID{ClientID: clientId})
	if err != nil {
		return nil, err
	}

	if err := repo.DeleteAllByClientId(ctx, clientId); err != nil {
		return nil, err
	}

	return &dto.ClearSelectionResponse{Cleared: int(count)}, nil
}

// loadSelection rebuilds the in-memory selection set from the stored rows.
func (c *evidenceService) loadSelection(ctx context.Context, clientId uuid.UUID) (*selection.Set[entity.Evidence], error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.SelectedEvidenceRepository().FindAll(ctx,
		specification.ByClientID{ClientID: clientId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	set := selection.NewSet(func(e entity.Evidence) selection.Key {
		return e.Key()
	})
	for _, row := range rows {
		set.Add(row.Evidence)
	}
	return set, nil
}

// resolveRecord finds the full record in the remote catalog so a selection
// stores the complete evidence, not just its identity.
func (c *evidenceService) resolveRecord(ctx context.Context, documentName, rawText string) (*entity.Evidence, error) {
	records, err := c.client.ListEvidence(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.DocumentName == documentName && rec.RawText == rawText {
			return &entity.Evidence{
				DocumentName:          rec.DocumentName,
				FileName:              rec.FileName,
				EssayTopic:            rec.EssayTopic,
				RawText:               rec.RawText,
				Category:              rec.Category,
				Reasoning:             rec.Reasoning,
				Strength:              rec.Strength,
				StrengthJustification: rec.StrengthJustification,
				RelevanceScore:        rec.RelevanceScore,
			}, nil
		}
	}

	// Unknown to the catalog. Store the identity anyway so selection keeps
	// working while the catalog catches up.
	return &entity.Evidence{DocumentName: documentName, RawText: rawText}, nil
}

func (c *evidenceService) selectionState(ctx context.Context, repo contract.SelectedEvidenceRepository, clientId uuid.UUID, selected bool) (*dto.SelectionStateResponse, error) {
	count, err := repo.Count(ctx, specification.ByClientID{ClientID: clientId})
	if err != nil {
		return nil, err
	}
	return &dto.SelectionStateResponse{Selected: selected, Count: int(count)}, nil
}

package service

import (
	"context"
	"time"

	"pdf-evidence-be/internal/dto"
	"pdf-evidence-be/internal/entity"
	"pdf-evidence-be/internal/repository/memory"
	"pdf-evidence-be/internal/repository/specification"
	"pdf-evidence-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IWorkspaceService interface {
	Create(ctx context.Context) (*dto.CreateWorkspaceResponse, error)
	Reset(ctx context.Context, clientId uuid.UUID) (*dto.ResetWorkspaceResponse, error)
}

type workspaceService struct {
	uowFactory unitofwork.RepositoryFactory
	trackers   *memory.TrackerRepository
}

func NewWorkspaceService(uowFactory unitofwork.RepositoryFactory, trackers *memory.TrackerRepository) IWorkspaceService {
	return &workspaceService{
		uowFactory: uowFactory,
		trackers:   trackers,
	}
}

// Create issues a fresh client id. The browser stores it and sends it back on
// every request.
func (c *workspaceService) Create(ctx context.Context) (*dto.CreateWorkspaceResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	workspace := entity.Workspace{
		Id:        uuid.New(),
		CreatedAt: time.Now(),
	}
	if err := uow.WorkspaceRepository().Create(ctx, &workspace); err != nil {
		return nil, err
	}

	return &dto.CreateWorkspaceResponse{
		ClientId:  workspace.Id,
		CreatedAt: workspace.CreatedAt,
	}, nil
}

// Reset wipes everything the workspace owns: selections, draft, editor
// content, chat transcript and the in-memory pipeline tracker. The workspace
// row itself survives so the client id stays valid.
func (c *workspaceService) Reset(ctx context.Context, clientId uuid.UUID) (*dto.ResetWorkspaceResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.SelectedEvidenceRepository().DeleteAllByClientId(ctx, clientId); err != nil {
		return nil, err
	}
	if err := uow.EssayDraftRepository().Delete(ctx, clientId); err != nil {
		return nil, err
	}
	if err := uow.EditorDocumentRepository().Delete(ctx, clientId); err != nil {
		return nil, err
	}

	sessions, err := uow.ChatSessionRepository().FindAll(ctx, specification.ByClientID{ClientID: clientId})
	if err != nil {
		return nil, err
	}
	for _, session := range sessions {
		if err := uow.ChatMessageRepository().DeleteBySessionId(ctx, session.Id); err != nil {
			return nil, err
		}
	}
	if err := uow.ChatSessionRepository().DeleteAllByClientId(ctx, clientId); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.trackers.Delete(clientId.String())

	return &dto.ResetWorkspaceResponse{ClientId: clientId}, nil
}

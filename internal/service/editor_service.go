package service

import (
	"context"

	"pdf-evidence-be/internal/dto"
	"pdf-evidence-be/internal/entity"
	"pdf-evidence-be/internal/repository/specification"
	"pdf-evidence-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IEditorService interface {
	Save(ctx context.Context, clientId uuid.UUID, req *dto.SaveEditorDocumentRequest) error
	Show(ctx context.Context, clientId uuid.UUID) (*dto.ShowEditorDocumentResponse, error)
}

type editorService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewEditorService(uowFactory unitofwork.RepositoryFactory) IEditorService {
	return &editorService{
		uowFactory: uowFactory,
	}
}

func (c *editorService) Save(ctx context.Context, clientId uuid.UUID, req *dto.SaveEditorDocumentRequest) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	return uow.EditorDocumentRepository().Upsert(ctx, &entity.EditorDocument{
		Id:       uuid.New(),
		ClientId: clientId,
		Content:  req.Content,
	})
}

// Show returns an empty document for a fresh workspace rather than an error,
// so the editor always has something to render.
func (c *editorService) Show(ctx context.Context, clientId uuid.UUID) (*dto.ShowEditorDocumentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	doc, err := uow.EditorDocumentRepository().FindOne(ctx, specification.ByClientID{ClientID: clientId})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return &dto.ShowEditorDocumentResponse{Content: ""}, nil
	}
	return &dto.ShowEditorDocumentResponse{
		Content:   doc.Content,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

package contract

import (
	"context"

	"pdf-evidence-be/internal/entity"
	"pdf-evidence-be/internal/repository/specification"

	"github.com/google/uuid"
)

type EditorDocumentRepository interface {
	Upsert(ctx context.Context, doc *entity.EditorDocument) error
	Delete(ctx context.Context, clientId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EditorDocument, error)
}

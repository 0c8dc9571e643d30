package contract

import (
	"context"

	"pdf-evidence-be/internal/entity"
	"pdf-evidence-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SelectedEvidenceRepository interface {
	Create(ctx context.Context, selected *entity.SelectedEvidence) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByClientId(ctx context.Context, clientId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SelectedEvidence, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SelectedEvidence, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

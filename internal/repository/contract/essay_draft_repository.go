package contract

import (
	"context"

	"pdf-evidence-be/internal/entity"
	"pdf-evidence-be/internal/repository/specification"

	"github.com/google/uuid"
)

type EssayDraftRepository interface {
	// Upsert creates or replaces the single draft row for a workspace.
	Upsert(ctx context.Context, draft *entity.EssayDraft) error
	Delete(ctx context.Context, clientId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EssayDraft, error)
}

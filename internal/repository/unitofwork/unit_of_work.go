package unitofwork

import (
	"context"

	"pdf-evidence-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	WorkspaceRepository() contract.WorkspaceRepository
	EssayDraftRepository() contract.EssayDraftRepository
	SelectedEvidenceRepository() contract.SelectedEvidenceRepository
	EditorDocumentRepository() contract.EditorDocumentRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
}

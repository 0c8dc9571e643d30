package unitofwork

import (
	"context"
	"fmt"

	"pdf-evidence-be/internal/repository/contract"
	"pdf-evidence-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) WorkspaceRepository() contract.WorkspaceRepository {
	return implementation.NewWorkspaceRepository(u.getDB())
}

func (u *UnitOfWorkImpl) EssayDraftRepository() contract.EssayDraftRepository {
	return implementation.NewEssayDraftRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SelectedEvidenceRepository() contract.SelectedEvidenceRepository {
	return implementation.NewSelectedEvidenceRepository(u.getDB())
}

func (u *UnitOfWorkImpl) EditorDocumentRepository() contract.EditorDocumentRepository {
	return implementation.NewEditorDocumentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatSessionRepository() contract.ChatSessionRepository {
	return implementation.NewChatSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatMessageRepository() contract.ChatMessageRepository {
	return implementation.NewChatMessageRepository(u.getDB())
}

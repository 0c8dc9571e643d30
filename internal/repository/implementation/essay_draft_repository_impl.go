package implementation

import (
	"context"
	"errors"

	"pdf-evidence-be/internal/entity"
	"pdf-evidence-be/internal/mapper"
	"pdf-evidence-be/internal/model"
	"pdf-evidence-be/internal/repository/contract"
	"pdf-evidence-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EssayDraftRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EssayDraftMapper
}

func NewEssayDraftRepository(db *gorm.DB) contract.EssayDraftRepository {
	return &EssayDraftRepositoryImpl{
		db:     db,
		mapper: mapper.NewEssayDraftMapper(),
	}
}

func (r *EssayDraftRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Upsert keeps exactly one draft row per workspace; a new generation result
// replaces the previous one atomically.
func (r *EssayDraftRepositoryImpl) Upsert(ctx context.Context, draft *entity.EssayDraft) error {
	m := r.mapper.ToModel(draft)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "client_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"structure", "paragraph_order", "is_generating", "updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*draft = *r.mapper.ToEntity(m)
	return nil
}

func (r *EssayDraftRepositoryImpl) Delete(ctx context.Context, clientId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("client_id = ?", clientId).Delete(&model.EssayDraft{}).Error
}

func (r *EssayDraftRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EssayDraft, error) {
	var m model.EssayDraft
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

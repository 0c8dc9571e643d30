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

type SelectedEvidenceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SelectedEvidenceMapper
}

func NewSelectedEvidenceRepository(db *gorm.DB) contract.SelectedEvidenceRepository {
	return &SelectedEvidenceRepositoryImpl{
		db:     db,
		mapper: mapper.NewSelectedEvidenceMapper(),
	}
}

func (r *SelectedEvidenceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Create inserts a selection entry. A concurrent duplicate of the same
// composite key is absorbed by the identity index (insert becomes a no-op),
// which keeps Add idempotent end to end.
func (r *SelectedEvidenceRepositoryImpl) Create(ctx context.Context, selected *entity.SelectedEvidence) error {
	m := r.mapper.ToModel(selected)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(m).Error
	if err != nil {
		return err
	}
	*selected = *r.mapper.ToEntity(m)
	return nil
}

func (r *SelectedEvidenceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.SelectedEvidence{}, id).Error
}

func (r *SelectedEvidenceRepositoryImpl) DeleteAllByClientId(ctx context.Context, clientId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("client_id = ?", clientId).Delete(&model.SelectedEvidence{}).Error
}

func (r *SelectedEvidenceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SelectedEvidence, error) {
	var m model.SelectedEvidence
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SelectedEvidenceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SelectedEvidence, error) {
	var models []*model.SelectedEvidence
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SelectedEvidenceRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SelectedEvidence{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

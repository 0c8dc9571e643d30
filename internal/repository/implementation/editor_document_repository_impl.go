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

type EditorDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EditorDocumentMapper
}

func NewEditorDocumentRepository(db *gorm.DB) contract.EditorDocumentRepository {
	return &EditorDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewEditorDocumentMapper(),
	}
}

func (r *EditorDocumentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EditorDocumentRepositoryImpl) Upsert(ctx context.Context, doc *entity.EditorDocument) error {
	m := r.mapper.ToModel(doc)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "client_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *EditorDocumentRepositoryImpl) Delete(ctx context.Context, clientId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("client_id = ?", clientId).Delete(&model.EditorDocument{}).Error
}

func (r *EditorDocumentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EditorDocument, error) {
	var m model.EditorDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

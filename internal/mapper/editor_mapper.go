package mapper

import (
	"time"

	"pdf-evidence-be/internal/entity"
	"pdf-evidence-be/internal/model"
)

type EditorDocumentMapper struct{}

func NewEditorDocumentMapper() *EditorDocumentMapper {
	return &EditorDocumentMapper{}
}

func (m *EditorDocumentMapper) ToEntity(d *model.EditorDocument) *entity.EditorDocument {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.EditorDocument{
		Id:        d.Id,
		ClientId:  d.ClientId,
		Content:   d.Content,
		UpdatedAt: updatedAt,
	}
}

func (m *EditorDocumentMapper) ToModel(d *entity.EditorDocument) *model.EditorDocument {
	if d == nil {
		return nil
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.EditorDocument{
		Id:        d.Id,
		ClientId:  d.ClientId,
		Content:   d.Content,
		UpdatedAt: updatedAt,
	}
}

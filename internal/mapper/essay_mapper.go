package mapper

import (
	"encoding/json"
	"time"

	"pdf-evidence-be/internal/entity"
	"pdf-evidence-be/internal/model"
	"pdf-evidence-be/pkg/processing"

	"gorm.io/datatypes"
)

type EssayDraftMapper struct{}

func NewEssayDraftMapper() *EssayDraftMapper {
	return &EssayDraftMapper{}
}

func (m *EssayDraftMapper) ToEntity(d *model.EssayDraft) *entity.EssayDraft {
	if d == nil {
		return nil
	}

	var structure *processing.EssayStructure
	if len(d.Structure) > 0 && string(d.Structure) != "null" {
		var s processing.EssayStructure
		if err := json.Unmarshal(d.Structure, &s); err == nil {
			structure = &s
		}
	}

	var order []int
	if len(d.ParagraphOrder) > 0 {
		// A corrupt stored order is treated as absent; the sequence store
		// falls back to the identity permutation on load.
		_ = json.Unmarshal(d.ParagraphOrder, &order)
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.EssayDraft{
		Id:             d.Id,
		ClientId:       d.ClientId,
		Structure:      structure,
		ParagraphOrder: order,
		IsGenerating:   d.IsGenerating,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *EssayDraftMapper) ToModel(d *entity.EssayDraft) *model.EssayDraft {
	if d == nil {
		return nil
	}

	structureJSON := datatypes.JSON("null")
	if d.Structure != nil {
		if b, err := json.Marshal(d.Structure); err == nil {
			structureJSON = datatypes.JSON(b)
		}
	}

	orderJSON := datatypes.JSON("[]")
	if d.ParagraphOrder != nil {
		if b, err := json.Marshal(d.ParagraphOrder); err == nil {
			orderJSON = datatypes.JSON(b)
		}
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.EssayDraft{
		Id:             d.Id,
		ClientId:       d.ClientId,
		Structure:      structureJSON,
		ParagraphOrder: orderJSON,
		IsGenerating:   d.IsGenerating,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

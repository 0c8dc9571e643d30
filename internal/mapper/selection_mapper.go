package mapper

import (
	"crypto/md5"
	"fmt"

	"pdf-evidence-be/internal/entity"
	"pdf-evidence-be/internal/model"
)

type SelectedEvidenceMapper struct{}

func NewSelectedEvidenceMapper() *SelectedEvidenceMapper {
	return &SelectedEvidenceMapper{}
}

// RawTextHash derives the index-friendly digest stored next to the full raw
// text. Identity checks in code always use the full text.
func RawTextHash(rawText string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(rawText)))
}

func (m *SelectedEvidenceMapper) ToEntity(s *model.SelectedEvidence) *entity.SelectedEvidence {
	if s == nil {
		return nil
	}
	return &entity.SelectedEvidence{
		Id:       s.Id,
		ClientId: s.ClientId,
		Evidence: entity.Evidence{
			DocumentName:          s.DocumentName,
			FileName:              s.FileName,
			EssayTopic:            s.EssayTopic,
			RawText:               s.RawText,
			Category:              s.Category,
			Reasoning:             s.Reasoning,
			Strength:              s.Strength,
			StrengthJustification: s.StrengthJustification,
			RelevanceScore:        s.RelevanceScore,
		},
		CreatedAt: s.CreatedAt,
	}
}

func (m *SelectedEvidenceMapper) ToModel(s *entity.SelectedEvidence) *model.SelectedEvidence {
	if s == nil {
		return nil
	}
	return &model.SelectedEvidence{
		Id:                    s.Id,
		ClientId:              s.ClientId,
		DocumentName:          s.Evidence.DocumentName,
		RawTextHash:           RawTextHash(s.Evidence.RawText),
		FileName:              s.Evidence.FileName,
		EssayTopic:            s.Evidence.EssayTopic,
		RawText:               s.Evidence.RawText,
		Category:              s.Evidence.Category,
		Reasoning:             s.Evidence.Reasoning,
		Strength:              s.Evidence.Strength,
		StrengthJustification: s.Evidence.StrengthJustification,
		RelevanceScore:        s.Evidence.RelevanceScore,
		CreatedAt:             s.CreatedAt,
	}
}

func (m *SelectedEvidenceMapper) ToEntities(models []*model.SelectedEvidence) []*entity.SelectedEvidence {
	entities := make([]*entity.SelectedEvidence, len(models))
	for i, s := range models {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

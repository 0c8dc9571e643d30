package entity

import (
	"time"

	"pdf-evidence-be/pkg/processing"

	"github.com/google/uuid"
)

// EssayDraft is the stored composition result plus the user-adjusted
// paragraph order. The order is a permutation over the body paragraphs and is
// persisted separately from the structure itself.
type EssayDraft struct {
	Id             uuid.UUID
	ClientId       uuid.UUID
	Structure      *processing.EssayStructure
	ParagraphOrder []int
	IsGenerating   bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

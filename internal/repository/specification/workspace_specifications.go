package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySessionID scopes chat messages to one session.
type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// ByEvidenceIdentity matches one selection entry by its composite key. The
// comparison uses the full raw text, not the stored hash.
type ByEvidenceIdentity struct {
	DocumentName string
	RawText      string
}

func (s ByEvidenceIdentity) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("document_name = ? AND raw_text = ?", s.DocumentName, s.RawText)
}

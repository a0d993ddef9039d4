package models

import (
	"time"

	"github.com/google/uuid"
)

// UserSession is the durable record of a deposit session: the client-declared
// identity material keyed by the session identifier, plus the current
// authentication challenge. Rows are written once at deposit initiation and
// are never deleted here; challenge rotation in later protocol steps updates
// the challenge column only.
type UserSession struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Authentication string    `gorm:"not null" json:"-"`
	ProofKey       string    `gorm:"column:proofkey;not null" json:"-"`
	Challenge      string    `gorm:"not null" json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
}

// TableName keeps the table name aligned with the wallet-facing schema.
func (UserSession) TableName() string {
	return "usersession"
}

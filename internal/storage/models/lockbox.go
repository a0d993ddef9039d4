package models

import (
	"github.com/google/uuid"
)

// Lockbox reserves a co-signing key-share slot for a session. The row links
// 1:1 to a UserSession by identifier; the key-share material itself is owned
// by the signing subsystem, which populates it through the same identifier.
// Existence of the row is the durable proof that custody provisioning
// occurred.
type Lockbox struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
}

// TableName keeps the table name aligned with the wallet-facing schema.
func (Lockbox) TableName() string {
	return "lockbox"
}

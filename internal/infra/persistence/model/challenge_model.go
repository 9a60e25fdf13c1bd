package model

import (
	"time"

	"github.com/google/uuid"
)

// ChallengeModel is the GORM-specific struct for the 'alarms_sent_out' table.
// One row records one verification challenge from the first reminder delivery
// of an alarm occurrence to its terminal resolution. CompletedAt and
// AttemptsMade stay NULL while the row is pending.
type ChallengeModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	AlarmID      uuid.UUID `gorm:"type:uuid;not null;index"`
	SentAt       time.Time `gorm:"not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CompletedAt  *time.Time
	AttemptsMade *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChallengeModel) TableName() string {
	return "alarms_sent_out"
}

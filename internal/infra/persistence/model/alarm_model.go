package model

import (
	"time"

	"wakeup/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AlarmModel is the GORM-specific struct for the 'alarms' table. The selected
// weekdays are packed into a bitmask, bit N for weekday N (Sunday = 0).
type AlarmModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Hours     int       `gorm:"not null"`
	Minutes   int       `gorm:"not null"`
	DaysMask  int16     `gorm:"not null;default:0"`
	IsEnabled bool      `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AlarmModel) TableName() string {
	return "alarms"
}

// DaysMaskFromWeekdays packs a weekday list into the column bitmask.
// Out-of-range values are dropped and duplicates collapse into one bit.
func DaysMaskFromWeekdays(days []entity.Weekday) int16 {
	var mask int16
	for _, day := range days {
		if day < 0 || day > 6 {
			continue
		}
		mask |= 1 << uint(day)
	}

	return mask
}

// WeekdaysFromMask unpacks the column bitmask into an ordered weekday list.
func WeekdaysFromMask(mask int16) []entity.Weekday {
	days := make([]entity.Weekday, 0, 7)
	for day := 0; day < 7; day++ {
		if mask&(1<<uint(day)) != 0 {
			days = append(days, entity.Weekday(day))
		}
	}

	return days
}

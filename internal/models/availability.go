package models

// Availability is a lawyer's declared office hours: a morning window and an
// evening window plus workday bounds. Read-only input to the reschedule
// validator; consultations are only movable onto 30-minute slots inside
// these windows. Times are local wall-clock HH:MM strings.
type Availability struct {
	BaseModel
	LawyerID uint `gorm:"not null;uniqueIndex" json:"lawyer_id"`

	MorningStart string `gorm:"type:varchar(5);not null" json:"morning_start"`
	MorningEnd   string `gorm:"type:varchar(5);not null" json:"morning_end"`
	EveningStart string `gorm:"type:varchar(5);not null" json:"evening_start"`
	EveningEnd   string `gorm:"type:varchar(5);not null" json:"evening_end"`

	WorkdayStart string `gorm:"type:varchar(10)" json:"workday_start"` // e.g. Monday
	WorkdayEnd   string `gorm:"type:varchar(10)" json:"workday_end"`   // e.g. Friday
}

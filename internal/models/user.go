package models

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	Phone        string   `json:"phone"`

	// Lawyer-only fields.
	ConsultationRate float64 `gorm:"default:0" json:"consultation_rate"` // fee per hour
	OfficeAddress    string  `json:"office_address"`
}

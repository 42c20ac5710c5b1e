package models

// SecretaryAffiliation links a secretary to a lawyer's office. Only an
// Approved affiliation lets the secretary act on that lawyer's
// consultations.
type SecretaryAffiliation struct {
	BaseModel
	SecretaryID uint              `gorm:"not null;index" json:"secretary_id"`
	LawyerID    uint              `gorm:"not null;index" json:"lawyer_id"`
	WorkStatus  AffiliationStatus `gorm:"type:varchar(20);default:'Pending'" json:"work_status"`

	// Relations
	Secretary *User `gorm:"foreignKey:SecretaryID" json:"secretary,omitempty"`
	Lawyer    *User `gorm:"foreignKey:LawyerID" json:"lawyer,omitempty"`
}

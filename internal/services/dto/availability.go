package dto

type UpsertAvailabilityRequest struct {
	MorningStart string `json:"morning_start" binding:"required,datetime=15:04"`
	MorningEnd   string `json:"morning_end" binding:"required,datetime=15:04"`
	EveningStart string `json:"evening_start" binding:"required,datetime=15:04"`
	EveningEnd   string `json:"evening_end" binding:"required,datetime=15:04"`
	WorkdayStart string `json:"workday_start"`
	WorkdayEnd   string `json:"workday_end"`
}

type AvailabilityResponse struct {
	LawyerID     uint     `json:"lawyer_id"`
	MorningStart string   `json:"morning_start"`
	MorningEnd   string   `json:"morning_end"`
	EveningStart string   `json:"evening_start"`
	EveningEnd   string   `json:"evening_end"`
	WorkdayStart string   `json:"workday_start"`
	WorkdayEnd   string   `json:"workday_end"`
	Slots        []string `json:"slots"` // bookable 30-minute slots
}

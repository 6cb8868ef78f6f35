package dto

import "anoa.com/yayasanalhikmah/internal/model"

// SettingsResponse is the public settings payload: stored content merged
// over defaults, plus the WhatsApp deep links built from the contact number.
type SettingsResponse struct {
	Content       model.WebsiteContent `json:"content"`
	WhatsAppLinks WhatsAppLinks        `json:"whatsapp_links"`
}

type WhatsAppLinks struct {
	ContactAdmin  string `json:"contact_admin"`
	Consultation  string `json:"consultation"`
	ScheduleVisit string `json:"schedule_visit"`
}

type ProgramDetailInput struct {
	Description string `json:"description"`
	Schedule    string `json:"schedule" binding:"max=200"`
	MonthlyFee  *int64 `json:"monthly_fee"`
	AgeRange    string `json:"age_range" binding:"max=50"`
}

package dto

type MessageInput struct {
	Name    string  `json:"name" binding:"required,max=100"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Content string  `json:"content" binding:"required,max=2000"`
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
}

type MessageSettingsInput struct {
	AutoPublish bool `json:"auto_publish"`
	MaxPerPage  int  `json:"max_per_page" binding:"required,min=1,max=100"`
}

type StatsResponse struct {
	VisitorsToday        int64 `json:"visitors_today"`
	VisitorsTotal        int64 `json:"visitors_total"`
	Students             int64 `json:"students"`
	Teachers             int64 `json:"teachers"`
	Graduates            int64 `json:"graduates"`
	Users                int64 `json:"users"`
	PendingRegistrations int64 `json:"pending_registrations"`
}

package event

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	EventType   string `json:"type" binding:"required,oneof=Announcement Event Holiday Meeting"`
	EventDate   string `json:"date" binding:"required"`
	Audience    string `json:"audience"`
}

type EventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	EventType   string `json:"type"`
	EventDate   string `json:"date"`
	Audience    string `json:"audience"`
	CreatedBy   string `json:"created_by,omitempty"`
}

package model

// WorkshopRegistrant is one registered attendee embedded in a workshop
// document.
type WorkshopRegistrant struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Attended bool   `json:"attended"`
	Rating   int    `json:"rating,omitempty"`
	Feedback string `json:"feedback,omitempty"`
}

// Workshop is the workshops document, keyed by id.
type Workshop struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Speaker     string               `json:"speaker,omitempty"`
	Agenda      string               `json:"agenda,omitempty"`
	StartDate   string               `json:"startDate"`
	EndDate     string               `json:"endDate"`
	Registrants []WorkshopRegistrant `json:"registrants"`
}

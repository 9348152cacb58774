package model

// Notification is the notifications document, keyed by id. A personal
// notification carries the recipient's email; a broadcast sets Global and
// targets a role via UserRole.
type Notification struct {
	ID       string `json:"id"`
	Email    string `json:"email,omitempty"`
	UserRole string `json:"userRole,omitempty"`
	Global   bool   `json:"global"`
	Message  string `json:"message"`
	Date     string `json:"date"`
	Read     bool   `json:"read"`
}

// Email is the emails document, keyed by id, with a secondary index on
// recipient. The mailbox is simulated: nothing leaves the process.
type Email struct {
	ID          string           `json:"id"`
	Recipient   string           `json:"recipient"`
	Sender      string           `json:"sender"`
	Subject     string           `json:"subject"`
	Body        string           `json:"body,omitempty"`
	Date        string           `json:"date"`
	Read        bool             `json:"read"`
	Attachments []FileAttachment `json:"attachments,omitempty"`
}

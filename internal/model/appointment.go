package model

// Appointment status constants
var (
	AppointmentStatusPending  = "pending"
	AppointmentStatusAccepted = "accepted"
	AppointmentStatusRejected = "rejected"
)

// Appointment is the scadAppointments / studentAppointments document shape,
// keyed by id. Present in the schema; no aggregation reads it.
type Appointment struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Date    string `json:"date"`
	Purpose string `json:"purpose,omitempty"`
	Status  string `json:"status"`
}

// AssessmentResult is one taken assessment embedded in the student's
// AssessmentResults document.
type AssessmentResult struct {
	Name          string `json:"name"`
	Score         int    `json:"score"`
	TakenAt       string `json:"takenAt,omitempty"`
	PostToProfile bool   `json:"postToProfile"`
}

// AssessmentsDoc is the AssessmentResults document, keyed by the student's
// email.
type AssessmentsDoc struct {
	Email   string             `json:"email"`
	Results []AssessmentResult `json:"results"`
}

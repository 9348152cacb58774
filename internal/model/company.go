package model

// Company registration status constants
var (
	// CompanyStatusPending indicates the registration awaits SCAD review
	CompanyStatusPending = "pending"
	// CompanyStatusAccepted indicates the company may post internships
	CompanyStatusAccepted = "accepted"
	// CompanyStatusRejected indicates the registration was declined
	CompanyStatusRejected = "rejected"
)

// CompanyProfile is the companyProfiles document, keyed by email.
type CompanyProfile struct {
	Email     string           `json:"email"`
	Name      string           `json:"name"`
	Industry  string           `json:"industry"`
	Size      string           `json:"size"`
	Status    string           `json:"status"`
	Logo      *FileAttachment  `json:"logo,omitempty"`
	Documents []FileAttachment `json:"documents,omitempty"`
}

// CompanyViewers is the companyViews document, keyed by the student's email.
// It tracks which companies viewed that student's profile. Schema only: no
// aggregation reads it.
type CompanyViewers struct {
	Email     string   `json:"email"`
	Companies []string `json:"companies"`
}

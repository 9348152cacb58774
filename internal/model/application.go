package model

// Application status constants
var (
	// ApplicationStatusPending indicates that the application is pending review
	ApplicationStatusPending = "pending"
	// ApplicationStatusFinalized indicates the company shortlisted the applicant
	ApplicationStatusFinalized = "finalized"
	// ApplicationStatusAccepted indicates the applicant was accepted
	ApplicationStatusAccepted = "accepted"
	// ApplicationStatusRejected indicates the application has been rejected
	ApplicationStatusRejected = "rejected"
	// ApplicationStatusCompleted indicates the internship was carried out to
	// the end; only completed applications count toward pro status
	ApplicationStatusCompleted = "completed"
)

// Application is one applicant's sub-record embedded in the aggregate
// document of its internship. StartDate, EndDate and CompletionDate are
// calendar-date strings; EndDate wins over CompletionDate when both are set.
type Application struct {
	Email          string          `json:"email"`
	StudentName    string          `json:"studentName"`
	Major          string          `json:"major,omitempty"`
	Status         string          `json:"status"`
	AppliedAt      string          `json:"appliedAt,omitempty"`
	StartDate      string          `json:"startDate,omitempty"`
	EndDate        string          `json:"endDate,omitempty"`
	CompletionDate string          `json:"completionDate,omitempty"`
	Resume         *FileAttachment `json:"resume,omitempty"`
}

// ApplicationsDoc is the InternshipApplications aggregate document: one
// internship's full applicant list, keyed by the internship id. Mutating a
// single applicant means rewriting the whole document.
type ApplicationsDoc struct {
	ID           string        `json:"id"`
	Applications []Application `json:"applications"`
}

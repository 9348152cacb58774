package model

import "fmt"

// Report status constants
var (
	ReportStatusPending  = "pending"
	ReportStatusApproved = "approved"
	ReportStatusRejected = "rejected"
	ReportStatusFlagged  = "flagged"
)

// Report is the free-text internship report embedded in an evaluation
// document. Status starts at pending on first submission. AppealResponse is
// informational text written by the student after a rejected or flagged
// review; it never drives a status transition by itself.
type Report struct {
	Text           string `json:"text"`
	Status         string `json:"status"`
	SubmittedAt    string `json:"submittedAt,omitempty"`
	Clarification  string `json:"clarification,omitempty"`
	AppealResponse string `json:"appealResponse,omitempty"`
}

// UpdateStatus applies a reviewer transition, validating it against the
// allowed ones: pending may go to approved, rejected or flagged, and a
// rejected or flagged report may be reopened to pending.
func (r *Report) UpdateStatus(newStatus string, clarification string) error {
	allowed := map[string][]string{
		ReportStatusPending:  {ReportStatusApproved, ReportStatusRejected, ReportStatusFlagged},
		ReportStatusRejected: {ReportStatusPending},
		ReportStatusFlagged:  {ReportStatusPending},
	}

	from := r.Status
	if from == "" {
		from = ReportStatusPending
	}
	for _, to := range allowed[from] {
		if to == newStatus {
			r.Status = newStatus
			r.Clarification = clarification
			return nil
		}
	}
	return fmt.Errorf("invalid report transition: %s -> %s", from, newStatus)
}

// Evaluation is one side's assessment of an internship pairing.
type Evaluation struct {
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	Recommend bool   `json:"recommend"`
}

// EvaluationDoc is the InternshipEvaluations aggregate document for one
// (student, company) internship pairing, keyed by internshipId. It embeds
// both evaluations and the report with its appeal.
type EvaluationDoc struct {
	InternshipID      string      `json:"internshipId"`
	Email             string      `json:"email"`
	CompanyEmail      string      `json:"companyEmail,omitempty"`
	CompanyName       string      `json:"companyName,omitempty"`
	CompanyEvaluation *Evaluation `json:"companyEvaluation,omitempty"`
	StudentEvaluation *Evaluation `json:"studentEvaluation,omitempty"`
	Report            *Report     `json:"report,omitempty"`
}

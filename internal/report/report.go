// Package report implements the internship report lifecycle and the
// display-ready join used by SCAD report review.
package report

import (
	"fmt"
	"time"

	"scadhub-backend/internal/model"
	"scadhub-backend/internal/store"
)

// ReportView is one display-ready row for report review: the evaluation
// document joined with the student's profile and the completion date from the
// applications aggregate.
type ReportView struct {
	InternshipID   string
	StudentEmail   string
	StudentName    string
	Major          string
	CompanyName    string
	Text           string
	Status         string
	Clarification  string
	AppealResponse string
	HasAppeal      bool
	CompletionDate string
}

// JoinReportView resolves the student's display fields from studentsByEmail
// and copies the report through. An absent student yields empty-string
// fields, never a failure, and a report without an explicit status shows as
// pending.
func JoinReportView(eval model.EvaluationDoc, studentsByEmail map[string]model.StudentProfile) ReportView {
	view := ReportView{
		InternshipID: eval.InternshipID,
		StudentEmail: eval.Email,
		CompanyName:  eval.CompanyName,
	}

	if student, ok := studentsByEmail[eval.Email]; ok {
		view.StudentName = student.DisplayName()
		view.Major = student.Major
	}

	if eval.Report != nil {
		view.Text = eval.Report.Text
		view.Status = eval.Report.Status
		if view.Status == "" {
			view.Status = model.ReportStatusPending
		}
		view.Clarification = eval.Report.Clarification
		view.AppealResponse = eval.Report.AppealResponse
		view.HasAppeal = HasAppeal(eval.Report)
	}

	return view
}

// HasAppeal infers "appealed" from the presence of appeal text next to a
// rejected or flagged status. There is no dedicated appealed state; the
// appealed tab keys off text presence, so this inference must stay
// presence-based.
func HasAppeal(r *model.Report) bool {
	if r == nil || r.AppealResponse == "" {
		return false
	}
	return r.Status == model.ReportStatusRejected || r.Status == model.ReportStatusFlagged
}

// BuildReportViews joins every evaluation document against the student
// profiles and the applications aggregates.
func BuildReportViews(s *store.Store) ([]ReportView, error) {
	evals, err := store.GetAllAs[model.EvaluationDoc](s, store.InternshipEvaluations)
	if err != nil {
		return nil, err
	}

	students, err := store.GetAllAs[model.StudentProfile](s, store.StudentProfiles)
	if err != nil {
		return nil, err
	}
	byEmail := make(map[string]model.StudentProfile, len(students))
	for _, st := range students {
		byEmail[st.Email] = st
	}

	appDocs, err := store.GetAllAs[model.ApplicationsDoc](s, store.InternshipApplications)
	if err != nil {
		return nil, err
	}

	views := make([]ReportView, 0, len(evals))
	for _, eval := range evals {
		view := JoinReportView(eval, byEmail)
		view.CompletionDate = completionDate(appDocs, eval.InternshipID, eval.Email)
		views = append(views, view)
	}
	return views, nil
}

func completionDate(appDocs []model.ApplicationsDoc, internshipID, email string) string {
	for _, doc := range appDocs {
		if doc.ID != internshipID {
			continue
		}
		for _, app := range doc.Applications {
			if app.Email != email {
				continue
			}
			if app.CompletionDate != "" {
				return app.CompletionDate
			}
			return app.EndDate
		}
	}
	return ""
}

// Submit writes the student's report text into the evaluation document,
// creating the document on first write. A first submission starts at
// pending; a resubmission keeps the current status.
func Submit(s *store.Store, internshipID, email, text string) error {
	eval, err := store.GetOneAs[model.EvaluationDoc](s, store.InternshipEvaluations, internshipID)
	if err != nil {
		return err
	}
	if eval == nil {
		eval = &model.EvaluationDoc{InternshipID: internshipID, Email: email}
	}

	if eval.Report == nil {
		eval.Report = &model.Report{Status: model.ReportStatusPending}
	}
	eval.Report.Text = text
	eval.Report.SubmittedAt = time.Now().UTC().Format(time.RFC3339)
	if eval.Report.Status == "" {
		eval.Report.Status = model.ReportStatusPending
	}

	return s.Upsert(store.InternshipEvaluations, eval)
}

// Review applies a faculty status transition with an optional clarification
// shown to the student.
func Review(s *store.Store, internshipID, newStatus, clarification string) error {
	eval, err := store.GetOneAs[model.EvaluationDoc](s, store.InternshipEvaluations, internshipID)
	if err != nil {
		return err
	}
	if eval == nil || eval.Report == nil {
		return fmt.Errorf("no report submitted for internship %s", internshipID)
	}

	if err := eval.Report.UpdateStatus(newStatus, clarification); err != nil {
		return err
	}
	return s.Upsert(store.InternshipEvaluations, eval)
}

// Appeal records the student's appeal text against a rejected or flagged
// report. The status is left untouched until faculty explicitly
// re-transitions it.
func Appeal(s *store.Store, internshipID, message string) error {
	eval, err := store.GetOneAs[model.EvaluationDoc](s, store.InternshipEvaluations, internshipID)
	if err != nil {
		return err
	}
	if eval == nil || eval.Report == nil {
		return fmt.Errorf("no report submitted for internship %s", internshipID)
	}
	if eval.Report.Status != model.ReportStatusRejected && eval.Report.Status != model.ReportStatusFlagged {
		return fmt.Errorf("report for internship %s is %s, nothing to appeal", internshipID, eval.Report.Status)
	}

	eval.Report.AppealResponse = message
	return s.Upsert(store.InternshipEvaluations, eval)
}

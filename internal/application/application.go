// Package application mutates the per-internship applications aggregate.
// Every single-applicant edit is a whole-document rewrite, so the
// read-modify-write lives here in one place instead of being repeated at
// every call site.
package application

import (
	"fmt"

	"scadhub-backend/internal/model"
	"scadhub-backend/internal/store"
)

// Upsert inserts or replaces one applicant's entry (matched by email) inside
// the aggregate document of the internship, creating the document on first
// application. The read-modify-write is not atomic across callers; the
// last writer wins.
func Upsert(s *store.Store, internshipID string, app model.Application) error {
	doc, err := store.GetOneAs[model.ApplicationsDoc](s, store.InternshipApplications, internshipID)
	if err != nil {
		return err
	}
	if doc == nil {
		doc = &model.ApplicationsDoc{ID: internshipID}
	}

	replaced := false
	for i := range doc.Applications {
		if doc.Applications[i].Email == app.Email {
			doc.Applications[i] = app
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Applications = append(doc.Applications, app)
	}

	return s.Upsert(store.InternshipApplications, doc)
}

// SetStatus updates one applicant's status, leaving every other field of the
// entry and of its siblings unchanged.
func SetStatus(s *store.Store, internshipID, email, status string) error {
	doc, err := store.GetOneAs[model.ApplicationsDoc](s, store.InternshipApplications, internshipID)
	if err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("no applications recorded for internship %s", internshipID)
	}

	for i := range doc.Applications {
		if doc.Applications[i].Email == email {
			doc.Applications[i].Status = status
			return s.Upsert(store.InternshipApplications, doc)
		}
	}
	return fmt.Errorf("no application from %s for internship %s", email, internshipID)
}

// CompletedFor flattens every aggregate and keeps the student's completed
// applications.
func CompletedFor(s *store.Store, email string) ([]model.Application, error) {
	docs, err := store.GetAllAs[model.ApplicationsDoc](s, store.InternshipApplications)
	if err != nil {
		return nil, err
	}

	out := []model.Application{}
	for _, doc := range docs {
		for _, app := range doc.Applications {
			if app.Email == email && app.Status == model.ApplicationStatusCompleted {
				out = append(out, app)
			}
		}
	}
	return out, nil
}

// RemoveInternship deletes an internship listing and its applications
// document, but only while no applications exist.
func RemoveInternship(s *store.Store, internshipID string) error {
	doc, err := store.GetOneAs[model.ApplicationsDoc](s, store.InternshipApplications, internshipID)
	if err != nil {
		return err
	}
	if doc != nil && len(doc.Applications) > 0 {
		return fmt.Errorf("internship %s has %d applications", internshipID, len(doc.Applications))
	}

	if err := s.DeleteOne(store.InternshipApplications, internshipID); err != nil {
		return err
	}
	return s.DeleteOne(store.Internships, internshipID)
}

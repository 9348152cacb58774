// Package eligibility decides whether a student has accumulated enough
// internship days to count as a pro student.
package eligibility

import (
	"scadhub-backend/internal/model"
	"scadhub-backend/internal/store"
	"scadhub-backend/internal/utilities"
)

// ProThresholdDays is the cumulative internship duration that upgrades a
// student to pro.
const ProThresholdDays = 90

// TotalInternshipDays sums the student's internship duration from both
// sources: profile-recorded internship experiences and completed
// applications found in the aggregate documents. Entries with missing or
// unparseable dates contribute zero, and a reversed date pair contributes
// zero rather than a negative adjustment.
func TotalInternshipDays(profile *model.StudentProfile, appDocs []model.ApplicationsDoc, email string) int {
	total := 0

	if profile != nil {
		for _, exp := range profile.Experiences {
			if exp.Type != model.ExperienceInternship {
				continue
			}
			from, okFrom := utilities.ParseDate(exp.DateFrom)
			to, okTo := utilities.ParseDate(exp.DateTo)
			if okFrom && okTo {
				total += utilities.DaysBetween(from, to)
			}
		}
	}

	for _, doc := range appDocs {
		for _, app := range doc.Applications {
			if app.Email != email || app.Status != model.ApplicationStatusCompleted {
				continue
			}
			end := app.EndDate
			if end == "" {
				end = app.CompletionDate
			}
			start, okStart := utilities.ParseDate(app.StartDate)
			finish, okEnd := utilities.ParseDate(end)
			if okStart && okEnd {
				total += utilities.DaysBetween(start, finish)
			}
		}
	}

	return total
}

// ComputeProStatus loads the student's profile and every applications
// aggregate, then applies the threshold. A missing profile is not an error;
// it just contributes zero days. The result is recomputed from the stored
// data on every call, so callers must re-invoke it whenever authoritative
// status is needed instead of trusting a previously stored role.
func ComputeProStatus(s *store.Store, email string) (bool, error) {
	profile, err := store.GetOneAs[model.StudentProfile](s, store.StudentProfiles, email)
	if err != nil {
		return false, err
	}

	appDocs, err := store.GetAllAs[model.ApplicationsDoc](s, store.InternshipApplications)
	if err != nil {
		return false, err
	}

	return TotalInternshipDays(profile, appDocs, email) >= ProThresholdDays, nil
}

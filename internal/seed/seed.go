// Package seed writes a small demo dataset through the store.
package seed

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"scadhub-backend/internal/model"
	"scadhub-backend/internal/store"
)

// Run seeds demo documents unless student profiles already exist.
func Run(s *store.Store) error {
	existing, err := s.GetAll(store.StudentProfiles)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logrus.Info("store already seeded, skipping")
		return nil
	}

	students := []model.StudentProfile{
		{
			Email:     "mariam@student.guc.edu.eg",
			FirstName: "Mariam",
			LastName:  "ElSayed",
			Major:     "MET",
			Semester:  "6",
			Experiences: []model.Experience{
				{
					Type:     model.ExperienceInternship,
					Company:  "DataForge",
					Position: "Analytics Intern",
					DateFrom: "2023-07-01",
					DateTo:   "2023-09-15",
				},
			},
		},
		{
			Email:       "omar@student.guc.edu.eg",
			FirstName:   "Omar",
			LastName:    "Hassan",
			Major:       "IET",
			Semester:    "4",
			Experiences: []model.Experience{},
		},
	}
	for _, p := range students {
		if err := s.Upsert(store.StudentProfiles, p); err != nil {
			return err
		}
	}

	company := model.CompanyProfile{
		Email:    "careers@dataforge.example.com",
		Name:     "DataForge",
		Industry: "Consulting",
		Size:     "large",
		Status:   model.CompanyStatusAccepted,
	}
	if err := s.Upsert(store.CompanyProfiles, company); err != nil {
		return err
	}

	internship := model.Internship{
		ID:           "1",
		CompanyEmail: company.Email,
		CompanyName:  company.Name,
		Title:        "Data Engineering Intern",
		Duration:     "3 months",
		Paid:         true,
		Salary:       "9000 EGP",
		Skills:       []string{"sql", "python"},
		Description:  "Support the analytics platform team.",
		Industry:     company.Industry,
		PostedAt:     time.Now().UTC().Format("2006-01-02"),
	}
	if err := s.Upsert(store.Internships, internship); err != nil {
		return err
	}

	apps := model.ApplicationsDoc{
		ID: internship.ID,
		Applications: []model.Application{
			{
				Email:       students[0].Email,
				StudentName: students[0].DisplayName(),
				Major:       students[0].Major,
				Status:      model.ApplicationStatusPending,
				AppliedAt:   time.Now().UTC().Format("2006-01-02"),
			},
		},
	}
	if err := s.Upsert(store.InternshipApplications, apps); err != nil {
		return err
	}

	workshop := model.Workshop{
		ID:          "1",
		Name:        "Interview Skills",
		Speaker:     "SCAD Office",
		StartDate:   "2024-09-20",
		EndDate:     "2024-09-20",
		Registrants: []model.WorkshopRegistrant{},
	}
	if err := s.Upsert(store.Workshops, workshop); err != nil {
		return err
	}

	welcome := model.Notification{
		ID:       uuid.NewString(),
		Global:   true,
		UserRole: model.RoleStudent,
		Message:  "A new internship cycle is open",
		Date:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Upsert(store.Notifications, welcome); err != nil {
		return err
	}

	logrus.Info("seeded demo documents")
	return nil
}

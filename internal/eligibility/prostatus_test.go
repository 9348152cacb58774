package eligibility

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"scadhub-backend/internal/model"
	"scadhub-backend/internal/store"
)

var testStore *store.Store

func TestMain(m *testing.M) {
	var err error
	var storeTeardown func(context.Context, ...testcontainers.TerminateOption) error
	storeTeardown, testStore, err = store.GetTestStore()
	if err != nil {
		os.Exit(1)
	}
	m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if storeTeardown != nil {
		_ = storeTeardown(ctx)
	}
}

func TestProfileExperienceDays(t *testing.T) {
	profile := &model.StudentProfile{
		Email: "a@x.com",
		Experiences: []model.Experience{
			{Type: model.ExperienceInternship, DateFrom: "2024-01-01", DateTo: "2024-02-15"},
			// Not an internship, never counted
			{Type: model.ExperiencePartTime, DateFrom: "2023-01-01", DateTo: "2023-12-31"},
		},
	}

	assert.Equal(t, 45, TotalInternshipDays(profile, nil, "a@x.com"))
}

func TestMissingDatesContributeZero(t *testing.T) {
	profile := &model.StudentProfile{
		Email: "a@x.com",
		Experiences: []model.Experience{
			{Type: model.ExperienceInternship, DateFrom: "2024-01-01"},
			{Type: model.ExperienceInternship, DateFrom: "not-a-date", DateTo: "2024-02-01"},
		},
	}

	assert.Equal(t, 0, TotalInternshipDays(profile, nil, "a@x.com"))
}

func TestReversedRangeContributesZero(t *testing.T) {
	apps := []model.ApplicationsDoc{
		{
			ID: "1",
			Applications: []model.Application{
				{
					Email:     "a@x.com",
					Status:    model.ApplicationStatusCompleted,
					StartDate: "2024-06-01",
					EndDate:   "2024-05-01",
				},
			},
		},
	}

	// Never a negative adjustment
	assert.Equal(t, 0, TotalInternshipDays(nil, apps, "a@x.com"))
}

func TestCompletionDateFallback(t *testing.T) {
	apps := []model.ApplicationsDoc{
		{
			ID: "1",
			Applications: []model.Application{
				{
					Email:          "a@x.com",
					Status:         model.ApplicationStatusCompleted,
					StartDate:      "2024-03-01",
					CompletionDate: "2024-03-31",
				},
			},
		},
	}

	assert.Equal(t, 30, TotalInternshipDays(nil, apps, "a@x.com"))
}

func TestOnlyCompletedOwnApplicationsCount(t *testing.T) {
	apps := []model.ApplicationsDoc{
		{
			ID: "1",
			Applications: []model.Application{
				{Email: "a@x.com", Status: model.ApplicationStatusAccepted, StartDate: "2024-01-01", EndDate: "2024-12-31"},
				{Email: "b@x.com", Status: model.ApplicationStatusCompleted, StartDate: "2024-01-01", EndDate: "2024-12-31"},
			},
		},
	}

	assert.Equal(t, 0, TotalInternshipDays(nil, apps, "a@x.com"))
}

func TestCombinedSourcesCrossThreshold(t *testing.T) {
	profile := &model.StudentProfile{
		Email: "a@x.com",
		Experiences: []model.Experience{
			{Type: model.ExperienceInternship, DateFrom: "2024-01-01", DateTo: "2024-02-15"},
		},
	}
	apps := []model.ApplicationsDoc{
		{
			ID: "1",
			Applications: []model.Application{
				{Email: "a@x.com", Status: model.ApplicationStatusCompleted, StartDate: "2024-03-01", EndDate: "2024-05-01"},
			},
		},
	}

	// 45 profile days + 61 application days
	total := TotalInternshipDays(profile, apps, "a@x.com")
	assert.Equal(t, 106, total)
	assert.GreaterOrEqual(t, total, ProThresholdDays)
}

func TestAddingCompletedApplicationNeverDecreasesTotal(t *testing.T) {
	profile := &model.StudentProfile{
		Email: "a@x.com",
		Experiences: []model.Experience{
			{Type: model.ExperienceInternship, DateFrom: "2024-01-01", DateTo: "2024-03-01"},
		},
	}
	apps := []model.ApplicationsDoc{{ID: "1", Applications: []model.Application{}}}

	before := TotalInternshipDays(profile, apps, "a@x.com")

	apps[0].Applications = append(apps[0].Applications, model.Application{
		Email:     "a@x.com",
		Status:    model.ApplicationStatusCompleted,
		StartDate: "2024-04-01",
		EndDate:   "2024-05-11",
	})
	after := TotalInternshipDays(profile, apps, "a@x.com")

	assert.GreaterOrEqual(t, after, before)
	assert.Equal(t, 60+40, after)
}

func TestComputeProStatusSeeded(t *testing.T) {
	// Alice: 45 profile days + 61 completed-application days = 106.
	pro, err := ComputeProStatus(testStore, store.TestStudentAlice.Email)
	assert.NoError(t, err)
	assert.True(t, pro)

	// Bob has no internship history at all.
	pro, err = ComputeProStatus(testStore, store.TestStudentBob.Email)
	assert.NoError(t, err)
	assert.False(t, pro)
}

func TestComputeProStatusUnknownStudent(t *testing.T) {
	// No profile and no applications: zero days, not an error.
	pro, err := ComputeProStatus(testStore, "ghost@student.guc.edu.eg")
	assert.NoError(t, err)
	assert.False(t, pro)
}

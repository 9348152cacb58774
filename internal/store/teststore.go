package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	// Register lib/pq for the raw bootstrap connection
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "scadhub-backend/internal/model"
)

var testStoreInstance *Store
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported seeded fixtures, shared by the package tests that need a live
// store.
var (
	// TestStudentAlice has 45 profile days plus a 61-day completed
	// application seeded in TestApplications1, for 106 total.
	TestStudentAlice m.StudentProfile
	// TestStudentBob has no experiences and no completed applications.
	TestStudentBob m.StudentProfile

	TestCompany1 m.CompanyProfile

	TestInternship1 m.Internship
	TestInternship2 m.Internship

	TestApplications1 m.ApplicationsDoc

	TestEvaluation1 m.EvaluationDoc

	TestWorkshop1 m.Workshop

	TestNotifications []m.Notification

	TestEmails []m.Email
)

// GetTestStore starts a PostgreSQL test container, opens a store against it,
// seeds the fixture documents and returns a teardown function, the store and
// any error encountered during setup.
func GetTestStore() (func(context.Context, ...testcontainers.TerminateOption) error, *Store, error) {

	if testStoreInstance != nil && teardown != nil {
		return teardown, testStoreInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort.Port(), dbUser, dbPwd, dbName)
	if err := pingRaw(dsn); err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &Config{
		useConstr: true,
		Constr: fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			dbUser, dbPwd, dbHost, dbPort.Port(), dbName),
	}

	s, err := Open(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(s); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testStoreInstance = s
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, s, nil
}

// pingRaw checks the container accepts connections over a plain database/sql
// connection before the ORM takes over.
func pingRaw(dsn string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logrus.Fatal("Fail to close bootstrap connection")
		}
	}()

	return db.PingContext(context.Background())
}

// seedTestData writes the fixture documents if the store is empty.
func seedTestData(s *Store) error {
	existing, err := s.GetAll(StudentProfiles)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	TestStudentAlice = m.StudentProfile{
		Email:     "alice@student.guc.edu.eg",
		FirstName: "Alice",
		LastName:  "Nguyen",
		Major:     "MET",
		Semester:  "6",
		Experiences: []m.Experience{
			{
				Type:     m.ExperienceInternship,
				Company:  "TechNova",
				Position: "Backend Intern",
				DateFrom: "2024-01-01",
				DateTo:   "2024-02-15",
			},
			{
				Type:     m.ExperiencePartTime,
				Company:  "Campus Library",
				Position: "Assistant",
				DateFrom: "2023-09-01",
				DateTo:   "2023-12-20",
			},
		},
	}
	TestStudentBob = m.StudentProfile{
		Email:       "bob@student.guc.edu.eg",
		FirstName:   "Bob",
		LastName:    "Somsak",
		Major:       "IET",
		Semester:    "4",
		Experiences: []m.Experience{},
	}
	for _, p := range []m.StudentProfile{TestStudentAlice, TestStudentBob} {
		if err := s.Upsert(StudentProfiles, p); err != nil {
			return err
		}
	}

	TestCompany1 = m.CompanyProfile{
		Email:    "hr@technova.example.com",
		Name:     "TechNova",
		Industry: "Software",
		Size:     "medium",
		Status:   m.CompanyStatusAccepted,
	}
	if err := s.Upsert(CompanyProfiles, TestCompany1); err != nil {
		return err
	}

	TestInternship1 = m.Internship{
		ID:           "301",
		CompanyEmail: TestCompany1.Email,
		CompanyName:  TestCompany1.Name,
		Title:        "Backend Engineer Intern",
		Duration:     "2 months",
		Paid:         true,
		Salary:       "8000 EGP",
		Skills:       []string{"go", "sql"},
		Description:  "Work on service and storage layers.",
		Industry:     "Software",
		PostedAt:     "2024-02-01",
	}
	TestInternship2 = m.Internship{
		ID:           "302",
		CompanyEmail: TestCompany1.Email,
		CompanyName:  TestCompany1.Name,
		Title:        "Data Analyst Intern",
		Duration:     "3 months",
		Paid:         false,
		Skills:       []string{"sql", "statistics"},
		Description:  "Support data cleansing and dashboards.",
		Industry:     "Software",
		PostedAt:     "2024-02-10",
	}
	for _, in := range []m.Internship{TestInternship1, TestInternship2} {
		if err := s.Upsert(Internships, in); err != nil {
			return err
		}
	}

	TestApplications1 = m.ApplicationsDoc{
		ID: TestInternship1.ID,
		Applications: []m.Application{
			{
				Email:       TestStudentAlice.Email,
				StudentName: "Alice Nguyen",
				Major:       "MET",
				Status:      m.ApplicationStatusCompleted,
				StartDate:   "2024-03-01",
				EndDate:     "2024-05-01",
			},
			{
				Email:       TestStudentBob.Email,
				StudentName: "Bob Somsak",
				Major:       "IET",
				Status:      m.ApplicationStatusPending,
			},
		},
	}
	if err := s.Upsert(InternshipApplications, TestApplications1); err != nil {
		return err
	}

	TestEvaluation1 = m.EvaluationDoc{
		InternshipID: TestInternship1.ID,
		Email:        TestStudentAlice.Email,
		CompanyEmail: TestCompany1.Email,
		CompanyName:  TestCompany1.Name,
		Report: &m.Report{
			Text:        "Built the ingestion pipeline.",
			Status:      m.ReportStatusPending,
			SubmittedAt: "2024-05-02",
		},
	}
	if err := s.Upsert(InternshipEvaluations, TestEvaluation1); err != nil {
		return err
	}

	TestWorkshop1 = m.Workshop{
		ID:          "w1",
		Name:        "CV Writing",
		Speaker:     "SCAD Office",
		StartDate:   "2024-04-10",
		EndDate:     "2024-04-10",
		Registrants: []m.WorkshopRegistrant{},
	}
	if err := s.Upsert(Workshops, TestWorkshop1); err != nil {
		return err
	}

	TestNotifications = []m.Notification{
		{ID: "n1", Global: true, UserRole: m.RoleStudent, Message: "New internship cycle begins", Date: "2024-01-01"},
		{ID: "n2", Email: TestStudentAlice.Email, Message: "Your report status was set to pending", Date: "2024-03-01"},
		{ID: "n3", Global: true, UserRole: m.RoleCompany, Message: "Evaluation deadline approaching", Date: "2024-02-01"},
	}
	for _, n := range TestNotifications {
		if err := s.Upsert(Notifications, n); err != nil {
			return err
		}
	}

	TestEmails = []m.Email{
		{ID: "e1", Recipient: TestStudentAlice.Email, Sender: "scad@guc.edu.eg", Subject: "Welcome", Date: "2024-01-02"},
		{ID: "e2", Recipient: TestStudentAlice.Email, Sender: "scad@guc.edu.eg", Subject: "Report received", Date: "2024-05-02"},
		{ID: "e3", Recipient: TestStudentBob.Email, Sender: "scad@guc.edu.eg", Subject: "Welcome", Date: "2024-01-02"},
	}
	for _, e := range TestEmails {
		if err := s.Upsert(Emails, e); err != nil {
			return err
		}
	}

	return nil
}

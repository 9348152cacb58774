package report

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

func TestJoinResolvesStudentFields(t *testing.T) {
	students := map[string]model.StudentProfile{
		"a@x.com": {Email: "a@x.com", FirstName: "Alice", LastName: "Nguyen", Major: "MET"},
	}
	eval := model.EvaluationDoc{
		InternshipID: "301",
		Email:        "a@x.com",
		CompanyName:  "TechNova",
		Report:       &model.Report{Text: "done", Status: model.ReportStatusApproved},
	}

	view := JoinReportView(eval, students)
	assert.Equal(t, "Alice Nguyen", view.StudentName)
	assert.Equal(t, "MET", view.Major)
	assert.Equal(t, model.ReportStatusApproved, view.Status)
}

func TestJoinAbsentStudentYieldsEmptyFields(t *testing.T) {
	eval := model.EvaluationDoc{
		InternshipID: "301",
		Email:        "ghost@x.com",
		Report:       &model.Report{Text: "done"},
	}

	view := JoinReportView(eval, map[string]model.StudentProfile{})
	assert.Empty(t, view.StudentName)
	assert.Empty(t, view.Major)
	// Report without an explicit status shows as pending.
	assert.Equal(t, model.ReportStatusPending, view.Status)
}

func TestStatusTransitions(t *testing.T) {
	r := &model.Report{Status: model.ReportStatusPending}

	assert.NoError(t, r.UpdateStatus(model.ReportStatusRejected, "missing section"))
	assert.Equal(t, model.ReportStatusRejected, r.Status)
	assert.Equal(t, "missing section", r.Clarification)

	// rejected can only reopen to pending
	assert.Error(t, r.UpdateStatus(model.ReportStatusApproved, ""))
	assert.NoError(t, r.UpdateStatus(model.ReportStatusPending, ""))
	assert.NoError(t, r.UpdateStatus(model.ReportStatusApproved, ""))

	// approved is terminal
	assert.Error(t, r.UpdateStatus(model.ReportStatusFlagged, ""))
}

func TestHasAppealIsPresenceBased(t *testing.T) {
	assert.False(t, HasAppeal(nil))
	assert.False(t, HasAppeal(&model.Report{Status: model.ReportStatusRejected}))
	assert.False(t, HasAppeal(&model.Report{Status: model.ReportStatusApproved, AppealResponse: "why"}))
	assert.True(t, HasAppeal(&model.Report{Status: model.ReportStatusRejected, AppealResponse: "why"}))
	assert.True(t, HasAppeal(&model.Report{Status: model.ReportStatusFlagged, AppealResponse: "why"}))
}

func TestReportLifecycle(t *testing.T) {
	const internshipID = "910"

	// Student submits: status defaults to pending.
	assert.NoError(t, Submit(testStore, internshipID, "a@x.com", "my report"))
	eval, err := store.GetOneAs[model.EvaluationDoc](testStore, store.InternshipEvaluations, internshipID)
	assert.NoError(t, err)
	if !assert.NotNil(t, eval) || !assert.NotNil(t, eval.Report) {
		return
	}
	assert.Equal(t, model.ReportStatusPending, eval.Report.Status)

	// Faculty rejects.
	assert.NoError(t, Review(testStore, internshipID, model.ReportStatusRejected, "too short"))

	// Student appeals: text is recorded, status stays rejected.
	assert.NoError(t, Appeal(testStore, internshipID, "please reconsider"))
	eval, err = store.GetOneAs[model.EvaluationDoc](testStore, store.InternshipEvaluations, internshipID)
	assert.NoError(t, err)
	if assert.NotNil(t, eval) && assert.NotNil(t, eval.Report) {
		assert.Equal(t, model.ReportStatusRejected, eval.Report.Status)
		assert.Equal(t, "please reconsider", eval.Report.AppealResponse)
		assert.True(t, HasAppeal(eval.Report))
	}

	// Only an explicit faculty re-transition reopens it.
	assert.NoError(t, Review(testStore, internshipID, model.ReportStatusPending, ""))
	eval, err = store.GetOneAs[model.EvaluationDoc](testStore, store.InternshipEvaluations, internshipID)
	assert.NoError(t, err)
	if assert.NotNil(t, eval) && assert.NotNil(t, eval.Report) {
		assert.Equal(t, model.ReportStatusPending, eval.Report.Status)
	}
}

func TestReviewWithoutReport(t *testing.T) {
	assert.Error(t, Review(testStore, "no-such-internship", model.ReportStatusApproved, ""))
	assert.Error(t, Appeal(testStore, "no-such-internship", "text"))
}

func TestBuildReportViewsJoinsCompletionDate(t *testing.T) {
	views, err := BuildReportViews(testStore)
	assert.NoError(t, err)

	var found bool
	for _, v := range views {
		if v.InternshipID == store.TestInternship1.ID && v.StudentEmail == store.TestStudentAlice.Email {
			found = true
			assert.Equal(t, "Alice Nguyen", v.StudentName)
			assert.Equal(t, "2024-05-01", v.CompletionDate)
		}
	}
	assert.True(t, found)
}

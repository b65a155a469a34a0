package assignment_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/assignment"
	"github.com/trezcool/darasa/core/directory"
	"github.com/trezcool/darasa/services/email"
	"github.com/trezcool/darasa/storage/database/inmem"
)

type (
	submissionSeeder interface {
		CreateSubmission(sub assignment.Submission) (assignment.Submission, error)
	}
	sentMailRecorder interface {
		SentMessages() []core.EmailMessage
	}
)

type fixtures struct {
	svc     *assignment.Service
	subRepo submissionSeeder
	mailSvc sentMailRecorder
	classID uuid.UUID
}

func setup(t *testing.T) fixtures {
	t.Helper()

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	dirRepo := inmemdb.NewDirectoryRepository(db)
	mailSvc := emailsvc.NewDummyService()

	classID := uuid.New()
	students := []directory.Student{
		{ID: uuid.New(), Name: "Asha", Email: "asha@school.test"},
		{ID: uuid.New(), Name: "Juma", Email: "juma@school.test"},
	}
	for _, s := range students {
		dirRepo.AddStudent(s)
	}
	dirRepo.AddClass(directory.Class{
		ID:         classID,
		Name:       "Form 1A",
		StudentIDs: []uuid.UUID{students[0].ID, students[1].ID},
	})

	subRepo := inmemdb.NewSubmissionRepository(db)
	svc := assignment.NewService(
		inmemdb.NewAssignmentRepository(db),
		subRepo,
		dirRepo,
		mailSvc,
		&core.Config{AppName: "Darasa", TestMode: true},
	)
	return fixtures{
		svc:     svc,
		subRepo: subRepo.(submissionSeeder),
		mailSvc: mailSvc,
		classID: classID,
	}
}

func newAssignment(classID uuid.UUID, active bool) assignment.NewAssignment {
	now := time.Now().UTC()
	return assignment.NewAssignment{
		Title:       "Algebra drill",
		Type:        assignment.TypeExercise,
		CourseID:    uuid.New(),
		TeacherID:   uuid.New(),
		ClassIDs:    []uuid.UUID{classID},
		StartDate:   now.Add(-time.Hour),
		DueDate:     now.Add(24 * time.Hour),
		MaxAttempts: 3,
		IsActive:    active,
	}
}

func TestService_Create(t *testing.T) {
	fx := setup(t)

	na := newAssignment(fx.classID, true)
	if err := na.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	a, err := fx.svc.Create(na)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.Equal(t, "Algebra drill", a.Title)
	assert.False(t, a.CreatedAt.IsZero())

	// published on create: the roster is notified
	sent := fx.mailSvc.SentMessages()
	if assert.Len(t, sent, 1) {
		assert.Len(t, sent[0].To, 2)
		assert.Contains(t, sent[0].Subject, "Algebra drill")
	}
}

func TestService_Create_draftDoesNotNotify(t *testing.T) {
	fx := setup(t)

	if _, err := fx.svc.Create(newAssignment(fx.classID, false)); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	assert.Empty(t, fx.mailSvc.SentMessages())
}

func TestService_Update_firstPublishNotifies(t *testing.T) {
	fx := setup(t)

	a, err := fx.svc.Create(newAssignment(fx.classID, false))
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	active := true
	ua := assignment.UpdateAssignment{IsActive: &active}
	if err = ua.Validate(a); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	courseID, teacherID := a.CourseID, a.TeacherID
	a, err = fx.svc.Update(a.ID, ua)
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	assert.True(t, a.IsActive)
	assert.Len(t, fx.mailSvc.SentMessages(), 1)

	// identity fields absent from the update payload survive the merge
	assert.Equal(t, courseID, a.CourseID)
	assert.Equal(t, teacherID, a.TeacherID)

	// re-saving an already published assignment stays quiet
	ua = assignment.UpdateAssignment{Title: "Algebra drill II"}
	if err = ua.Validate(a); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if _, err = fx.svc.Update(a.ID, ua); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	assert.Len(t, fx.mailSvc.SentMessages(), 1)
}

func TestService_Duplicate(t *testing.T) {
	fx := setup(t)

	orig, err := fx.svc.Create(newAssignment(fx.classID, true))
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	dup, err := fx.svc.Duplicate(orig.ID)
	if err != nil {
		t.Fatalf("Duplicate() failed: %v", err)
	}
	assert.NotEqual(t, orig.ID, dup.ID)
	assert.Equal(t, orig.Title+" (Copy)", dup.Title)
	assert.False(t, dup.IsActive)
	assert.Equal(t, orig.ClassIDs, dup.ClassIDs)

	_, err = fx.svc.Duplicate(uuid.New())
	assert.Equal(t, assignment.ErrNotFound, err)
}

func TestService_Progress(t *testing.T) {
	fx := setup(t)

	a, err := fx.svc.Create(newAssignment(fx.classID, true))
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	score := 88.0
	_, err = fx.subRepo.CreateSubmission(assignment.Submission{
		AssignmentID: a.ID,
		StudentID:    uuid.New(),
		Status:       assignment.SubmissionGraded,
		Score:        &score,
		MaxScore:     100,
	})
	if err != nil {
		t.Fatalf("CreateSubmission() failed: %v", err)
	}

	prog, err := fx.svc.Progress(a.ID)
	if err != nil {
		t.Fatalf("Progress() failed: %v", err)
	}
	assert.Equal(t, 2, prog.StudentCount)
	assert.Equal(t, 1, prog.SubmissionCount)
	assert.Equal(t, 50, prog.CompletionRate)
	assert.Equal(t, 88, prog.AverageScore)
}

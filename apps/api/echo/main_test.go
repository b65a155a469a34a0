package echoapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/darasa/apps/api/echo"
	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/assignment"
	"github.com/trezcool/darasa/core/directory"
	"github.com/trezcool/darasa/core/evaluation"
	"github.com/trezcool/darasa/services/email"
	"github.com/trezcool/darasa/storage/database/inmem"
)

var (
	app      echoapi.Server
	sentMail interface{ SentMessages() []core.EmailMessage }

	classID   uuid.UUID
	studentID uuid.UUID
	teacherID uuid.UUID
	courseID  uuid.UUID
)

func TestMain(m *testing.M) {
	db, err := inmemdb.Open()
	if err != nil {
		os.Exit(1)
	}

	// seed the directory
	dirRepo := inmemdb.NewDirectoryRepository(db)
	classID = uuid.New()
	studentID = uuid.New()
	teacherID = uuid.New()
	courseID = uuid.New()
	dirRepo.AddCourse(directory.Course{ID: courseID, Name: "Mathematics"})
	dirRepo.AddStudent(directory.Student{ID: studentID, Name: "Asha", Email: "asha@school.test"})
	dirRepo.AddClass(directory.Class{ID: classID, Name: "Form 1A", StudentIDs: []uuid.UUID{studentID}})

	// set up services
	dummy := emailsvc.NewDummyService()
	sentMail = dummy
	dirSvc := directory.NewService(dirRepo, dirRepo)
	conf := &core.Config{AppName: "Darasa", TestMode: true}
	assignmentSvc := assignment.NewService(
		inmemdb.NewAssignmentRepository(db),
		inmemdb.NewSubmissionRepository(db),
		dirRepo,
		dummy,
		conf,
	)
	evaluationSvc := evaluation.NewService(inmemdb.NewEvaluationRepository(db), dirRepo, dummy, conf)

	// set up server
	app = echoapi.NewServer(&echoapi.Options{
		Config:         conf,
		Logger:         noopLogger{},
		DisableReqLogs: true,
		AssignmentSvc:  assignmentSvc,
		EvaluationSvc:  evaluationSvc,
		DirectorySvc:   dirSvc,
	})

	os.Exit(m.Run())
}

type noopLogger struct{}

func (noopLogger) Enable(bool)                  {}
func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) Fatal(string, ...interface{}) {}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marshalObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshalObj(): %v", err)
	}
	return data
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decodeBody(): %v; body %s", err, rec.Body.String())
	}
}

func createAssignment(t *testing.T, na assignment.NewAssignment) assignment.Assignment {
	t.Helper()
	req, rec := newRequest(http.MethodPost, "/v1/assignments", marshalObj(t, na))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("createAssignment(): code = %d; body %s", rec.Code, rec.Body.String())
	}
	var a assignment.Assignment
	decodeBody(t, rec, &a)
	return a
}

func validNewAssignment(title string) assignment.NewAssignment {
	now := time.Now().UTC()
	return assignment.NewAssignment{
		Title:       title,
		Type:        assignment.TypeExercise,
		CourseID:    courseID,
		TeacherID:   teacherID,
		ClassIDs:    []uuid.UUID{classID},
		StartDate:   now.Add(-time.Hour),
		DueDate:     now.Add(24 * time.Hour),
		MaxAttempts: 3,
		IsActive:    true,
	}
}

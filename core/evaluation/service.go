package evaluation

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/directory"
)

var ErrNotFound = errors.New("evaluation not found")

type (
	Repository interface {
		CreateEvaluation(ev TeacherEvaluation) (TeacherEvaluation, error)
		UpdateEvaluation(ev TeacherEvaluation) (TeacherEvaluation, error)
		QueryEvaluationsByStudentAndAssignment(studentID, assignmentID uuid.UUID) ([]TeacherEvaluation, error)
	}

	Service struct {
		repo    Repository
		dir     directory.Repository
		mailSvc core.EmailService
		conf    *core.Config
	}
)

func NewService(repo Repository, dir directory.Repository, mailSvc core.EmailService, conf *core.Config) *Service {
	return &Service{repo: repo, dir: dir, mailSvc: mailSvc, conf: conf}
}

// ForPair returns the single meaningful evaluation for an (assignment, student)
// pair, or ErrNotFound.
func (svc *Service) ForPair(studentID, assignmentID uuid.UUID) (TeacherEvaluation, error) {
	evals, err := svc.repo.QueryEvaluationsByStudentAndAssignment(studentID, assignmentID)
	if err != nil {
		return TeacherEvaluation{}, err
	}
	if len(evals) == 0 {
		return TeacherEvaluation{}, ErrNotFound
	}
	return evals[0], nil
}

// Save creates the pair's evaluation or, when one already exists, updates it
// in place (lookup-before-create keeps the pair unique).
func (svc *Service) Save(ne NewEvaluation) (TeacherEvaluation, error) {
	now := time.Now().UTC()
	ev := TeacherEvaluation{
		AssignmentID:        ne.AssignmentID,
		StudentID:           ne.StudentID,
		TeacherID:           ne.TeacherID,
		Participation:       ne.Participation,
		Understanding:       ne.Understanding,
		Progress:            ne.Progress,
		OverallRating:       Overall(ne.Participation, ne.Understanding, ne.Progress),
		Comments:            ne.Comments,
		Strengths:           ne.Strengths,
		AreasForImprovement: ne.AreasForImprovement,
		Recommendations:     ne.Recommendations,
		UpdatedAt:           now,
	}

	existing, err := svc.ForPair(ne.StudentID, ne.AssignmentID)
	switch {
	case err == nil:
		ev.ID = existing.ID
		ev.CreatedAt = existing.CreatedAt
		ev, err = svc.repo.UpdateEvaluation(ev)
	case errors.Is(err, ErrNotFound):
		ev.ID = uuid.New()
		ev.CreatedAt = now
		ev, err = svc.repo.CreateEvaluation(ev)
	default:
		return TeacherEvaluation{}, err
	}
	if err != nil {
		return TeacherEvaluation{}, err
	}

	svc.notifyStudent(ev)
	return ev, nil
}

func (svc *Service) notifyStudent(ev TeacherEvaluation) {
	if svc.mailSvc == nil || svc.dir == nil {
		return
	}
	student, err := svc.dir.GetStudentByID(ev.StudentID)
	if err != nil || student.Email == "" {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: student.Name, Address: student.Email}},
		Subject: "Your teacher shared an evaluation",
		Body: fmt.Sprintf(
			"Hi %s,\n\nYour teacher published an evaluation of your recent work (overall rating %.1f/5). "+
				"Log in to read the full feedback.",
			student.Name, ev.OverallRating,
		),
	})
}

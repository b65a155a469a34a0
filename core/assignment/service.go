package assignment

import (
	"errors"
	"fmt"
	"net/mail"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/directory"
)

var (
	// errors
	ErrNotFound           = errors.New("assignment not found")
	ErrSubmissionNotFound = errors.New("submission not found")
)

type (
	Repository interface {
		QueryAllAssignments() ([]Assignment, error)
		GetAssignmentByID(id uuid.UUID) (Assignment, error)
		CreateAssignment(a Assignment) (Assignment, error)
		UpdateAssignment(a Assignment, isActive, allowLate *bool) (Assignment, error)
		DeleteAssignmentsByID(ids ...uuid.UUID) error
	}

	SubmissionRepository interface {
		QuerySubmissionsByAssignment(assignmentID uuid.UUID) ([]Submission, error)
		GetSubmissionByStudentAndAssignment(studentID, assignmentID uuid.UUID) (Submission, error)
	}

	Service struct {
		repo    Repository
		subRepo SubmissionRepository
		dir     directory.Repository
		mailSvc core.EmailService
		conf    *core.Config
	}
)

func NewService(
	repo Repository,
	subRepo SubmissionRepository,
	dir directory.Repository,
	mailSvc core.EmailService,
	conf *core.Config,
) *Service {
	return &Service{repo: repo, subRepo: subRepo, dir: dir, mailSvc: mailSvc, conf: conf}
}

func (svc *Service) Create(na NewAssignment) (Assignment, error) {
	now := time.Now().UTC()
	a := Assignment{
		ID:                  uuid.New(),
		Title:               na.Title,
		Description:         na.Description,
		Instructions:        na.Instructions,
		Type:                na.Type,
		CourseID:            na.CourseID,
		TeacherID:           na.TeacherID,
		ClassIDs:            na.ClassIDs,
		ContentIDs:          na.ContentIDs,
		StudentIDs:          na.StudentIDs,
		StartDate:           na.StartDate.UTC(),
		DueDate:             na.DueDate.UTC(),
		MaxAttempts:         na.MaxAttempts,
		TimeLimitMinutes:    na.TimeLimitMinutes,
		IsActive:            na.IsActive,
		AllowLateSubmission: na.AllowLateSubmission,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	a, err := svc.repo.CreateAssignment(a)
	if err != nil {
		return Assignment{}, err
	}
	if a.IsActive {
		svc.notifyRoster(a)
	}
	return a, nil
}

func (svc *Service) QueryAll() ([]Assignment, error) {
	return svc.repo.QueryAllAssignments()
}

func (svc *Service) GetByID(id uuid.UUID) (Assignment, error) {
	return svc.repo.GetAssignmentByID(id)
}

// List filters and sorts the full assignment collection for display.
func (svc *Service) List(filter QueryFilter, ordering Ordering) (FilterResult, error) {
	assignments, err := svc.repo.QueryAllAssignments()
	if err != nil {
		return FilterResult{}, err
	}
	return Filter(assignments, filter, ordering, time.Now().UTC()), nil
}

func (svc *Service) Update(id uuid.UUID, ua UpdateAssignment) (Assignment, error) {
	orig, err := svc.repo.GetAssignmentByID(id)
	if err != nil {
		return Assignment{}, err
	}
	a := Assignment{
		ID:               id,
		Title:            ua.Title,
		Description:      ua.Description,
		Instructions:     ua.Instructions,
		Type:             ua.Type,
		ClassIDs:         ua.ClassIDs,
		ContentIDs:       ua.ContentIDs,
		StudentIDs:       ua.StudentIDs,
		StartDate:        ua.StartDate.UTC(),
		DueDate:          ua.DueDate.UTC(),
		MaxAttempts:      ua.MaxAttempts,
		TimeLimitMinutes: ua.TimeLimitMinutes,
		UpdatedAt:        time.Now().UTC(),
	}
	a, err = svc.repo.UpdateAssignment(a, ua.IsActive, ua.AllowLateSubmission)
	if err != nil {
		return Assignment{}, err
	}
	if !orig.IsActive && a.IsActive { // first publish
		svc.notifyRoster(a)
	}
	return a, nil
}

func (svc *Service) Delete(ids ...uuid.UUID) error {
	return svc.repo.DeleteAssignmentsByID(ids...)
}

// Duplicate copies an assignment into a fresh, unpublished one.
func (svc *Service) Duplicate(id uuid.UUID) (Assignment, error) {
	orig, err := svc.repo.GetAssignmentByID(id)
	if err != nil {
		return Assignment{}, err
	}
	now := time.Now().UTC()
	dup := orig
	dup.ID = uuid.New()
	dup.Title = orig.Title + " (Copy)"
	dup.IsActive = false
	dup.CreatedAt = now
	dup.UpdatedAt = now
	return svc.repo.CreateAssignment(dup)
}

func (svc *Service) QuerySubmissions(assignmentID uuid.UUID) ([]Submission, error) {
	return svc.subRepo.QuerySubmissionsByAssignment(assignmentID)
}

func (svc *Service) GetSubmission(studentID, assignmentID uuid.UUID) (Submission, error) {
	return svc.subRepo.GetSubmissionByStudentAndAssignment(studentID, assignmentID)
}

// Progress resolves the roster and the submissions concurrently and combines
// them once both reads resolved; either failure aborts the whole load.
func (svc *Service) Progress(assignmentID uuid.UUID) (Progress, error) {
	a, err := svc.repo.GetAssignmentByID(assignmentID)
	if err != nil {
		return Progress{}, err
	}

	var (
		wg        sync.WaitGroup
		roster    []directory.Student
		subs      []Submission
		rosterErr error
		subsErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		roster, rosterErr = svc.dir.QueryStudentsByClassIDs(a.ClassIDs...)
	}()
	go func() {
		defer wg.Done()
		subs, subsErr = svc.subRepo.QuerySubmissionsByAssignment(assignmentID)
	}()
	wg.Wait()

	if rosterErr != nil {
		return Progress{}, rosterErr
	}
	if subsErr != nil {
		return Progress{}, subsErr
	}
	return Aggregate(len(roster), subs), nil
}

func (svc *Service) notifyRoster(a Assignment) {
	if svc.mailSvc == nil || svc.dir == nil {
		return
	}
	roster, err := svc.dir.QueryStudentsByClassIDs(a.ClassIDs...)
	if err != nil || len(roster) == 0 {
		return
	}
	to := make([]mail.Address, 0, len(roster))
	for _, s := range roster {
		to = append(to, mail.Address{Name: s.Name, Address: s.Email})
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      to,
		Subject: fmt.Sprintf("New assignment: %s", a.Title),
		Body: fmt.Sprintf(
			"A new assignment %q is available from %s until %s.",
			a.Title, a.StartDate.Format(time.RFC1123), a.DueDate.Format(time.RFC1123),
		),
	})
}

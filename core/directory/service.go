package directory

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrClassNotFound   = errors.New("class not found")
	ErrStudentNotFound = errors.New("student not found")
)

type (
	// Repository is the read-only directory of courses, classes and students
	// the console displays; it is owned and written elsewhere.
	Repository interface {
		QueryAllCourses() ([]Course, error)
		GetCourseByID(id uuid.UUID) (Course, error)
		QueryAllClasses() ([]Class, error)
		GetClassByID(id uuid.UUID) (Class, error)
		QueryStudentsByClassIDs(classIDs ...uuid.UUID) ([]Student, error)
		GetStudentByID(id uuid.UUID) (Student, error)
	}

	// ContentRepository lists assignable content.
	ContentRepository interface {
		QueryContentByCourseAndType(courseID uuid.UUID, contentType string) ([]ContentItem, error)
	}

	Service struct {
		repo    Repository
		content ContentRepository
	}
)

func NewService(repo Repository, content ContentRepository) *Service {
	return &Service{repo: repo, content: content}
}

func (svc *Service) QueryAllCourses() ([]Course, error) { return svc.repo.QueryAllCourses() }

func (svc *Service) GetCourseByID(id uuid.UUID) (Course, error) { return svc.repo.GetCourseByID(id) }

func (svc *Service) QueryAllClasses() ([]Class, error) { return svc.repo.QueryAllClasses() }

func (svc *Service) GetClassByID(id uuid.UUID) (Class, error) { return svc.repo.GetClassByID(id) }

func (svc *Service) GetStudentByID(id uuid.UUID) (Student, error) {
	return svc.repo.GetStudentByID(id)
}

// Roster resolves the distinct students behind a set of class ids.
func (svc *Service) Roster(classIDs ...uuid.UUID) ([]Student, error) {
	return svc.repo.QueryStudentsByClassIDs(classIDs...)
}

func (svc *Service) QueryContent(courseID uuid.UUID, contentType string) ([]ContentItem, error) {
	return svc.content.QueryContentByCourseAndType(courseID, contentType)
}

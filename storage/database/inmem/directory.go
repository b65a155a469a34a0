package inmemdb

import (
	"github.com/google/uuid"

	"github.com/trezcool/darasa/core/directory"
)

type directoryRepository struct {
	db *directoryTables
}

func NewDirectoryRepository(db *DB) *directoryRepository {
	return &directoryRepository{db: db.directory}
}

var (
	_ directory.Repository        = (*directoryRepository)(nil)
	_ directory.ContentRepository = (*directoryRepository)(nil)
)

// Seed helpers for tests and DEV fixtures.

func (repo *directoryRepository) AddCourse(c directory.Course) {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.courses[c.ID] = &c
}

func (repo *directoryRepository) AddClass(c directory.Class) {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.classes[c.ID] = &c
}

func (repo *directoryRepository) AddStudent(s directory.Student) {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.students[s.ID] = &s
}

func (repo *directoryRepository) AddContent(c directory.ContentItem) {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.content[c.ID] = &c
}

func (repo *directoryRepository) QueryAllCourses() ([]directory.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	courses := make([]directory.Course, 0, len(repo.db.courses))
	for _, c := range repo.db.courses {
		courses = append(courses, *c)
	}
	return courses, nil
}

func (repo *directoryRepository) GetCourseByID(id uuid.UUID) (directory.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if c, ok := repo.db.courses[id]; ok {
		return *c, nil
	}
	return directory.Course{}, directory.ErrCourseNotFound
}

func (repo *directoryRepository) QueryAllClasses() ([]directory.Class, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	classes := make([]directory.Class, 0, len(repo.db.classes))
	for _, c := range repo.db.classes {
		classes = append(classes, *c)
	}
	return classes, nil
}

func (repo *directoryRepository) GetClassByID(id uuid.UUID) (directory.Class, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if c, ok := repo.db.classes[id]; ok {
		return *c, nil
	}
	return directory.Class{}, directory.ErrClassNotFound
}

func (repo *directoryRepository) QueryStudentsByClassIDs(classIDs ...uuid.UUID) ([]directory.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	seen := make(map[uuid.UUID]bool)
	var students []directory.Student
	for _, classID := range classIDs {
		class, ok := repo.db.classes[classID]
		if !ok {
			continue
		}
		for _, sid := range class.StudentIDs {
			if seen[sid] {
				continue
			}
			seen[sid] = true
			if s, ok := repo.db.students[sid]; ok {
				students = append(students, *s)
			}
		}
	}
	return students, nil
}

func (repo *directoryRepository) GetStudentByID(id uuid.UUID) (directory.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if s, ok := repo.db.students[id]; ok {
		return *s, nil
	}
	return directory.Student{}, directory.ErrStudentNotFound
}

func (repo *directoryRepository) QueryContentByCourseAndType(courseID uuid.UUID, contentType string) ([]directory.ContentItem, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var items []directory.ContentItem
	for _, item := range repo.db.content {
		if item.CourseID == courseID && (contentType == "" || item.Type == contentType) {
			items = append(items, *item)
		}
	}
	return items, nil
}

package sqlxrepos

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/darasa/core/directory"
)

type directoryRepository struct {
	db *sqlx.DB
}

func NewDirectoryRepository(db *sqlx.DB) *directoryRepository {
	return &directoryRepository{db: db}
}

var (
	_ directory.Repository        = (*directoryRepository)(nil)
	_ directory.ContentRepository = (*directoryRepository)(nil)
)

type courseRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	TeacherID   uuid.UUID `db:"teacher_id"`
	CreatedAt   null.Time `db:"created_at"`
	UpdatedAt   null.Time `db:"updated_at"`
}

type classRow struct {
	ID         uuid.UUID      `db:"id"`
	Name       string         `db:"name"`
	CourseID   uuid.UUID      `db:"course_id"`
	StudentIDs pq.StringArray `db:"student_ids"`
}

func (repo *directoryRepository) QueryAllCourses() ([]directory.Course, error) {
	var rows []courseRow
	query := `SELECT id, name, description, teacher_id, created_at, updated_at FROM course`
	if err := repo.db.Select(&rows, query); err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}
	courses := make([]directory.Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, directory.Course{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			TeacherID:   row.TeacherID,
			CreatedAt:   row.CreatedAt.Time,
			UpdatedAt:   row.UpdatedAt.Time,
		})
	}
	return courses, nil
}

func (repo *directoryRepository) GetCourseByID(id uuid.UUID) (directory.Course, error) {
	var row courseRow
	query := `SELECT id, name, description, teacher_id, created_at, updated_at FROM course WHERE id = $1`
	if err := repo.db.Get(&row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return directory.Course{}, directory.ErrCourseNotFound
		}
		return directory.Course{}, errors.Wrap(err, "getting course")
	}
	return directory.Course{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		TeacherID:   row.TeacherID,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}, nil
}

func (repo *directoryRepository) QueryAllClasses() ([]directory.Class, error) {
	var rows []classRow
	query := `SELECT id, name, course_id, student_ids FROM class`
	if err := repo.db.Select(&rows, query); err != nil {
		return nil, errors.Wrap(err, "querying classes")
	}
	classes := make([]directory.Class, 0, len(rows))
	for _, row := range rows {
		classes = append(classes, directory.Class{
			ID:         row.ID,
			Name:       row.Name,
			CourseID:   row.CourseID,
			StudentIDs: toUUIDs(row.StudentIDs),
		})
	}
	return classes, nil
}

func (repo *directoryRepository) GetClassByID(id uuid.UUID) (directory.Class, error) {
	var row classRow
	query := `SELECT id, name, course_id, student_ids FROM class WHERE id = $1`
	if err := repo.db.Get(&row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return directory.Class{}, directory.ErrClassNotFound
		}
		return directory.Class{}, errors.Wrap(err, "getting class")
	}
	return directory.Class{
		ID:         row.ID,
		Name:       row.Name,
		CourseID:   row.CourseID,
		StudentIDs: toUUIDs(row.StudentIDs),
	}, nil
}

func (repo *directoryRepository) QueryStudentsByClassIDs(classIDs ...uuid.UUID) ([]directory.Student, error) {
	var students []directory.Student
	query := `SELECT DISTINCT s.id, s.name, s.email FROM student s
		JOIN class c ON s.id = ANY (c.student_ids)
		WHERE c.id = ANY ($1)`
	if err := repo.db.Select(&students, query, fromUUIDs(classIDs)); err != nil {
		return nil, errors.Wrap(err, "querying roster")
	}
	return students, nil
}

func (repo *directoryRepository) GetStudentByID(id uuid.UUID) (directory.Student, error) {
	var student directory.Student
	query := `SELECT id, name, email FROM student WHERE id = $1`
	if err := repo.db.Get(&student, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return directory.Student{}, directory.ErrStudentNotFound
		}
		return directory.Student{}, errors.Wrap(err, "getting student")
	}
	return student, nil
}

type contentRow struct {
	ID       uuid.UUID `db:"id"`
	CourseID uuid.UUID `db:"course_id"`
	Type     string    `db:"type"`
	Title    string    `db:"title"`
}

func (repo *directoryRepository) QueryContentByCourseAndType(courseID uuid.UUID, contentType string) ([]directory.ContentItem, error) {
	var rows []contentRow
	query := `SELECT id, course_id, type, title FROM content WHERE course_id = $1 AND ($2 = '' OR type = $2)`
	if err := repo.db.Select(&rows, query, courseID, contentType); err != nil {
		return nil, errors.Wrap(err, "querying content")
	}
	items := make([]directory.ContentItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, directory.ContentItem{ID: row.ID, CourseID: row.CourseID, Type: row.Type, Title: row.Title})
	}
	return items, nil
}

package sqlxrepos

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/darasa/core/assignment"
)

type assignmentRepository struct {
	db *sqlx.DB
}

func NewAssignmentRepository(db *sqlx.DB) assignment.Repository {
	return &assignmentRepository{db: db}
}

type assignmentRow struct {
	ID                  uuid.UUID      `db:"id"`
	Title               string         `db:"title"`
	Description         string         `db:"description"`
	Instructions        string         `db:"instructions"`
	Type                string         `db:"type"`
	CourseID            uuid.UUID      `db:"course_id"`
	TeacherID           uuid.UUID      `db:"teacher_id"`
	ClassIDs            pq.StringArray `db:"class_ids"`
	ContentIDs          pq.StringArray `db:"content_ids"`
	StudentIDs          pq.StringArray `db:"student_ids"`
	StartDate           null.Time      `db:"start_date"`
	DueDate             null.Time      `db:"due_date"`
	MaxAttempts         int            `db:"max_attempts"`
	TimeLimitMinutes    null.Int       `db:"time_limit_minutes"`
	IsActive            bool           `db:"is_active"`
	AllowLateSubmission bool           `db:"allow_late_submission"`
	CreatedAt           null.Time      `db:"created_at"`
	UpdatedAt           null.Time      `db:"updated_at"`
}

func (row assignmentRow) toModel() assignment.Assignment {
	return assignment.Assignment{
		ID:                  row.ID,
		Title:               row.Title,
		Description:         row.Description,
		Instructions:        row.Instructions,
		Type:                row.Type,
		CourseID:            row.CourseID,
		TeacherID:           row.TeacherID,
		ClassIDs:            toUUIDs(row.ClassIDs),
		ContentIDs:          toUUIDs(row.ContentIDs),
		StudentIDs:          toUUIDs(row.StudentIDs),
		StartDate:           row.StartDate.Time,
		DueDate:             row.DueDate.Time,
		MaxAttempts:         row.MaxAttempts,
		TimeLimitMinutes:    row.TimeLimitMinutes.Ptr(),
		IsActive:            row.IsActive,
		AllowLateSubmission: row.AllowLateSubmission,
		CreatedAt:           row.CreatedAt.Time,
		UpdatedAt:           row.UpdatedAt.Time,
	}
}

func toUUIDs(arr pq.StringArray) []uuid.UUID {
	if arr == nil {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(arr))
	for _, s := range arr {
		if id, err := uuid.Parse(s); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func fromUUIDs(ids []uuid.UUID) pq.StringArray {
	arr := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		arr = append(arr, id.String())
	}
	return arr
}

const assignmentCols = `id, title, description, instructions, type, course_id, teacher_id,
	class_ids, content_ids, student_ids, start_date, due_date, max_attempts,
	time_limit_minutes, is_active, allow_late_submission, created_at, updated_at`

func (repo *assignmentRepository) CreateAssignment(a assignment.Assignment) (assignment.Assignment, error) {
	query := `INSERT INTO assignment (` + assignmentCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := repo.db.Exec(query,
		a.ID, a.Title, a.Description, a.Instructions, a.Type, a.CourseID, a.TeacherID,
		fromUUIDs(a.ClassIDs), fromUUIDs(a.ContentIDs), fromUUIDs(a.StudentIDs),
		a.StartDate, a.DueDate, a.MaxAttempts, null.IntFromPtr(a.TimeLimitMinutes),
		a.IsActive, a.AllowLateSubmission, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return assignment.Assignment{}, errors.Wrap(err, "inserting assignment")
	}
	return a, nil
}

func (repo *assignmentRepository) QueryAllAssignments() ([]assignment.Assignment, error) {
	var rows []assignmentRow
	query := `SELECT ` + assignmentCols + ` FROM assignment`
	if err := repo.db.Select(&rows, query); err != nil {
		return nil, errors.Wrap(err, "querying assignments")
	}
	assignments := make([]assignment.Assignment, 0, len(rows))
	for _, row := range rows {
		assignments = append(assignments, row.toModel())
	}
	return assignments, nil
}

func (repo *assignmentRepository) GetAssignmentByID(id uuid.UUID) (assignment.Assignment, error) {
	var row assignmentRow
	query := `SELECT ` + assignmentCols + ` FROM assignment WHERE id = $1`
	if err := repo.db.Get(&row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return assignment.Assignment{}, assignment.ErrNotFound
		}
		return assignment.Assignment{}, errors.Wrap(err, "getting assignment")
	}
	return row.toModel(), nil
}

func (repo *assignmentRepository) UpdateAssignment(a assignment.Assignment, isActive, allowLate *bool) (assignment.Assignment, error) {
	orig, err := repo.GetAssignmentByID(a.ID)
	if err != nil {
		return assignment.Assignment{}, err
	}
	// only save set fields
	if a.ClassIDs == nil {
		a.ClassIDs = orig.ClassIDs
	}
	if a.ContentIDs == nil {
		a.ContentIDs = orig.ContentIDs
	}
	if a.StudentIDs == nil {
		a.StudentIDs = orig.StudentIDs
	}
	if a.TimeLimitMinutes == nil {
		a.TimeLimitMinutes = orig.TimeLimitMinutes
	}
	a.IsActive = orig.IsActive
	if isActive != nil {
		a.IsActive = *isActive
	}
	a.AllowLateSubmission = orig.AllowLateSubmission
	if allowLate != nil {
		a.AllowLateSubmission = *allowLate
	}
	a.CourseID = orig.CourseID
	a.TeacherID = orig.TeacherID
	a.CreatedAt = orig.CreatedAt

	query := `UPDATE assignment SET
		title = $2, description = $3, instructions = $4, type = $5,
		class_ids = $6, content_ids = $7, student_ids = $8,
		start_date = $9, due_date = $10, max_attempts = $11, time_limit_minutes = $12,
		is_active = $13, allow_late_submission = $14, updated_at = $15
		WHERE id = $1`
	_, err = repo.db.Exec(query,
		a.ID, a.Title, a.Description, a.Instructions, a.Type,
		fromUUIDs(a.ClassIDs), fromUUIDs(a.ContentIDs), fromUUIDs(a.StudentIDs),
		a.StartDate, a.DueDate, a.MaxAttempts, null.IntFromPtr(a.TimeLimitMinutes),
		a.IsActive, a.AllowLateSubmission, a.UpdatedAt,
	)
	if err != nil {
		return assignment.Assignment{}, errors.Wrap(err, "updating assignment")
	}
	return a, nil
}

func (repo *assignmentRepository) DeleteAssignmentsByID(ids ...uuid.UUID) error {
	strIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		strIDs = append(strIDs, id.String())
	}
	query, args, err := sqlx.In(`DELETE FROM assignment WHERE id IN (?)`, strIDs)
	if err != nil {
		return errors.Wrap(err, "building delete query")
	}
	if _, err := repo.db.Exec(repo.db.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "deleting assignments")
	}
	return nil
}

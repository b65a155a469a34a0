package sqlxrepos

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/darasa/core/assignment"
)

type submissionRepository struct {
	db *sqlx.DB
}

func NewSubmissionRepository(db *sqlx.DB) assignment.SubmissionRepository {
	return &submissionRepository{db: db}
}

type submissionRow struct {
	ID                   uuid.UUID    `db:"id"`
	AssignmentID         uuid.UUID    `db:"assignment_id"`
	StudentID            uuid.UUID    `db:"student_id"`
	Status               string       `db:"status"`
	Score                null.Float64 `db:"score"`
	MaxScore             float64      `db:"max_score"`
	CompletionPercentage int          `db:"completion_percentage"`
	TimeSpentMinutes     int          `db:"time_spent_minutes"`
	AttemptNumber        int          `db:"attempt_number"`
	SubmittedAt          null.Time    `db:"submitted_at"`
}

func (row submissionRow) toModel() assignment.Submission {
	return assignment.Submission{
		ID:                   row.ID,
		AssignmentID:         row.AssignmentID,
		StudentID:            row.StudentID,
		Status:               row.Status,
		Score:                row.Score.Ptr(),
		MaxScore:             row.MaxScore,
		CompletionPercentage: row.CompletionPercentage,
		TimeSpentMinutes:     row.TimeSpentMinutes,
		AttemptNumber:        row.AttemptNumber,
		SubmittedAt:          row.SubmittedAt.Time,
	}
}

const submissionCols = `id, assignment_id, student_id, status, score, max_score,
	completion_percentage, time_spent_minutes, attempt_number, submitted_at`

func (repo *submissionRepository) QuerySubmissionsByAssignment(assignmentID uuid.UUID) ([]assignment.Submission, error) {
	var rows []submissionRow
	query := `SELECT ` + submissionCols + ` FROM submission WHERE assignment_id = $1`
	if err := repo.db.Select(&rows, query, assignmentID); err != nil {
		return nil, errors.Wrap(err, "querying submissions")
	}
	subs := make([]assignment.Submission, 0, len(rows))
	for _, row := range rows {
		subs = append(subs, row.toModel())
	}
	return subs, nil
}

func (repo *submissionRepository) GetSubmissionByStudentAndAssignment(studentID, assignmentID uuid.UUID) (assignment.Submission, error) {
	var row submissionRow
	query := `SELECT ` + submissionCols + ` FROM submission
		WHERE student_id = $1 AND assignment_id = $2
		ORDER BY attempt_number DESC LIMIT 1`
	if err := repo.db.Get(&row, query, studentID, assignmentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return assignment.Submission{}, assignment.ErrSubmissionNotFound
		}
		return assignment.Submission{}, errors.Wrap(err, "getting submission")
	}
	return row.toModel(), nil
}

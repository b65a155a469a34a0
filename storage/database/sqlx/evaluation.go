package sqlxrepos

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/darasa/core/evaluation"
)

type evaluationRepository struct {
	db *sqlx.DB
}

func NewEvaluationRepository(db *sqlx.DB) evaluation.Repository {
	return &evaluationRepository{db: db}
}

type evaluationRow struct {
	ID                  uuid.UUID      `db:"id"`
	AssignmentID        uuid.UUID      `db:"assignment_id"`
	StudentID           uuid.UUID      `db:"student_id"`
	TeacherID           uuid.UUID      `db:"teacher_id"`
	Participation       float64        `db:"participation"`
	Understanding       float64        `db:"understanding"`
	Progress            float64        `db:"progress"`
	OverallRating       float64        `db:"overall_rating"`
	Comments            string         `db:"comments"`
	Strengths           pq.StringArray `db:"strengths"`
	AreasForImprovement pq.StringArray `db:"areas_for_improvement"`
	Recommendations     pq.StringArray `db:"recommendations"`
	CreatedAt           null.Time      `db:"created_at"`
	UpdatedAt           null.Time      `db:"updated_at"`
}

func (row evaluationRow) toModel() evaluation.TeacherEvaluation {
	return evaluation.TeacherEvaluation{
		ID:                  row.ID,
		AssignmentID:        row.AssignmentID,
		StudentID:           row.StudentID,
		TeacherID:           row.TeacherID,
		Participation:       row.Participation,
		Understanding:       row.Understanding,
		Progress:            row.Progress,
		OverallRating:       row.OverallRating,
		Comments:            row.Comments,
		Strengths:           row.Strengths,
		AreasForImprovement: row.AreasForImprovement,
		Recommendations:     row.Recommendations,
		CreatedAt:           row.CreatedAt.Time,
		UpdatedAt:           row.UpdatedAt.Time,
	}
}

const evaluationCols = `id, assignment_id, student_id, teacher_id, participation,
	understanding, progress, overall_rating, comments, strengths,
	areas_for_improvement, recommendations, created_at, updated_at`

func (repo *evaluationRepository) CreateEvaluation(ev evaluation.TeacherEvaluation) (evaluation.TeacherEvaluation, error) {
	query := `INSERT INTO teacher_evaluation (` + evaluationCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := repo.db.Exec(query,
		ev.ID, ev.AssignmentID, ev.StudentID, ev.TeacherID, ev.Participation,
		ev.Understanding, ev.Progress, ev.OverallRating, ev.Comments,
		pq.StringArray(ev.Strengths), pq.StringArray(ev.AreasForImprovement),
		pq.StringArray(ev.Recommendations), ev.CreatedAt, ev.UpdatedAt,
	)
	if err != nil {
		return evaluation.TeacherEvaluation{}, errors.Wrap(err, "inserting evaluation")
	}
	return ev, nil
}

func (repo *evaluationRepository) UpdateEvaluation(ev evaluation.TeacherEvaluation) (evaluation.TeacherEvaluation, error) {
	query := `UPDATE teacher_evaluation SET
		participation = $2, understanding = $3, progress = $4, overall_rating = $5,
		comments = $6, strengths = $7, areas_for_improvement = $8, recommendations = $9,
		updated_at = $10
		WHERE id = $1`
	res, err := repo.db.Exec(query,
		ev.ID, ev.Participation, ev.Understanding, ev.Progress, ev.OverallRating,
		ev.Comments, pq.StringArray(ev.Strengths), pq.StringArray(ev.AreasForImprovement),
		pq.StringArray(ev.Recommendations), ev.UpdatedAt,
	)
	if err != nil {
		return evaluation.TeacherEvaluation{}, errors.Wrap(err, "updating evaluation")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return evaluation.TeacherEvaluation{}, evaluation.ErrNotFound
	}
	return ev, nil
}

func (repo *evaluationRepository) QueryEvaluationsByStudentAndAssignment(studentID, assignmentID uuid.UUID) ([]evaluation.TeacherEvaluation, error) {
	var rows []evaluationRow
	query := `SELECT ` + evaluationCols + ` FROM teacher_evaluation
		WHERE student_id = $1 AND assignment_id = $2`
	if err := repo.db.Select(&rows, query, studentID, assignmentID); err != nil {
		return nil, errors.Wrap(err, "querying evaluations")
	}
	evals := make([]evaluation.TeacherEvaluation, 0, len(rows))
	for _, row := range rows {
		evals = append(evals, row.toModel())
	}
	return evals, nil
}

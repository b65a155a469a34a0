package evaluation

import (
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/darasa/core"
)

// Sub-score bounds; every rating lives in [1,5] stepped by 0.1.
const (
	ScoreMin = 1.0
	ScoreMax = 5.0
)

// TeacherEvaluation is a teacher's assessment of one student's performance on
// one assignment. At most one per (assignment, student) pair is meaningful;
// the service looks an existing one up before creating.
type TeacherEvaluation struct {
	ID                  uuid.UUID `json:"id"`
	AssignmentID        uuid.UUID `json:"assignment_id"`
	StudentID           uuid.UUID `json:"student_id"`
	TeacherID           uuid.UUID `json:"teacher_id"`
	Participation       float64   `json:"participation"`
	Understanding       float64   `json:"understanding"`
	Progress            float64   `json:"progress"`
	OverallRating       float64   `json:"overall_rating"` // derived, one decimal
	Comments            string    `json:"comments"`
	Strengths           []string  `json:"strengths"`
	AreasForImprovement []string  `json:"areas_for_improvement"`
	Recommendations     []string  `json:"recommendations"`
	CreatedAt           time.Time `json:"created_at"` // UTC
	UpdatedAt           time.Time `json:"updated_at"` // UTC
}

// NewEvaluation contains information needed to create or replace a TeacherEvaluation.
type NewEvaluation struct {
	AssignmentID        uuid.UUID `json:"assignment_id" validate:"required"`
	StudentID           uuid.UUID `json:"student_id" validate:"required"`
	TeacherID           uuid.UUID `json:"teacher_id" validate:"required"`
	Participation       float64   `json:"participation" validate:"min=1,max=5"`
	Understanding       float64   `json:"understanding" validate:"min=1,max=5"`
	Progress            float64   `json:"progress" validate:"min=1,max=5"`
	Comments            string    `json:"comments" validate:"required"`
	Strengths           []string  `json:"strengths" validate:"required,min=1"`
	AreasForImprovement []string  `json:"areas_for_improvement"`
	Recommendations     []string  `json:"recommendations"`
}

func (ne *NewEvaluation) Validate() error {
	ne.Comments = core.CleanString(ne.Comments)
	return core.Validate.Struct(ne)
}

// Overall derives the overall rating from the three sub-scores.
func Overall(participation, understanding, progress float64) float64 {
	return core.RoundRating((participation + understanding + progress) / 3)
}

// EvaluationFor returns the student's evaluation, if any; inputs hold at most
// one evaluation per student.
func EvaluationFor(evals []TeacherEvaluation, studentID uuid.UUID) (TeacherEvaluation, bool) {
	for _, ev := range evals {
		if ev.StudentID == studentID {
			return ev, true
		}
	}
	return TeacherEvaluation{}, false
}

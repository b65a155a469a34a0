package inmemdb

import (
	"github.com/google/uuid"

	"github.com/trezcool/darasa/core/evaluation"
)

type evaluationRepository struct {
	db *evaluationTable
}

func NewEvaluationRepository(db *DB) evaluation.Repository {
	return &evaluationRepository{db: db.evaluation}
}

func (repo *evaluationRepository) CreateEvaluation(ev evaluation.TeacherEvaluation) (evaluation.TeacherEvaluation, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	repo.db.table[ev.ID] = &ev
	return ev, nil
}

func (repo *evaluationRepository) UpdateEvaluation(ev evaluation.TeacherEvaluation) (evaluation.TeacherEvaluation, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	orig, ok := repo.db.table[ev.ID]
	if !ok {
		return evaluation.TeacherEvaluation{}, evaluation.ErrNotFound
	}
	ev.CreatedAt = orig.CreatedAt
	repo.db.table[ev.ID] = &ev
	return ev, nil
}

func (repo *evaluationRepository) QueryEvaluationsByStudentAndAssignment(studentID, assignmentID uuid.UUID) ([]evaluation.TeacherEvaluation, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var evals []evaluation.TeacherEvaluation
	for _, ev := range repo.db.table {
		if ev.StudentID == studentID && ev.AssignmentID == assignmentID {
			evals = append(evals, *ev)
		}
	}
	return evals, nil
}

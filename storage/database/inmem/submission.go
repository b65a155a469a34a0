package inmemdb

import (
	"github.com/google/uuid"

	"github.com/trezcool/darasa/core/assignment"
)

type submissionRepository struct {
	db *submissionTable
}

func NewSubmissionRepository(db *DB) assignment.SubmissionRepository {
	return &submissionRepository{db: db.submission}
}

// CreateSubmission seeds test/dev data; students write submissions elsewhere.
func (repo *submissionRepository) CreateSubmission(sub assignment.Submission) (assignment.Submission, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	repo.db.table[sub.ID] = &sub
	return sub, nil
}

func (repo *submissionRepository) QuerySubmissionsByAssignment(assignmentID uuid.UUID) ([]assignment.Submission, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var subs []assignment.Submission
	for _, sub := range repo.db.table {
		if sub.AssignmentID == assignmentID {
			subs = append(subs, *sub)
		}
	}
	return subs, nil
}

func (repo *submissionRepository) GetSubmissionByStudentAndAssignment(studentID, assignmentID uuid.UUID) (assignment.Submission, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, sub := range repo.db.table {
		if sub.StudentID == studentID && sub.AssignmentID == assignmentID {
			return *sub, nil
		}
	}
	return assignment.Submission{}, assignment.ErrSubmissionNotFound
}

package inmemdb

import (
	"github.com/google/uuid"

	"github.com/trezcool/darasa/core/assignment"
)

type assignmentRepository struct {
	db *assignmentTable
}

func NewAssignmentRepository(db *DB) assignment.Repository {
	return &assignmentRepository{db: db.assignment}
}

func (repo *assignmentRepository) query() []assignment.Assignment {
	assignments := make([]assignment.Assignment, 0, len(repo.db.table))
	for _, a := range repo.db.table {
		assignments = append(assignments, *a)
	}
	return assignments
}

func (repo *assignmentRepository) CreateAssignment(a assignment.Assignment) (assignment.Assignment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	repo.db.table[a.ID] = &a
	return a, nil
}

func (repo *assignmentRepository) QueryAllAssignments() ([]assignment.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *assignmentRepository) GetAssignmentByID(id uuid.UUID) (assignment.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if a, ok := repo.db.table[id]; ok {
		return *a, nil
	}
	return assignment.Assignment{}, assignment.ErrNotFound
}

func (repo *assignmentRepository) UpdateAssignment(a assignment.Assignment, isActive, allowLate *bool) (assignment.Assignment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	// only save set fields
	orig, ok := repo.db.table[a.ID]
	if !ok {
		return assignment.Assignment{}, assignment.ErrNotFound
	}
	if a.ClassIDs != nil {
		orig.ClassIDs = a.ClassIDs
	}
	if a.ContentIDs != nil {
		orig.ContentIDs = a.ContentIDs
	}
	if a.StudentIDs != nil {
		orig.StudentIDs = a.StudentIDs
	}
	if a.TimeLimitMinutes != nil {
		orig.TimeLimitMinutes = a.TimeLimitMinutes
	}
	if isActive != nil {
		orig.IsActive = *isActive
	}
	if allowLate != nil {
		orig.AllowLateSubmission = *allowLate
	}
	orig.Title = a.Title
	orig.Description = a.Description
	orig.Instructions = a.Instructions
	orig.Type = a.Type
	orig.StartDate = a.StartDate
	orig.DueDate = a.DueDate
	orig.MaxAttempts = a.MaxAttempts
	orig.UpdatedAt = a.UpdatedAt

	repo.db.table[a.ID] = orig
	return *orig, nil
}

func (repo *assignmentRepository) DeleteAssignmentsByID(ids ...uuid.UUID) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}

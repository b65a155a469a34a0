// Package inmemdb provides map-backed repositories, used by tests and DEV.
package inmemdb

import (
	"sync"

	"github.com/google/uuid"

	"github.com/trezcool/darasa/core/assignment"
	"github.com/trezcool/darasa/core/directory"
	"github.com/trezcool/darasa/core/evaluation"
)

type (
	DB struct {
		assignment *assignmentTable
		submission *submissionTable
		evaluation *evaluationTable
		directory  *directoryTables
	}

	assignmentTable struct {
		sync.RWMutex
		table map[uuid.UUID]*assignment.Assignment
	}

	submissionTable struct {
		sync.RWMutex
		table map[uuid.UUID]*assignment.Submission
	}

	evaluationTable struct {
		sync.RWMutex
		table map[uuid.UUID]*evaluation.TeacherEvaluation
	}

	directoryTables struct {
		sync.RWMutex
		courses  map[uuid.UUID]*directory.Course
		classes  map[uuid.UUID]*directory.Class
		students map[uuid.UUID]*directory.Student
		content  map[uuid.UUID]*directory.ContentItem
	}
)

func Open() (*DB, error) {
	db := &DB{
		assignment: &assignmentTable{table: make(map[uuid.UUID]*assignment.Assignment)},
		submission: &submissionTable{table: make(map[uuid.UUID]*assignment.Submission)},
		evaluation: &evaluationTable{table: make(map[uuid.UUID]*evaluation.TeacherEvaluation)},
		directory: &directoryTables{
			courses:  make(map[uuid.UUID]*directory.Course),
			classes:  make(map[uuid.UUID]*directory.Class),
			students: make(map[uuid.UUID]*directory.Student),
			content:  make(map[uuid.UUID]*directory.ContentItem),
		},
	}
	return db, nil
}

package assignment

import (
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/darasa/core"
)

// Assignment types
const (
	TypeExercise     = "exercise"
	TypeFlashcardSet = "flashcard_set"
	TypeVideo        = "video"
	TypeMixed        = "mixed"
)

// Statuses derived from an Assignment's temporal fields; see status.go.
const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusActive    = "active"
	StatusOverdue   = "overdue"
	StatusCompleted = "completed"
)

// Submission statuses
const (
	SubmissionNotStarted = "not_started"
	SubmissionSubmitted  = "submitted"
	SubmissionGraded     = "graded"
	SubmissionLate       = "late"
)

const dueBeforeStartText = "due date must be after start date"

type Assignment struct {
	ID                  uuid.UUID   `json:"id"`
	Title               string      `json:"title"`
	Description         string      `json:"description"`
	Instructions        string      `json:"instructions"`
	Type                string      `json:"type"`
	CourseID            uuid.UUID   `json:"course_id"`
	TeacherID           uuid.UUID   `json:"teacher_id"`
	ClassIDs            []uuid.UUID `json:"class_ids"`
	ContentIDs          []uuid.UUID `json:"content_ids"`
	StudentIDs          []uuid.UUID `json:"student_ids"`
	StartDate           time.Time   `json:"start_date"` // UTC
	DueDate             time.Time   `json:"due_date"`   // UTC
	MaxAttempts         int         `json:"max_attempts"`
	TimeLimitMinutes    *int        `json:"time_limit_minutes,omitempty"`
	IsActive            bool        `json:"is_active"`
	AllowLateSubmission bool        `json:"allow_late_submission"`
	CreatedAt           time.Time   `json:"created_at"` // UTC
	UpdatedAt           time.Time   `json:"updated_at"` // UTC
}

func (a *Assignment) HasClass(classID uuid.UUID) bool {
	for _, id := range a.ClassIDs {
		if id == classID {
			return true
		}
	}
	return false
}

// Submission is a student's attempt record against an Assignment.
type Submission struct {
	ID                   uuid.UUID `json:"id"`
	AssignmentID         uuid.UUID `json:"assignment_id"`
	StudentID            uuid.UUID `json:"student_id"`
	Status               string    `json:"status"`
	Score                *float64  `json:"score,omitempty"`
	MaxScore             float64   `json:"max_score"`
	CompletionPercentage int       `json:"completion_percentage"`
	TimeSpentMinutes     int       `json:"time_spent_minutes"`
	AttemptNumber        int       `json:"attempt_number"`
	SubmittedAt          time.Time `json:"submitted_at"` // UTC
}

// IsComplete reports whether the submission counts towards the completion rate.
func (s *Submission) IsComplete() bool {
	return s.Status == SubmissionSubmitted || s.Status == SubmissionGraded
}

// NewAssignment contains information needed to create a new Assignment.
type NewAssignment struct {
	Title               string      `json:"title" validate:"required"`
	Description         string      `json:"description"`
	Instructions        string      `json:"instructions"`
	Type                string      `json:"type" validate:"required,oneof=exercise flashcard_set video mixed"`
	CourseID            uuid.UUID   `json:"course_id" validate:"required"`
	TeacherID           uuid.UUID   `json:"teacher_id" validate:"required"`
	ClassIDs            []uuid.UUID `json:"class_ids" validate:"required,min=1"`
	ContentIDs          []uuid.UUID `json:"content_ids"`
	StudentIDs          []uuid.UUID `json:"student_ids"`
	StartDate           time.Time   `json:"start_date" validate:"required"`
	DueDate             time.Time   `json:"due_date" validate:"required,gtfield=StartDate"`
	MaxAttempts         int         `json:"max_attempts" validate:"required,min=1,max=10"`
	TimeLimitMinutes    *int        `json:"time_limit_minutes" validate:"omitempty,min=1,max=300"`
	AllowLateSubmission bool        `json:"allow_late_submission"`
	IsActive            bool        `json:"is_active"`
}

func (na *NewAssignment) Validate() error {
	na.Title = core.CleanString(na.Title)
	na.Description = core.CleanString(na.Description)
	na.Instructions = core.CleanString(na.Instructions)
	return core.Validate.Struct(na)
}

// UpdateAssignment defines what information may be provided to modify an existing Assignment.
// Zero-valued fields are kept from the original.
type UpdateAssignment struct {
	Title               string      `json:"title"`
	Description         string      `json:"description"`
	Instructions        string      `json:"instructions"`
	Type                string      `json:"type" validate:"omitempty,oneof=exercise flashcard_set video mixed"`
	ClassIDs            []uuid.UUID `json:"class_ids" validate:"omitempty,min=1"`
	ContentIDs          []uuid.UUID `json:"content_ids"`
	StudentIDs          []uuid.UUID `json:"student_ids"`
	StartDate           time.Time   `json:"start_date"`
	DueDate             time.Time   `json:"due_date"`
	MaxAttempts         int         `json:"max_attempts" validate:"omitempty,min=1,max=10"`
	TimeLimitMinutes    *int        `json:"time_limit_minutes" validate:"omitempty,min=1,max=300"`
	AllowLateSubmission *bool       `json:"allow_late_submission"`
	IsActive            *bool       `json:"is_active"`
}

func (ua *UpdateAssignment) Validate(orig Assignment) error {
	title := core.CleanString(ua.Title)
	if title != "" {
		ua.Title = title
	} else {
		ua.Title = orig.Title
	}
	ua.Description = core.CleanString(ua.Description)
	ua.Instructions = core.CleanString(ua.Instructions)
	if ua.Type == "" {
		ua.Type = orig.Type
	}
	if ua.StartDate.IsZero() {
		ua.StartDate = orig.StartDate
	}
	if ua.DueDate.IsZero() {
		ua.DueDate = orig.DueDate
	}
	if ua.MaxAttempts == 0 {
		ua.MaxAttempts = orig.MaxAttempts
	}

	if err := core.Validate.Struct(ua); err != nil {
		return err
	}
	if !ua.DueDate.After(ua.StartDate) {
		return core.NewValidationError(nil, core.FieldError{Field: "due_date", Error: dueBeforeStartText})
	}
	return nil
}

// QueryFilter narrows an assignment listing; populated fields are AND-combined.
// Search does a case-insensitive match on Title, Description or Instructions.
type QueryFilter struct {
	Search      string    `query:"search"`
	CourseID    uuid.UUID `query:"course_id"`
	ClassID     uuid.UUID `query:"class_id"`
	ContentType string    `query:"content_type"`
	Status      string    `query:"status"`
	TeacherID   uuid.UUID `query:"teacher_id"`
	DueFrom     time.Time `query:"due_from"`
	DueTo       time.Time `query:"due_to"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" &&
		qf.CourseID == uuid.Nil &&
		qf.ClassID == uuid.Nil &&
		qf.ContentType == "" &&
		qf.Status == "" &&
		qf.TeacherID == uuid.Nil &&
		qf.DueFrom.IsZero() &&
		qf.DueTo.IsZero()
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.ContentType = core.CleanString(qf.ContentType, true /* lower */)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

// Sort keys
const (
	SortByTitle     = "title"
	SortByDueDate   = "due_date"
	SortByCreatedAt = "created_at"
)

// Ordering selects the sort key and direction for a listing.
type Ordering struct {
	Key       string
	Ascending bool
}

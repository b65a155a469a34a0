package directory

import (
	"time"

	"github.com/google/uuid"
)

// Course is a unit of teaching a teacher owns; assignments always belong to one.
type Course struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TeacherID   uuid.UUID `json:"teacher_id"`
	CreatedAt   time.Time `json:"created_at"` // UTC
	UpdatedAt   time.Time `json:"updated_at"` // UTC
}

// Class groups students; an assignment targets one or more classes and its
// roster is the union of their students.
type Class struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	CourseID   uuid.UUID   `json:"course_id"`
	StudentIDs []uuid.UUID `json:"student_ids"`
}

type Student struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// ContentItem is anything assignable: an exercise, a flashcard set or a video.
type ContentItem struct {
	ID       uuid.UUID `json:"id"`
	CourseID uuid.UUID `json:"course_id"`
	Type     string    `json:"type"` // matches assignment.Type values
	Title    string    `json:"title"`
}

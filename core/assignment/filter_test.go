package assignment

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func makeAssignments(now time.Time) ([]Assignment, uuid.UUID, uuid.UUID) {
	courseID := uuid.New()
	classID := uuid.New()
	return []Assignment{
		{
			ID:        uuid.New(),
			Title:     "Mathematics Quiz",
			Type:      TypeExercise,
			CourseID:  courseID,
			ClassIDs:  []uuid.UUID{classID},
			StartDate: now.Add(-24 * time.Hour),
			DueDate:   now.Add(24 * time.Hour),
			IsActive:  true,
			CreatedAt: now.Add(-3 * time.Hour),
		},
		{
			ID:        uuid.New(),
			Title:     "Science Quiz",
			Type:      TypeFlashcardSet,
			CourseID:  uuid.New(),
			StartDate: now.Add(24 * time.Hour),
			DueDate:   now.Add(48 * time.Hour),
			IsActive:  true,
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:           uuid.New(),
			Title:        "history essay",
			Instructions: "Write about mathematics in ancient Greece",
			Type:         TypeMixed,
			CourseID:     courseID,
			StartDate:    now.Add(-48 * time.Hour),
			DueDate:      now.Add(-24 * time.Hour),
			IsActive:     true,
			CreatedAt:    now.Add(-1 * time.Hour),
		},
	}, courseID, classID
}

func titles(assignments []Assignment) []string {
	ts := make([]string, 0, len(assignments))
	for _, a := range assignments {
		ts = append(ts, a.Title)
	}
	return ts
}

func TestFilter_search(t *testing.T) {
	now := time.Now().UTC()
	assignments, _, _ := makeAssignments(now)
	ordering := Ordering{Key: SortByTitle, Ascending: true}

	// matches title and instructions, case-insensitively
	res := Filter(assignments, QueryFilter{Search: "math"}, ordering, now)
	assert.Equal(t, []string{"history essay", "Mathematics Quiz"}, titles(res.Assignments))
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, 3, res.Total)

	// no match anywhere
	res = Filter(assignments, QueryFilter{Search: "chemistry"}, ordering, now)
	assert.Empty(t, res.Assignments)
	assert.Equal(t, 0, res.Count)
	assert.Equal(t, 3, res.Total)

	// empty term keeps everything
	res = Filter(assignments, QueryFilter{}, ordering, now)
	assert.Equal(t, 3, res.Count)
}

func TestFilter_fields(t *testing.T) {
	now := time.Now().UTC()
	assignments, courseID, classID := makeAssignments(now)
	ordering := Ordering{Key: SortByTitle, Ascending: true}

	tests := []struct {
		name   string
		filter QueryFilter
		want   []string
	}{
		{
			name:   "by course",
			filter: QueryFilter{CourseID: courseID},
			want:   []string{"history essay", "Mathematics Quiz"},
		},
		{
			name:   "by class membership",
			filter: QueryFilter{ClassID: classID},
			want:   []string{"Mathematics Quiz"},
		},
		{
			name:   "by content type",
			filter: QueryFilter{ContentType: TypeFlashcardSet},
			want:   []string{"Science Quiz"},
		},
		{
			name:   "by status uses list variant",
			filter: QueryFilter{Status: StatusCompleted},
			want:   []string{"history essay"},
		},
		{
			name:   "status scheduled",
			filter: QueryFilter{Status: StatusScheduled},
			want:   []string{"Science Quiz"},
		},
		{
			name:   "due range inclusive",
			filter: QueryFilter{DueFrom: now.Add(-24 * time.Hour), DueTo: now.Add(24 * time.Hour)},
			want:   []string{"history essay", "Mathematics Quiz"},
		},
		{
			name:   "AND-combined",
			filter: QueryFilter{CourseID: courseID, Status: StatusActive},
			want:   []string{"Mathematics Quiz"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Filter(assignments, tt.filter, ordering, now)
			assert.Equal(t, tt.want, titles(res.Assignments))
		})
	}
}

// re-applying identical filters to the output narrows nothing further
func TestFilter_idempotent(t *testing.T) {
	now := time.Now().UTC()
	assignments, courseID, _ := makeAssignments(now)
	filter := QueryFilter{Search: "quiz", CourseID: courseID}
	ordering := Ordering{Key: SortByDueDate, Ascending: true}

	once := Filter(assignments, filter, ordering, now)
	twice := Filter(once.Assignments, filter, ordering, now)
	assert.Equal(t, once.Assignments, twice.Assignments)
	assert.Equal(t, once.Count, twice.Count)
}

func TestFilter_sort(t *testing.T) {
	now := time.Now().UTC()
	assignments, _, _ := makeAssignments(now)

	// title sorting is case-insensitive
	asc := Filter(assignments, QueryFilter{}, Ordering{Key: SortByTitle, Ascending: true}, now)
	assert.Equal(t, []string{"history essay", "Mathematics Quiz", "Science Quiz"}, titles(asc.Assignments))

	// descending is the exact reverse for unique titles
	desc := Filter(assignments, QueryFilter{}, Ordering{Key: SortByTitle, Ascending: false}, now)
	assert.Equal(t, []string{"Science Quiz", "Mathematics Quiz", "history essay"}, titles(desc.Assignments))

	byDue := Filter(assignments, QueryFilter{}, Ordering{Key: SortByDueDate, Ascending: true}, now)
	assert.Equal(t, []string{"history essay", "Mathematics Quiz", "Science Quiz"}, titles(byDue.Assignments))

	byCreated := Filter(assignments, QueryFilter{}, Ordering{Key: SortByCreatedAt, Ascending: false}, now)
	assert.Equal(t, []string{"history essay", "Science Quiz", "Mathematics Quiz"}, titles(byCreated.Assignments))
}

// the input snapshot and previously returned results never get reordered by
// a later call with a different ordering
func TestFilter_doesNotMutateInput(t *testing.T) {
	now := time.Now().UTC()
	assignments, _, _ := makeAssignments(now)
	original := titles(assignments)

	first := Filter(assignments, QueryFilter{}, Ordering{Key: SortByTitle, Ascending: true}, now)
	firstTitles := titles(first.Assignments)

	Filter(assignments, QueryFilter{}, Ordering{Key: SortByTitle, Ascending: false}, now)
	Filter(first.Assignments, QueryFilter{}, Ordering{Key: SortByDueDate, Ascending: false}, now)

	assert.Equal(t, original, titles(assignments))
	assert.Equal(t, firstTitles, titles(first.Assignments))
}

// ties keep their original relative order
func TestFilter_sortStable(t *testing.T) {
	now := time.Now().UTC()
	due := now.Add(24 * time.Hour)
	assignments := []Assignment{
		{ID: uuid.New(), Title: "b", DueDate: due, IsActive: true},
		{ID: uuid.New(), Title: "a", DueDate: due, IsActive: true},
		{ID: uuid.New(), Title: "c", DueDate: due, IsActive: true},
	}
	res := Filter(assignments, QueryFilter{}, Ordering{Key: SortByDueDate, Ascending: true}, now)
	assert.Equal(t, []string{"b", "a", "c"}, titles(res.Assignments))
}

package assignment

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FilterResult is a filtered, sorted view over an assignment snapshot,
// with counts for "showing X of Y" displays.
type FilterResult struct {
	Assignments []Assignment `json:"assignments"`
	Count       int          `json:"count"`
	Total       int          `json:"total"`
}

// Filter applies the populated QueryFilter fields (AND-combined) to an
// assignment snapshot and sorts the survivors. It is a pure transform over
// the input slice, safe to re-run on every keystroke; the status filter uses
// ListStatus at `now`.
func Filter(assignments []Assignment, filter QueryFilter, ordering Ordering, now time.Time) FilterResult {
	total := len(assignments)
	filter.Clean()

	// assignments with search keyword matching any of Title, Description or Instructions ?
	if filter.Search != "" {
		var filtered []Assignment
		search := strings.ToLower(filter.Search)
		for _, a := range assignments {
			if strings.Contains(strings.ToLower(a.Title), search) ||
				strings.Contains(strings.ToLower(a.Description), search) ||
				strings.Contains(strings.ToLower(a.Instructions), search) {
				filtered = append(filtered, a)
			}
		}
		assignments = filtered
	}
	if assignments != nil && filter.CourseID != uuid.Nil {
		var filtered []Assignment
		for _, a := range assignments {
			if a.CourseID == filter.CourseID {
				filtered = append(filtered, a)
			}
		}
		assignments = filtered
	}
	if assignments != nil && filter.ClassID != uuid.Nil {
		var filtered []Assignment
		for _, a := range assignments {
			if a.HasClass(filter.ClassID) {
				filtered = append(filtered, a)
			}
		}
		assignments = filtered
	}
	if assignments != nil && filter.ContentType != "" {
		var filtered []Assignment
		for _, a := range assignments {
			if a.Type == filter.ContentType {
				filtered = append(filtered, a)
			}
		}
		assignments = filtered
	}
	if assignments != nil && filter.Status != "" {
		var filtered []Assignment
		for _, a := range assignments {
			if a.ListStatus(now) == filter.Status {
				filtered = append(filtered, a)
			}
		}
		assignments = filtered
	}
	if assignments != nil && filter.TeacherID != uuid.Nil {
		var filtered []Assignment
		for _, a := range assignments {
			if a.TeacherID == filter.TeacherID {
				filtered = append(filtered, a)
			}
		}
		assignments = filtered
	}
	// due date within [DueFrom, DueTo], both ends inclusive
	if assignments != nil && !filter.DueFrom.IsZero() {
		var filtered []Assignment
		fromUTC := filter.DueFrom.UTC()
		for _, a := range assignments {
			if a.DueDate.Equal(fromUTC) || a.DueDate.After(fromUTC) {
				filtered = append(filtered, a)
			}
		}
		assignments = filtered
	}
	if assignments != nil && !filter.DueTo.IsZero() {
		var filtered []Assignment
		toUTC := filter.DueTo.UTC()
		for _, a := range assignments {
			if a.DueDate.Before(toUTC) || a.DueDate.Equal(toUTC) {
				filtered = append(filtered, a)
			}
		}
		assignments = filtered
	}

	// sort a copy so the input snapshot and previously returned results keep
	// their order across re-runs
	assignments = append([]Assignment(nil), assignments...)
	sortAssignments(assignments, ordering)
	return FilterResult{Assignments: assignments, Count: len(assignments), Total: total}
}

// sortAssignments orders in place; ties keep their original relative order.
// String keys compare case-insensitively.
func sortAssignments(assignments []Assignment, ordering Ordering) {
	var less func(i, j int) bool
	switch ordering.Key {
	case SortByDueDate:
		less = func(i, j int) bool { return assignments[i].DueDate.Before(assignments[j].DueDate) }
	case SortByCreatedAt:
		less = func(i, j int) bool { return assignments[i].CreatedAt.Before(assignments[j].CreatedAt) }
	case SortByTitle:
		fallthrough
	default:
		less = func(i, j int) bool {
			return strings.ToLower(assignments[i].Title) < strings.ToLower(assignments[j].Title)
		}
	}
	if !ordering.Ascending {
		asc := less
		less = func(i, j int) bool { return asc(j, i) }
	}
	sort.SliceStable(assignments, less)
}

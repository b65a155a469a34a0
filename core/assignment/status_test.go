package assignment

import (
	"testing"
	"time"
)

func TestAssignment_Status(t *testing.T) {
	now := time.Now().UTC()
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)
	nextWeek := now.Add(7 * 24 * time.Hour)

	tests := []struct {
		name string
		a    Assignment
		want string
	}{
		{
			name: "inactive is always draft",
			a:    Assignment{IsActive: false, StartDate: yesterday, DueDate: tomorrow},
			want: StatusDraft,
		},
		{
			name: "inactive overrides overdue dates",
			a:    Assignment{IsActive: false, StartDate: now.Add(-48 * time.Hour), DueDate: yesterday},
			want: StatusDraft,
		},
		{
			name: "due date passed",
			a:    Assignment{IsActive: true, StartDate: now.Add(-48 * time.Hour), DueDate: yesterday},
			want: StatusOverdue,
		},
		{
			name: "started yesterday due tomorrow",
			a:    Assignment{IsActive: true, StartDate: yesterday, DueDate: tomorrow},
			want: StatusActive,
		},
		{
			name: "starts in the future",
			a:    Assignment{IsActive: true, StartDate: tomorrow, DueDate: nextWeek},
			want: StatusScheduled,
		},
		{
			name: "malformed window still deterministic",
			a:    Assignment{IsActive: true, StartDate: tomorrow, DueDate: yesterday},
			want: StatusOverdue,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Status(now); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAssignment_ListStatus(t *testing.T) {
	now := time.Now().UTC()
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)
	nextWeek := now.Add(7 * 24 * time.Hour)

	tests := []struct {
		name string
		a    Assignment
		want string
	}{
		{
			name: "past due is completed even when inactive",
			a:    Assignment{IsActive: false, StartDate: now.Add(-48 * time.Hour), DueDate: yesterday},
			want: StatusCompleted,
		},
		{
			name: "past due is completed when active",
			a:    Assignment{IsActive: true, StartDate: now.Add(-48 * time.Hour), DueDate: yesterday},
			want: StatusCompleted,
		},
		{
			name: "inactive with open window is draft",
			a:    Assignment{IsActive: false, StartDate: yesterday, DueDate: tomorrow},
			want: StatusDraft,
		},
		{
			name: "running window is active",
			a:    Assignment{IsActive: true, StartDate: yesterday, DueDate: tomorrow},
			want: StatusActive,
		},
		{
			name: "future start is scheduled",
			a:    Assignment{IsActive: true, StartDate: tomorrow, DueDate: nextWeek},
			want: StatusScheduled,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.ListStatus(now); got != tt.want {
				t.Errorf("ListStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

// the draft rule holds irrespective of dates
func TestAssignment_Status_draftRule(t *testing.T) {
	now := time.Now().UTC()
	windows := [][2]time.Time{
		{now.Add(-48 * time.Hour), now.Add(-24 * time.Hour)},
		{now.Add(-24 * time.Hour), now.Add(24 * time.Hour)},
		{now.Add(24 * time.Hour), now.Add(48 * time.Hour)},
	}
	for _, w := range windows {
		a := Assignment{IsActive: false, StartDate: w[0], DueDate: w[1]}
		if got := a.Status(now); got != StatusDraft {
			t.Errorf("Status() = %v, want %v for window %v", got, StatusDraft, w)
		}
		a.IsActive = true
		if got := a.Status(now); got == StatusDraft {
			t.Errorf("Status() = draft for active assignment, window %v", w)
		}
	}
}

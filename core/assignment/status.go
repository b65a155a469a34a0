package assignment

import "time"

// Status derives the assignment's temporal status at `now`.
// Precedence: an inactive assignment is always a draft, whatever its dates.
func (a *Assignment) Status(now time.Time) string {
	if !a.IsActive {
		return StatusDraft
	}
	if a.DueDate.Before(now) {
		return StatusOverdue
	}
	if !a.StartDate.After(now) { // startDate <= now < dueDate
		return StatusActive
	}
	return StatusScheduled
}

// ListStatus is the listing/filtering variant of Status. Unlike Status it
// recognizes `completed` once the due date has passed, whatever the active
// flag, and only then falls back to the draft rule. Both variants are kept:
// detail screens want the temporal reading, list filters want this one.
func (a *Assignment) ListStatus(now time.Time) string {
	if !a.DueDate.After(now) { // dueDate <= now
		return StatusCompleted
	}
	if !a.IsActive {
		return StatusDraft
	}
	if !a.StartDate.After(now) {
		return StatusActive
	}
	return StatusScheduled
}

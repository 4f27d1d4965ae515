package domain

import "time"

// Completion is an atomic event recording that a task was done at a
// timestamp. Immutable once written except for deletion (undo). At most
// one Completion may exist per (TaskID, local date of CompletedAt) — the
// uniqueness is enforced by the repository layer, not here.
type Completion struct {
	ID          string
	TaskID      string
	CompletedAt time.Time
	Note        string
	Mood        *int // [1,5], optional
}

// LocalDate truncates CompletedAt to the calendar day it falls on, in the
// same location CompletedAt already carries (the caller is responsible for
// normalizing to the user's local timezone before this point).
func (c Completion) LocalDate() time.Time {
	return truncateToDate(c.CompletedAt)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

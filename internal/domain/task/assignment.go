package task

import "time"

// Assignment tells a user that a task was assigned to them. ID is unique per
// notification so sinks can de-duplicate redeliveries.
type Assignment struct {
	ID         string
	TaskID     int64
	BoardID    int64
	UserID     int64
	Title      string
	Status     Status
	DueDate    *time.Time
	AssignedAt time.Time
}

// NewAssignment builds the notification for t. It reports false when t has no
// responsible user.
func NewAssignment(id string, t Task, at time.Time) (Assignment, bool) {
	if t.UserID == nil {
		return Assignment{}, false
	}
	return Assignment{
		ID:         id,
		TaskID:     t.ID,
		BoardID:    t.BoardID,
		UserID:     *t.UserID,
		Title:      t.Title,
		Status:     t.Status,
		DueDate:    t.DueDate,
		AssignedAt: at,
	}, true
}

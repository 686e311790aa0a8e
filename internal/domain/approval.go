package domain

import "time"

// ApprovalStatus guide approval state for an assigned tour
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// RejectCutoff is how long before the tour start a guide may still
// reject an assignment
const RejectCutoff = 48 * time.Hour

// AutoApprovalDelay is how long a pending assignment waits before it is
// approved automatically
const AutoApprovalDelay = 1 * time.Hour

// CanReject reports whether a guide may still reject an assigned tour.
// Pure time comparison: rejection is allowed while at least RejectCutoff
// remains until the tour starts.
func CanReject(tourStart, now time.Time) bool {
	return tourStart.Sub(now) >= RejectCutoff
}

// HoursUntil returns the number of hours from now until the tour start
func HoursUntil(tourStart, now time.Time) float64 {
	return tourStart.Sub(now).Hours()
}

// Scheduled task types processed by the external poller
const (
	TaskTypeTourAutoApproval = "tour_auto_approval"
)

// ScheduledTask is a one-shot task record executed by an external poller.
// The core only exposes the pure due/transition logic, never the timer.
type ScheduledTask struct {
	ID           int64
	TaskType     string
	EntityID     int64
	ScheduledFor time.Time
	Executed     bool
	ExecutedAt   *time.Time
	CreatedAt    time.Time
}

// IsDue reports whether the task should be executed
func (t *ScheduledTask) IsDue(now time.Time) bool {
	return !t.Executed && !t.ScheduledFor.After(now)
}

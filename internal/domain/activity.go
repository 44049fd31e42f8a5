package domain

import "time"

type ActivityType string

const (
	ActivitySystemStarted    ActivityType = "system_started"
	ActivityCandidateAdded   ActivityType = "candidate_added"
	ActivityCandidateUpdated ActivityType = "candidate_updated"
	ActivityCandidateDeleted ActivityType = "candidate_deleted"
	ActivityPostAdded        ActivityType = "post_added"
	ActivityPostDeleted      ActivityType = "post_deleted"
	ActivityDataRestored     ActivityType = "data_restored"
)

// ActivityLogCap bounds the activity log; the oldest entries beyond the cap
// are dropped silently.
const ActivityLogCap = 100

// Activity is one human-readable event record. Activities are written only
// as a side effect of repository mutations and are never updated or
// individually deleted.
type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
}

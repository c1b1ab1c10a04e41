package logging

import "time"

// #region alert-entry

// AlertEntry is one crisis-alert row in the alert_log table. Alerts are
// append-only: the escalation decision that raised one is part of the
// clinical record and is never rewritten.
type AlertEntry struct {
	AssessmentID   string
	ConversationID string
	Score          float64
	Level          string
	Priority       string
	Reason         string
	CreatedAt      time.Time
}

// #endregion alert-entry

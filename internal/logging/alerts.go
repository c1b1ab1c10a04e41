package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log-alert

// LogAlert writes a crisis-alert entry to the alert_log table. The table is
// created by the history store's migration.
func LogAlert(db *sql.DB, entry AlertEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO alert_log (assessment_id, conversation_id, risk_score, risk_level, priority, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.AssessmentID,
		entry.ConversationID,
		entry.Score,
		entry.Level,
		entry.Priority,
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log alert: %w", err)
	}
	return nil
}

// #endregion log-alert

// #region recent-alerts

// RecentAlerts returns up to limit alert entries, newest first.
func RecentAlerts(db *sql.DB, limit int) ([]AlertEntry, error) {
	rows, err := db.Query(
		`SELECT assessment_id, conversation_id, risk_score, risk_level, priority, COALESCE(reason, ''), created_at
		 FROM alert_log
		 ORDER BY created_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query alerts: %w", err)
	}
	defer rows.Close()

	var entries []AlertEntry
	for rows.Next() {
		var e AlertEntry
		var createdAt string
		if err := rows.Scan(&e.AssessmentID, &e.ConversationID, &e.Score, &e.Level, &e.Priority, &e.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		e.CreatedAt = ts
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion recent-alerts

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers

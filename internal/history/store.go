package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mindfulcare/risk-engine/internal/risk"
	"github.com/mindfulcare/risk-engine/internal/signal"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS assessments (
	assessment_id    TEXT PRIMARY KEY,
	conversation_id  TEXT NOT NULL,
	message_text     TEXT NOT NULL,
	risk_score       REAL NOT NULL,
	risk_level       TEXT NOT NULL,
	immediate        INTEGER NOT NULL DEFAULT 0,
	dominant_emotion TEXT NOT NULL,
	sentiment_label  TEXT NOT NULL,
	sentiment_score  REAL NOT NULL,
	intensity        REAL NOT NULL,
	degraded         INTEGER NOT NULL DEFAULT 0,
	escalated        INTEGER NOT NULL DEFAULT 0,
	created_at       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_assessments_conversation
ON assessments(conversation_id, created_at);

CREATE TABLE IF NOT EXISTS alert_log (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	assessment_id    TEXT NOT NULL,
	conversation_id  TEXT NOT NULL,
	risk_score       REAL NOT NULL,
	risk_level       TEXT NOT NULL,
	priority         TEXT NOT NULL,
	reason           TEXT,
	created_at       TEXT NOT NULL,
	FOREIGN KEY (assessment_id) REFERENCES assessments(assessment_id)
);
`

// #endregion schema

// #region store-struct

// Store persists assessment records in SQLite, one row per analyzed
// message.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages (e.g. the
// alert log).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion constructor

// #region save

// Save persists a record, generating the ID and timestamp when unset, and
// returns the stored form.
func (s *Store) Save(rec Record) (Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO assessments
		 (assessment_id, conversation_id, message_text, risk_score, risk_level,
		  immediate, dominant_emotion, sentiment_label, sentiment_score,
		  intensity, degraded, escalated, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.ConversationID,
		rec.Text,
		rec.Score,
		string(rec.Level),
		boolToInt(rec.Immediate),
		string(rec.DominantEmotion),
		string(rec.SentimentLabel),
		rec.SentimentScore,
		rec.Intensity,
		boolToInt(rec.Degraded),
		boolToInt(rec.Escalated),
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Record{}, fmt.Errorf("save assessment: %w", err)
	}
	return rec, nil
}

// #endregion save

// #region recent

// Recent returns up to limit records for a conversation, oldest first, so
// the slice can feed the escalation window and the profile builder
// directly.
func (s *Store) Recent(conversationID string, limit int) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT assessment_id, conversation_id, message_text, risk_score,
		        risk_level, immediate, dominant_emotion, sentiment_label,
		        sentiment_score, intensity, degraded, escalated, created_at
		 FROM assessments
		 WHERE conversation_id = ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		conversationID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}

	// Reverse newest-first query order to chronological
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// RecentAssessments returns the risk assessments of the most recent records
// for a conversation, oldest first — the shape AnalyzeMessage's history
// argument expects.
func (s *Store) RecentAssessments(conversationID string, limit int) ([]risk.Assessment, error) {
	records, err := s.Recent(conversationID, limit)
	if err != nil {
		return nil, err
	}
	assessments := make([]risk.Assessment, len(records))
	for i, rec := range records {
		assessments[i] = rec.Assessment()
	}
	return assessments, nil
}

// List returns up to limit records across all conversations, newest first,
// for inspection tooling.
func (s *Store) List(limit int) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT assessment_id, conversation_id, message_text, risk_score,
		        risk_level, immediate, dominant_emotion, sentiment_label,
		        sentiment_score, intensity, degraded, escalated, created_at
		 FROM assessments
		 ORDER BY created_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query list: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// #endregion recent

// #region helpers

func scanRecords(rows *sql.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var rec Record
		var level, emotion, sentiment, createdAt string
		var immediate, degraded, escalated int
		if err := rows.Scan(
			&rec.ID, &rec.ConversationID, &rec.Text, &rec.Score,
			&level, &immediate, &emotion, &sentiment,
			&rec.SentimentScore, &rec.Intensity, &degraded, &escalated,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		rec.Level = risk.Level(level)
		rec.Immediate = immediate != 0
		rec.DominantEmotion = signal.Emotion(emotion)
		rec.SentimentLabel = signal.Polarity(sentiment)
		rec.Degraded = degraded != 0
		rec.Escalated = escalated != 0
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		rec.CreatedAt = ts
		records = append(records, rec)
	}
	return records, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// #endregion helpers

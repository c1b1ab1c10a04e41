package logging

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mindfulcare/risk-engine/internal/history"
	"github.com/mindfulcare/risk-engine/internal/risk"
	"github.com/mindfulcare/risk-engine/internal/signal"
)

// tempStore opens a store with the full schema; alert rows reference
// assessment rows, so tests save one first.
func tempStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.NewStore(filepath.Join(t.TempDir(), "assessments.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func savedAssessment(t *testing.T, store *history.Store, conv string) history.Record {
	t.Helper()
	rec, err := store.Save(history.Record{
		ConversationID:  conv,
		Text:            "i can't take it anymore",
		Score:           0.85,
		Level:           risk.LevelHigh,
		Immediate:       true,
		DominantEmotion: signal.EmotionSadness,
		SentimentLabel:  signal.SentimentNegative,
		SentimentScore:  0.9,
		Intensity:       8.5,
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	return rec
}

func TestLogAlertRoundTrip(t *testing.T) {
	store := tempStore(t)
	rec := savedAssessment(t, store, "conv-1")

	entry := AlertEntry{
		AssessmentID:   rec.ID,
		ConversationID: "conv-1",
		Score:          0.85,
		Level:          "high",
		Priority:       "critical",
		Reason:         "risk score above immediate-attention threshold",
	}
	if err := LogAlert(store.DB(), entry); err != nil {
		t.Fatalf("LogAlert: %v", err)
	}

	alerts, err := RecentAlerts(store.DB(), 10)
	if err != nil {
		t.Fatalf("RecentAlerts: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, want 1", len(alerts))
	}
	got := alerts[0]
	if got.AssessmentID != rec.ID || got.Priority != "critical" || got.Reason != entry.Reason {
		t.Errorf("alert round trip: got %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("LogAlert did not fill the timestamp")
	}
}

func TestLogAlertEmptyReason(t *testing.T) {
	store := tempStore(t)
	rec := savedAssessment(t, store, "conv-1")

	if err := LogAlert(store.DB(), AlertEntry{
		AssessmentID:   rec.ID,
		ConversationID: "conv-1",
		Score:          0.75,
		Level:          "high",
		Priority:       "high",
	}); err != nil {
		t.Fatalf("LogAlert: %v", err)
	}

	alerts, err := RecentAlerts(store.DB(), 1)
	if err != nil {
		t.Fatalf("RecentAlerts: %v", err)
	}
	if alerts[0].Reason != "" {
		t.Errorf("reason: got %q, want empty", alerts[0].Reason)
	}
}

func TestLogAlertUnknownAssessment(t *testing.T) {
	store := tempStore(t)

	err := LogAlert(store.DB(), AlertEntry{
		AssessmentID:   "no-such-assessment",
		ConversationID: "conv-1",
		Score:          0.9,
		Level:          "high",
		Priority:       "critical",
	})
	if err == nil {
		t.Error("expected foreign key violation for unknown assessment")
	}
}

func TestRecentAlertsNewestFirst(t *testing.T) {
	store := tempStore(t)
	rec := savedAssessment(t, store, "conv-1")
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	for i, prio := range []string{"high", "critical"} {
		if err := LogAlert(store.DB(), AlertEntry{
			AssessmentID:   rec.ID,
			ConversationID: "conv-1",
			Score:          0.85,
			Level:          "high",
			Priority:       prio,
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("LogAlert: %v", err)
		}
	}

	alerts, err := RecentAlerts(store.DB(), 10)
	if err != nil {
		t.Fatalf("RecentAlerts: %v", err)
	}
	if len(alerts) != 2 {
		t.Fatalf("got %d alerts, want 2", len(alerts))
	}
	if alerts[0].Priority != "critical" || alerts[1].Priority != "high" {
		t.Errorf("order: got %s then %s, want critical then high", alerts[0].Priority, alerts[1].Priority)
	}
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mindfulcare/risk-engine/internal/history"
	"github.com/mindfulcare/risk-engine/internal/logging"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to risk_engine.db")
	last := flag.Int("last", 20, "show N most recent assessments")
	conversation := flag.String("conversation", "", "filter to one conversation")
	alerts := flag.Bool("alerts", false, "show the alert log instead of assessments")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/risk_engine.db [--last N] [--conversation id] [--alerts] [--json]")
		os.Exit(2)
	}

	store, err := history.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *alerts {
		err = runAlerts(store, *last, *jsonOut)
	} else {
		err = runAssessments(store, *last, *conversation, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region assessments

type assessmentRow struct {
	ID             string  `json:"assessment_id"`
	ConversationID string  `json:"conversation_id"`
	Text           string  `json:"text"`
	Score          float64 `json:"score"`
	Level          string  `json:"level"`
	Emotion        string  `json:"dominant_emotion"`
	Intensity      float64 `json:"intensity"`
	Degraded       bool    `json:"degraded"`
	Escalated      bool    `json:"escalated"`
	CreatedAt      string  `json:"created_at"`
}

func runAssessments(store *history.Store, last int, conversation string, jsonOut bool) error {
	var records []history.Record
	var err error
	if conversation != "" {
		records, err = store.Recent(conversation, last)
	} else {
		records, err = store.List(last)
	}
	if err != nil {
		return err
	}

	rows := make([]assessmentRow, len(records))
	for i, rec := range records {
		rows[i] = assessmentRow{
			ID:             rec.ID,
			ConversationID: rec.ConversationID,
			Text:           truncate(rec.Text, 40),
			Score:          rec.Score,
			Level:          string(rec.Level),
			Emotion:        string(rec.DominantEmotion),
			Intensity:      rec.Intensity,
			Degraded:       rec.Degraded,
			Escalated:      rec.Escalated,
			CreatedAt:      rec.CreatedAt.Format(time.RFC3339),
		}
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(rows)
	}

	fmt.Printf("%-36s %-12s %-6s %-7s %-9s %-9s %s\n",
		"ID", "CONVERSATION", "SCORE", "LEVEL", "EMOTION", "INTENSITY", "TEXT")
	for _, r := range rows {
		flags := ""
		if r.Escalated {
			flags += " !"
		}
		if r.Degraded {
			flags += " ~"
		}
		fmt.Printf("%-36s %-12s %-6.2f %-7s %-9s %-9.1f %s%s\n",
			r.ID, r.ConversationID, r.Score, r.Level, r.Emotion, r.Intensity, r.Text, flags)
	}
	return nil
}

// #endregion assessments

// #region alerts

func runAlerts(store *history.Store, last int, jsonOut bool) error {
	entries, err := logging.RecentAlerts(store.DB(), last)
	if err != nil {
		return err
	}

	if jsonOut {
		type alertRow struct {
			AssessmentID   string  `json:"assessment_id"`
			ConversationID string  `json:"conversation_id"`
			Score          float64 `json:"score"`
			Level          string  `json:"level"`
			Priority       string  `json:"priority"`
			Reason         string  `json:"reason,omitempty"`
			CreatedAt      string  `json:"created_at"`
		}
		rows := make([]alertRow, len(entries))
		for i, e := range entries {
			rows[i] = alertRow{
				AssessmentID:   e.AssessmentID,
				ConversationID: e.ConversationID,
				Score:          e.Score,
				Level:          e.Level,
				Priority:       e.Priority,
				Reason:         e.Reason,
				CreatedAt:      e.CreatedAt.Format(time.RFC3339),
			}
		}
		return json.NewEncoder(os.Stdout).Encode(rows)
	}

	fmt.Printf("%-36s %-12s %-6s %-7s %-9s %s\n",
		"ASSESSMENT", "CONVERSATION", "SCORE", "LEVEL", "PRIORITY", "REASON")
	for _, e := range entries {
		fmt.Printf("%-36s %-12s %-6.2f %-7s %-9s %s\n",
			e.AssessmentID, e.ConversationID, e.Score, e.Level, e.Priority, e.Reason)
	}
	return nil
}

// #endregion alerts

// #region helpers

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

// #endregion helpers

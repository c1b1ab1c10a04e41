package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mindfulcare/risk-engine/internal/config"
	"github.com/mindfulcare/risk-engine/internal/risk"
)

func loadTestFixture(t *testing.T, name string) (Fixture, config.Config) {
	t.Helper()
	fx, cfg, err := LoadFixture(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	return fx, cfg
}

func TestReplayEscalatingSession(t *testing.T) {
	fx, cfg := loadTestFixture(t, "escalating_session.json")

	results, summary := Replay(fx, cfg)
	if summary.TotalTurns != 6 {
		t.Fatalf("total turns: got %d, want 6", summary.TotalTurns)
	}
	if summary.Errored != 0 {
		t.Fatalf("errored turns: got %d, want 0", summary.Errored)
	}
	for _, r := range results {
		if r.Mismatch != "" {
			t.Errorf("turn %s: %s", r.TurnID, r.Mismatch)
		}
	}
	if summary.Matched != 6 || summary.Mismatched != 0 {
		t.Errorf("summary: got %+v", summary)
	}
}

func TestReplayAccumulatesHistory(t *testing.T) {
	fx, cfg := loadTestFixture(t, "escalating_session.json")

	results, _ := Replay(fx, cfg)
	// The fourth turn escalates only because the two mediums before it are
	// carried forward as history.
	if !results[3].Assessment.Crisis.Escalate {
		t.Error("turn 4 should escalate on sustained elevation")
	}
	if results[3].Assessment.Risk.Level != risk.LevelMedium {
		t.Errorf("turn 4 level: got %s, want medium", results[3].Assessment.Risk.Level)
	}
}

func TestReplayDegradedTurn(t *testing.T) {
	fx, cfg := loadTestFixture(t, "escalating_session.json")

	results, _ := Replay(fx, cfg)
	last := results[len(results)-1]
	if last.Err != nil {
		t.Fatalf("degraded turn must not error, got %v", last.Err)
	}
	if !last.Assessment.Degraded {
		t.Error("classifier outage turn should be flagged degraded")
	}
	if last.Mismatch != "" {
		t.Errorf("degraded turn mismatch: %s", last.Mismatch)
	}
}

func TestReplayDetectsMismatch(t *testing.T) {
	fx, cfg := loadTestFixture(t, "escalating_session.json")
	// Corrupt one expectation.
	for i := range fx.Expected {
		if fx.Expected[i].TurnID == "t1" {
			fx.Expected[i].Level = "high"
		}
	}

	results, summary := Replay(fx, cfg)
	if summary.Mismatched != 1 {
		t.Fatalf("mismatched: got %d, want 1", summary.Mismatched)
	}
	if results[0].Mismatch == "" {
		t.Error("t1 should report a level mismatch")
	}
}

func TestLoadFixtureRejectsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(path, []byte(`{"turns": []}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadFixture(path); err == nil {
		t.Error("expected error for fixture with no turns")
	}
}

func TestLoadFixtureEmbeddedConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fx.json")
	data := `{
		"config": {"escalation": {"sustained_window": 5}},
		"turns": [{"turn_id": "t1", "text": "hello", "sentiment": {"label": "NEU", "score": 0.5}}]
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	_, cfg, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if cfg.Escalation.SustainedWindow != 5 {
		t.Errorf("embedded config window: got %d, want 5", cfg.Escalation.SustainedWindow)
	}
}

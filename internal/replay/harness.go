package replay

import (
	"context"
	"errors"
	"fmt"

	"github.com/mindfulcare/risk-engine/internal/config"
	"github.com/mindfulcare/risk-engine/internal/engine"
	"github.com/mindfulcare/risk-engine/internal/risk"
	"github.com/mindfulcare/risk-engine/internal/signal"
)

// #region types

// Result captures the outcome of replaying one turn through the full
// pipeline, with the mismatch against the fixture's expectation if any.
type Result struct {
	TurnID     string
	Assessment engine.Result
	Expected   *FixtureExpected
	Mismatch   string // empty when the turn matched or had no expectation
	Err        error
}

// Summary aggregates a replay run.
type Summary struct {
	TotalTurns int
	Matched    int
	Mismatched int
	Errored    int
}

// #endregion types

// #region scripted-classifier

// scriptedClassifier replays recorded classifier outputs turn by turn. The
// current turn is set by the harness before each call; errors simulate an
// outage so the adapter's degraded path runs exactly as it would live.
type scriptedClassifier struct {
	turn FixtureTurn
}

var errScriptedOutage = errors.New("scripted classifier outage")

func (s *scriptedClassifier) ClassifyEmotion(context.Context, string) ([]signal.LabelScore, error) {
	if s.turn.ClassifierError {
		return nil, errScriptedOutage
	}
	scores := make([]signal.LabelScore, len(s.turn.Emotions))
	for i, e := range s.turn.Emotions {
		scores[i] = signal.LabelScore{Label: e.Label, Score: e.Score}
	}
	return scores, nil
}

func (s *scriptedClassifier) ClassifySentiment(context.Context, string) (signal.LabelScore, error) {
	if s.turn.ClassifierError {
		return signal.LabelScore{}, errScriptedOutage
	}
	return signal.LabelScore{Label: s.turn.Sentiment.Label, Score: s.turn.Sentiment.Score}, nil
}

// #endregion scripted-classifier

// #region replay

// Replay runs every fixture turn through the full pipeline in order,
// accumulating history so sustained-elevation expectations replay
// faithfully. Operates entirely in memory.
func Replay(fx Fixture, cfg config.Config) ([]Result, Summary) {
	expected := make(map[string]FixtureExpected, len(fx.Expected))
	for _, e := range fx.Expected {
		expected[e.TurnID] = e
	}

	script := &scriptedClassifier{}
	eng := engine.New(script, cfg)

	var history []risk.Assessment
	results := make([]Result, 0, len(fx.Turns))
	summary := Summary{TotalTurns: len(fx.Turns)}

	for _, turn := range fx.Turns {
		script.turn = turn

		res, err := eng.AnalyzeMessage(context.Background(), turn.Text, history)
		if err != nil {
			summary.Errored++
			results = append(results, Result{TurnID: turn.TurnID, Err: err})
			continue
		}
		history = append(history, res.Risk)

		r := Result{TurnID: turn.TurnID, Assessment: res}
		if exp, ok := expected[turn.TurnID]; ok {
			r.Expected = &exp
			r.Mismatch = compare(res, exp)
		}
		if r.Mismatch == "" {
			summary.Matched++
		} else {
			summary.Mismatched++
		}
		results = append(results, r)
	}
	return results, summary
}

// #endregion replay

// #region compare

func compare(res engine.Result, exp FixtureExpected) string {
	if exp.Level != "" && string(res.Risk.Level) != exp.Level {
		return fmt.Sprintf("level: got %s, want %s", res.Risk.Level, exp.Level)
	}
	if res.Crisis.Escalate != exp.Escalate {
		return fmt.Sprintf("escalate: got %v, want %v", res.Crisis.Escalate, exp.Escalate)
	}
	if exp.Priority != "" && string(res.Crisis.Priority) != exp.Priority {
		return fmt.Sprintf("priority: got %s, want %s", res.Crisis.Priority, exp.Priority)
	}
	return ""
}

// #endregion compare

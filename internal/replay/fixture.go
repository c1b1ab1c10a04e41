package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mindfulcare/risk-engine/internal/config"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a scripted
// conversation with the classifier outputs recorded per turn, plus the
// expected assessment per turn.
type Fixture struct {
	Description string            `json:"description"`
	Config      json.RawMessage   `json:"config"`
	Turns       []FixtureTurn     `json:"turns"`
	Expected    []FixtureExpected `json:"expected"`
}

// FixtureTurn is one scripted message with its recorded classifier output.
type FixtureTurn struct {
	TurnID string `json:"turn_id"`
	Text   string `json:"text"`
	// Emotions carries raw classifier labels; normalization runs during
	// replay exactly as it does live.
	Emotions  []FixtureLabelScore `json:"emotions"`
	Sentiment FixtureLabelScore   `json:"sentiment"`
	// ClassifierError simulates a classifier outage on this turn, driving
	// the degraded path.
	ClassifierError bool `json:"classifier_error"`
}

// FixtureLabelScore mirrors signal.LabelScore with JSON tags.
type FixtureLabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// FixtureExpected captures the expected outcome for one turn.
type FixtureExpected struct {
	TurnID   string `json:"turn_id"`
	Level    string `json:"level"`
	Escalate bool   `json:"escalate"`
	Priority string `json:"priority"`
}

// #endregion fixture-types

// #region load

// LoadFixture reads and parses a fixture file, resolving its embedded
// config section (defaults when absent).
func LoadFixture(path string) (Fixture, config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, config.Config{}, fmt.Errorf("read fixture: %w", err)
	}

	var fx Fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return Fixture{}, config.Config{}, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if len(fx.Turns) == 0 {
		return Fixture{}, config.Config{}, fmt.Errorf("fixture %s: no turns", path)
	}

	cfg := config.Default()
	if len(fx.Config) > 0 {
		cfg, err = config.Parse(fx.Config)
		if err != nil {
			return Fixture{}, config.Config{}, fmt.Errorf("fixture %s: %w", path, err)
		}
	}
	return fx, cfg, nil
}

// #endregion load

package intensity

import (
	"testing"

	"github.com/mindfulcare/risk-engine/internal/signal"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		dist signal.Distribution
		want float64
	}{
		{
			"single-strong-emotion",
			signal.Distribution{signal.EmotionSadness: 0.9},
			9.0,
		},
		{
			"three-coactive-emotions-get-bonus",
			signal.Distribution{
				signal.EmotionSadness: 0.31,
				signal.EmotionFear:    0.31,
				signal.EmotionAnger:   0.31,
			},
			4.1,
		},
		{
			"two-active-no-bonus",
			signal.Distribution{
				signal.EmotionSadness: 0.6,
				signal.EmotionFear:    0.4,
			},
			6.0,
		},
		{
			"threshold-is-strict",
			signal.Distribution{
				signal.EmotionSadness: 0.3,
				signal.EmotionFear:    0.3,
				signal.EmotionAnger:   0.3,
			},
			3.0,
		},
		{
			"capped-at-ten",
			signal.Distribution{
				signal.EmotionSadness: 1.0,
				signal.EmotionFear:    0.9,
				signal.EmotionAnger:   0.9,
			},
			10.0,
		},
		{
			"empty-distribution",
			signal.Distribution{},
			0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.dist)
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if got < 0 || got > 10 {
				t.Errorf("intensity %v outside [0,10]", got)
			}
		})
	}
}

func TestModifier(t *testing.T) {
	cfg := DefaultModifierConfig()

	tests := []struct {
		name string
		text string
		want float64
	}{
		{"plain", "i am sad today", 1.0},
		{"intensifier", "i am very sad today", 1.3},
		{"diminisher", "i am slightly sad", 0.7},
		{"multi-word-diminisher", "i am a little sad", 0.7},
		{"clamped-high", "i am very extremely absolutely incredibly sad", 2.0},
		{"clamped-low", "barely hardly slightly sad", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Modifier(tt.text, cfg)
			if !near(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModifierPunctuationSignals(t *testing.T) {
	cfg := ModifierConfig{} // no lexical tables, isolate punctuation rules

	// Two exclamation marks: 1 * (1 + 2*0.1)
	if got := Modifier("help me!!", cfg); !near(got, 1.2) {
		t.Errorf("exclamations: got %v, want 1.2", got)
	}

	// Sustained uppercase
	if got := Modifier("I CANNOT DO THIS ANYMORE", cfg); !near(got, 1.3) {
		t.Errorf("uppercase: got %v, want 1.3", got)
	}

	// Ellipsis
	if got := Modifier("i don't know anymore...", cfg); !near(got, 1.1) {
		t.Errorf("ellipsis: got %v, want 1.1", got)
	}
}

func TestComputeAdjusted(t *testing.T) {
	cfg := DefaultModifierConfig()
	dist := signal.Distribution{signal.EmotionSadness: 0.8}

	// 8.0 * 1.3 = 10.4 → capped at 10
	if got := ComputeAdjusted(dist, "i feel very sad", cfg); got != 10.0 {
		t.Errorf("got %v, want 10.0", got)
	}

	// 8.0 * 0.7 = 5.6
	if got := ComputeAdjusted(dist, "i feel slightly sad", cfg); got != 5.6 {
		t.Errorf("got %v, want 5.6", got)
	}
}

func near(got, want float64) bool {
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}

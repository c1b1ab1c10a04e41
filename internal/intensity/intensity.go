package intensity

import (
	"math"
	"strings"
	"unicode"

	"github.com/mindfulcare/risk-engine/internal/signal"
)

// #region constants

// activeThreshold is the score above which an emotion counts as active when
// checking for co-activation.
const activeThreshold = 0.3

// coActivationBonus is added once when more than two emotions are active.
// A bounded nudge, not a multiplier: several co-active emotions are more
// clinically notable than one strong one, but noisy multi-label output must
// not produce runaway scores.
const coActivationBonus = 1.0

// #endregion constants

// #region compute

// Compute derives a 0-10 intensity scalar from an emotion distribution:
// ten times the strongest score, plus the co-activation bonus when more
// than two emotions are active, capped at 10 and rounded to one decimal.
func Compute(dist signal.Distribution) float64 {
	intensity := dist.Max() * 10

	active := 0
	for _, score := range dist {
		if score > activeThreshold {
			active++
		}
	}
	if active > 2 {
		intensity = math.Min(intensity+coActivationBonus, 10)
	}

	return round1(intensity)
}

// #endregion compute

// #region modifier-config

// ModifierConfig holds the lexical intensity-modifier tables. Entries map
// lowercase words or phrases to multipliers: intensifiers above 1,
// diminishers below 1.
type ModifierConfig struct {
	Intensifiers map[string]float64
	Diminishers  map[string]float64
}

// DefaultModifierConfig returns the built-in English modifier tables.
func DefaultModifierConfig() ModifierConfig {
	return ModifierConfig{
		Intensifiers: map[string]float64{
			"very":       1.3,
			"really":     1.3,
			"so":         1.2,
			"too":        1.5,
			"extremely":  1.7,
			"incredibly": 1.5,
			"quite":      1.2,
			"totally":    1.4,
			"completely": 1.4,
			"absolutely": 1.5,
		},
		Diminishers: map[string]float64{
			"slightly":   0.7,
			"somewhat":   0.8,
			"a little":   0.7,
			"barely":     0.6,
			"hardly":     0.6,
			"kind of":    0.8,
			"almost":     0.9,
			"relatively": 0.8,
		},
	}
}

// #endregion modifier-config

// #region modifier

// Modifier derives a lexical intensity multiplier from the text itself:
// intensifier and diminisher words, repeated exclamation marks, sustained
// uppercase, and trailing ellipses. The result is clamped to [0.5, 2.0].
func Modifier(text string, config ModifierConfig) float64 {
	lower := strings.ToLower(text)
	modifier := 1.0

	for word, factor := range config.Intensifiers {
		if containsEntry(lower, word) {
			modifier *= factor
		}
	}
	for word, factor := range config.Diminishers {
		if containsEntry(lower, word) {
			modifier *= factor
		}
	}

	// Repeated exclamation marks raise intensity
	exclaims := strings.Count(text, "!")
	if exclaims > 1 {
		modifier *= 1 + float64(exclaims)*0.1
	}

	// Sustained uppercase reads as shouting
	if uppercaseRatio(text) > 0.5 {
		modifier *= 1.3
	}

	// Ellipses signal hesitation or dejection
	if strings.Contains(text, "...") || strings.Count(text, ".") > 3 {
		modifier *= 1.1
	}

	if modifier < 0.5 {
		return 0.5
	}
	if modifier > 2.0 {
		return 2.0
	}
	return modifier
}

// ComputeAdjusted applies the lexical modifier to the base intensity,
// clamped back to [0,10] and rounded to one decimal.
func ComputeAdjusted(dist signal.Distribution, text string, config ModifierConfig) float64 {
	adjusted := Compute(dist) * Modifier(text, config)
	if adjusted > 10 {
		adjusted = 10
	}
	return round1(adjusted)
}

// #endregion modifier

// #region helpers

// containsEntry matches single words on word boundaries and multi-word
// entries as substrings.
func containsEntry(lower, entry string) bool {
	if strings.ContainsRune(entry, ' ') {
		return strings.Contains(lower, entry)
	}
	for _, w := range strings.Fields(lower) {
		if strings.Trim(w, ".,!?;:") == entry {
			return true
		}
	}
	return false
}

func uppercaseRatio(text string) float64 {
	letters, upper := 0, 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(upper) / float64(letters)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// #endregion helpers

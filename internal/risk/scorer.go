package risk

import (
	"math"
	"strings"

	"github.com/mindfulcare/risk-engine/internal/signal"
)

// #region config

// ScorerConfig holds the keyword lists, thresholds, and term weights for
// risk scoring. The weights read as tuned-by-hand constants; treat them as
// tunable deployment parameters, not law.
type ScorerConfig struct {
	// CrisisKeywords are matched case-insensitively as substrings; each
	// distinct keyword found contributes CrisisMatchWeight, capped at
	// CrisisTermCap.
	CrisisKeywords    []string
	CrisisMatchWeight float64
	CrisisTermCap     float64

	// Emotion threshold terms. Each fires independently.
	SadnessThreshold float64
	SadnessWeight    float64
	FearThreshold    float64
	FearWeight       float64
	AngerThreshold   float64
	AngerWeight      float64

	// Negative sentiment above this confidence contributes SentimentWeight.
	NegativeConfidence float64
	SentimentWeight    float64

	// HopelessnessPhrases contribute HopelessnessWeight once if any match,
	// flat rather than per-match so near-synonymous phrasings don't
	// double-count.
	HopelessnessPhrases []string
	HopelessnessWeight  float64
}

// DefaultScorerConfig returns the shipped English configuration.
func DefaultScorerConfig() ScorerConfig {
	return ScorerConfig{
		CrisisKeywords: []string{
			"suicide", "kill myself", "end it all", "don't want to live",
			"hurt myself", "end my life", "better off dead",
			"can't take it anymore", "no way out", "desperate",
		},
		CrisisMatchWeight: 0.3,
		CrisisTermCap:     0.6,

		SadnessThreshold: 0.7,
		SadnessWeight:    0.25,
		FearThreshold:    0.6,
		FearWeight:       0.20,
		AngerThreshold:   0.7,
		AngerWeight:      0.15,

		NegativeConfidence: 0.8,
		SentimentWeight:    0.20,

		HopelessnessPhrases: []string{
			"nothing matters", "no hope", "it's pointless", "all is lost",
			"it will never get better", "it's always going to be like this",
		},
		HopelessnessWeight: 0.25,
	}
}

// #endregion config

// #region scorer

// Scorer combines keyword matches, emotion thresholds, and sentiment
// polarity into a risk assessment. Stateless and safe for concurrent use.
type Scorer struct {
	config ScorerConfig
}

// NewScorer creates a scorer with the given configuration.
func NewScorer(config ScorerConfig) *Scorer {
	return &Scorer{config: config}
}

// Score evaluates one message. Each term is clamped before summing and the
// total is clamped to [0,1], so no input combination can escape the range
// and every additional keyword match is monotonically non-decreasing.
func (s *Scorer) Score(text string, dist signal.Distribution, sentiment signal.Sentiment) Assessment {
	lower := strings.ToLower(text)
	score := 0.0

	// 1. Crisis keywords, capped
	matches := 0
	for _, kw := range s.config.CrisisKeywords {
		if strings.Contains(lower, kw) {
			matches++
		}
	}
	score += math.Min(float64(matches)*s.config.CrisisMatchWeight, s.config.CrisisTermCap)

	// 2. Intense negative emotions
	if dist[signal.EmotionSadness] > s.config.SadnessThreshold {
		score += s.config.SadnessWeight
	}
	if dist[signal.EmotionFear] > s.config.FearThreshold {
		score += s.config.FearWeight
	}
	if dist[signal.EmotionAnger] > s.config.AngerThreshold {
		score += s.config.AngerWeight
	}

	// 3. Confidently negative sentiment
	if sentiment.Label == signal.SentimentNegative && sentiment.Score > s.config.NegativeConfidence {
		score += s.config.SentimentWeight
	}

	// 4. Hopelessness phrases, flat
	for _, phrase := range s.config.HopelessnessPhrases {
		if strings.Contains(lower, phrase) {
			score += s.config.HopelessnessWeight
			break
		}
	}

	if score > 1 {
		score = 1
	}
	return NewAssessment(score)
}

// #endregion scorer

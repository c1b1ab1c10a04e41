package classifier

import (
	"context"
	"strings"

	"github.com/mindfulcare/risk-engine/internal/signal"
)

// #region lexicons

// emotionLexicon maps each canonical emotion to indicator words. Scores are
// crude but deterministic; this classifier exists so the pipeline runs
// offline and so fixtures don't depend on a model endpoint.
var emotionLexicon = map[string][]string{
	"joy": {
		"happy", "glad", "great", "wonderful", "excited", "grateful", "proud",
	},
	"sadness": {
		"sad", "crying", "cry", "miserable", "depressed", "down", "heartbroken",
		"hopeless", "empty",
	},
	"anger": {
		"angry", "furious", "mad", "hate", "frustrated", "rage",
	},
	"fear": {
		"afraid", "scared", "terrified", "anxious", "panic", "nervous", "worried",
	},
	"surprise": {
		"surprised", "shocked", "can't believe", "unexpected",
	},
	"disgust": {
		"disgusted", "disgusting", "sick of", "gross",
	},
}

var positiveWords = []string{
	"good", "great", "happy", "love", "better", "wonderful", "thankful",
	"hopeful", "calm",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "sad", "hate", "worse", "hopeless", "hurt",
	"alone", "scared", "angry", "pain",
}

// #endregion lexicons

// #region classifier

// LexiconClassifier scores emotions by indicator-word hits. No model call,
// no network, no state.
type LexiconClassifier struct{}

// NewLexiconClassifier returns the offline fallback classifier.
func NewLexiconClassifier() *LexiconClassifier {
	return &LexiconClassifier{}
}

// ClassifyEmotion scores each emotion as 0.35 per distinct indicator word
// found, capped at 0.95. With no hits the message reads as neutral.
func (c *LexiconClassifier) ClassifyEmotion(_ context.Context, text string) ([]signal.LabelScore, error) {
	lower := strings.ToLower(text)

	var scores []signal.LabelScore
	anyHit := false
	for _, label := range []string{"joy", "sadness", "anger", "fear", "surprise", "disgust"} {
		hits := 0
		for _, w := range emotionLexicon[label] {
			if strings.Contains(lower, w) {
				hits++
			}
		}
		score := float64(hits) * 0.35
		if score > 0.95 {
			score = 0.95
		}
		if hits > 0 {
			anyHit = true
		}
		scores = append(scores, signal.LabelScore{Label: label, Score: score})
	}

	neutral := 0.1
	if !anyHit {
		neutral = 1.0
	}
	scores = append(scores, signal.LabelScore{Label: "neutral", Score: neutral})
	return scores, nil
}

// ClassifySentiment compares positive and negative indicator-word counts.
// Confidence grows with the margin and saturates at 0.95; a tie or no hits
// reads neutral at 0.5.
func (c *LexiconClassifier) ClassifySentiment(_ context.Context, text string) (signal.LabelScore, error) {
	lower := strings.ToLower(text)

	pos, neg := 0, 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			neg++
		}
	}

	if pos == neg {
		return signal.LabelScore{Label: "neutral", Score: 0.5}, nil
	}

	margin := pos - neg
	label := "positive"
	if margin < 0 {
		label = "negative"
		margin = -margin
	}
	score := 0.5 + 0.15*float64(margin)
	if score > 0.95 {
		score = 0.95
	}
	return signal.LabelScore{Label: label, Score: score}, nil
}

// #endregion classifier

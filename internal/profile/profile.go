package profile

import (
	"github.com/mindfulcare/risk-engine/internal/history"
	"github.com/mindfulcare/risk-engine/internal/signal"
)

// #region trend

// Trend summarizes the recent sentiment direction of a conversation.
type Trend string

const (
	TrendPositive Trend = "positive"
	TrendNegative Trend = "negative"
	TrendNeutral  Trend = "neutral"
)

// #endregion trend

// #region summary

// Summary condenses a conversation's recent assessment records into the
// profile a clinician (or the reply layer) reads before responding.
type Summary struct {
	Entries          int
	DominantEmotion  signal.Emotion
	Trend            Trend
	AverageIntensity float64
	AlertCount       int
	DegradedCount    int
}

// #endregion summary

// #region build

// trendThreshold is how far the average signed sentiment must move from
// zero before the trend stops reading neutral.
const trendThreshold = 0.3

// Build derives a profile summary from recent records, oldest first. Pure
// function over its input; an empty slice yields a neutral summary.
func Build(records []history.Record) Summary {
	if len(records) == 0 {
		return Summary{DominantEmotion: signal.EmotionNeutral, Trend: TrendNeutral}
	}

	emotionCounts := map[signal.Emotion]int{}
	var sentimentSum, intensitySum float64
	alerts, degraded := 0, 0

	for _, rec := range records {
		emotionCounts[rec.DominantEmotion]++
		sentimentSum += signedSentiment(rec)
		intensitySum += rec.Intensity
		if rec.Escalated {
			alerts++
		}
		if rec.Degraded {
			degraded++
		}
	}

	return Summary{
		Entries:          len(records),
		DominantEmotion:  dominantEmotion(emotionCounts),
		Trend:            trendFor(sentimentSum / float64(len(records))),
		AverageIntensity: intensitySum / float64(len(records)),
		AlertCount:       alerts,
		DegradedCount:    degraded,
	}
}

// #endregion build

// #region escalating

// escalationMargin is how far above the recent average the current
// intensity must sit to count as an escalation of intensity.
const escalationMargin = 2.5

// EscalatingIntensity reports whether the current intensity clearly exceeds
// the recent average — an emotional escalation distinct from a single
// strong message with no history behind it.
func EscalatingIntensity(records []history.Record, current float64) bool {
	if len(records) == 0 {
		return false
	}
	var sum float64
	for _, rec := range records {
		sum += rec.Intensity
	}
	return current > sum/float64(len(records))+escalationMargin
}

// #endregion escalating

// #region helpers

func signedSentiment(rec history.Record) float64 {
	switch rec.SentimentLabel {
	case signal.SentimentPositive:
		return rec.SentimentScore
	case signal.SentimentNegative:
		return -rec.SentimentScore
	default:
		return 0
	}
}

// dominantEmotion picks the most frequent dominant emotion, breaking ties
// in vocabulary order for determinism.
func dominantEmotion(counts map[signal.Emotion]int) signal.Emotion {
	best := signal.EmotionNeutral
	bestCount := -1
	for _, e := range signal.Vocabulary() {
		if counts[e] > bestCount {
			best = e
			bestCount = counts[e]
		}
	}
	return best
}

func trendFor(avg float64) Trend {
	switch {
	case avg > trendThreshold:
		return TrendPositive
	case avg < -trendThreshold:
		return TrendNegative
	default:
		return TrendNeutral
	}
}

// #endregion helpers

package profile

import (
	"testing"

	"github.com/mindfulcare/risk-engine/internal/history"
	"github.com/mindfulcare/risk-engine/internal/signal"
)

func rec(emotion signal.Emotion, sentiment signal.Polarity, score, intensity float64) history.Record {
	return history.Record{
		DominantEmotion: emotion,
		SentimentLabel:  sentiment,
		SentimentScore:  score,
		Intensity:       intensity,
	}
}

func TestBuildEmpty(t *testing.T) {
	got := Build(nil)
	if got.Entries != 0 || got.DominantEmotion != signal.EmotionNeutral || got.Trend != TrendNeutral {
		t.Errorf("empty profile: got %+v", got)
	}
}

func TestBuildDominantEmotion(t *testing.T) {
	records := []history.Record{
		rec(signal.EmotionSadness, signal.SentimentNeutral, 0.5, 4),
		rec(signal.EmotionSadness, signal.SentimentNeutral, 0.5, 4),
		rec(signal.EmotionJoy, signal.SentimentNeutral, 0.5, 4),
	}
	got := Build(records)
	if got.DominantEmotion != signal.EmotionSadness {
		t.Errorf("dominant emotion: got %s, want sadness", got.DominantEmotion)
	}
	if got.Entries != 3 {
		t.Errorf("entries: got %d, want 3", got.Entries)
	}
}

func TestBuildDominantEmotionTieBreak(t *testing.T) {
	// One of each: joy precedes sadness in the vocabulary.
	records := []history.Record{
		rec(signal.EmotionSadness, signal.SentimentNeutral, 0.5, 4),
		rec(signal.EmotionJoy, signal.SentimentNeutral, 0.5, 4),
	}
	if got := Build(records).DominantEmotion; got != signal.EmotionJoy {
		t.Errorf("tie break: got %s, want joy", got)
	}
}

func TestBuildTrend(t *testing.T) {
	cases := []struct {
		name    string
		records []history.Record
		want    Trend
	}{
		{
			"strongly negative",
			[]history.Record{
				rec(signal.EmotionSadness, signal.SentimentNegative, 0.9, 5),
				rec(signal.EmotionSadness, signal.SentimentNegative, 0.8, 5),
			},
			TrendNegative,
		},
		{
			"strongly positive",
			[]history.Record{
				rec(signal.EmotionJoy, signal.SentimentPositive, 0.9, 3),
				rec(signal.EmotionJoy, signal.SentimentPositive, 0.7, 3),
			},
			TrendPositive,
		},
		{
			"mixed cancels out",
			[]history.Record{
				rec(signal.EmotionJoy, signal.SentimentPositive, 0.8, 3),
				rec(signal.EmotionSadness, signal.SentimentNegative, 0.8, 3),
			},
			TrendNeutral,
		},
		{
			"weak signal stays neutral",
			[]history.Record{
				rec(signal.EmotionSadness, signal.SentimentNegative, 0.25, 3),
			},
			TrendNeutral,
		},
		{
			"exactly at threshold stays neutral",
			[]history.Record{
				rec(signal.EmotionSadness, signal.SentimentNegative, 0.3, 3),
			},
			TrendNeutral,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Build(tc.records).Trend; got != tc.want {
				t.Errorf("trend: got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestBuildCounts(t *testing.T) {
	records := []history.Record{
		{DominantEmotion: signal.EmotionFear, SentimentLabel: signal.SentimentNegative, SentimentScore: 0.9, Intensity: 8, Escalated: true},
		{DominantEmotion: signal.EmotionFear, SentimentLabel: signal.SentimentNegative, SentimentScore: 0.9, Intensity: 6, Degraded: true},
		{DominantEmotion: signal.EmotionNeutral, SentimentLabel: signal.SentimentNeutral, SentimentScore: 0.5, Intensity: 4},
	}
	got := Build(records)
	if got.AlertCount != 1 {
		t.Errorf("alert count: got %d, want 1", got.AlertCount)
	}
	if got.DegradedCount != 1 {
		t.Errorf("degraded count: got %d, want 1", got.DegradedCount)
	}
	if got.AverageIntensity != 6 {
		t.Errorf("average intensity: got %v, want 6", got.AverageIntensity)
	}
}

func TestEscalatingIntensity(t *testing.T) {
	records := []history.Record{
		rec(signal.EmotionSadness, signal.SentimentNeutral, 0.5, 4),
		rec(signal.EmotionSadness, signal.SentimentNeutral, 0.5, 5),
	}
	// Average is 4.5; the margin puts the bar at 7.0.
	cases := []struct {
		name    string
		current float64
		want    bool
	}{
		{"well above margin", 7.5, true},
		{"exactly at bar", 7.0, false},
		{"just below bar", 6.9, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EscalatingIntensity(records, tc.current); got != tc.want {
				t.Errorf("EscalatingIntensity(%v): got %v, want %v", tc.current, got, tc.want)
			}
		})
	}
}

func TestEscalatingIntensityNoHistory(t *testing.T) {
	if EscalatingIntensity(nil, 10) {
		t.Error("a single strong message with no history is not an escalation")
	}
}

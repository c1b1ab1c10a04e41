package signal

import "testing"

func TestNormalizeDistribution(t *testing.T) {
	tests := []struct {
		name string
		raw  []LabelScore
		want Distribution
	}{
		{
			"english-labels",
			[]LabelScore{{"joy", 0.1}, {"sadness", 0.8}, {"fear", 0.3}},
			Distribution{EmotionJoy: 0.1, EmotionSadness: 0.8, EmotionFear: 0.3},
		},
		{
			"spanish-labels",
			[]LabelScore{{"alegría", 0.2}, {"tristeza", 0.7}, {"miedo", 0.4}, {"enojo", 0.1}},
			Distribution{EmotionJoy: 0.2, EmotionSadness: 0.7, EmotionFear: 0.4, EmotionAnger: 0.1},
		},
		{
			"others-maps-to-neutral",
			[]LabelScore{{"others", 0.9}},
			Distribution{EmotionNeutral: 0.9},
		},
		{
			"unknown-labels-dropped",
			[]LabelScore{{"confusion", 0.5}, {"sadness", 0.6}},
			Distribution{EmotionSadness: 0.6},
		},
		{
			"scores-clamped",
			[]LabelScore{{"joy", 1.7}, {"anger", -0.2}},
			Distribution{EmotionJoy: 1.0, EmotionAnger: 0},
		},
		{
			"duplicate-keeps-highest",
			[]LabelScore{{"fear", 0.3}, {"ansiedad", 0.6}},
			Distribution{EmotionFear: 0.6},
		},
		{
			"case-and-whitespace",
			[]LabelScore{{" Sadness ", 0.5}},
			Distribution{EmotionSadness: 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDistribution(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for e, s := range tt.want {
				if got[e] != s {
					t.Errorf("%s: got %v, want %v", e, got[e], s)
				}
			}
		})
	}
}

func TestNormalizeSentiment(t *testing.T) {
	tests := []struct {
		name string
		raw  LabelScore
		want Sentiment
	}{
		{"pos-code", LabelScore{"POS", 0.9}, Sentiment{SentimentPositive, 0.9}},
		{"neg-code", LabelScore{"NEG", 0.85}, Sentiment{SentimentNegative, 0.85}},
		{"neu-code", LabelScore{"NEU", 0.6}, Sentiment{SentimentNeutral, 0.6}},
		{"spanish", LabelScore{"negativo", 0.7}, Sentiment{SentimentNegative, 0.7}},
		{"unknown-degrades-neutral", LabelScore{"mixed", 0.8}, Sentiment{SentimentNeutral, 0.8}},
		{"clamped", LabelScore{"positive", 1.4}, Sentiment{SentimentPositive, 1.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSentiment(tt.raw)
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDominant(t *testing.T) {
	dist := Distribution{EmotionJoy: 0.2, EmotionSadness: 0.8, EmotionFear: 0.3}
	if got := dist.Dominant(); got != EmotionSadness {
		t.Errorf("got %s, want sadness", got)
	}

	if got := (Distribution{}).Dominant(); got != EmotionNeutral {
		t.Errorf("empty distribution: got %s, want neutral", got)
	}
}

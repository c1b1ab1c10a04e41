package signal

import "strings"

// #region emotion-labels

// emotionLabels maps external classifier vocabularies onto the canonical
// one. Covers the English model labels, the Spanish deployment labels, and
// the BETO "others" bucket.
var emotionLabels = map[string]Emotion{
	"joy":       EmotionJoy,
	"happiness": EmotionJoy,
	"alegria":   EmotionJoy,
	"alegría":   EmotionJoy,
	"sadness":   EmotionSadness,
	"tristeza":  EmotionSadness,
	"anger":     EmotionAnger,
	"enojo":     EmotionAnger,
	"ira":       EmotionAnger,
	"fear":      EmotionFear,
	"miedo":     EmotionFear,
	"ansiedad":  EmotionFear,
	"surprise":  EmotionSurprise,
	"sorpresa":  EmotionSurprise,
	"disgust":   EmotionDisgust,
	"disgusto":  EmotionDisgust,
	"asco":      EmotionDisgust,
	"others":    EmotionNeutral,
	"other":     EmotionNeutral,
	"neutral":   EmotionNeutral,
}

// #endregion emotion-labels

// #region sentiment-labels

// sentimentLabels maps external sentiment vocabularies, including the
// POS/NEU/NEG codes emitted by the RoBERTuito-style models.
var sentimentLabels = map[string]Polarity{
	"pos":      SentimentPositive,
	"positive": SentimentPositive,
	"positivo": SentimentPositive,
	"neu":      SentimentNeutral,
	"neutral":  SentimentNeutral,
	"neg":      SentimentNegative,
	"negative": SentimentNegative,
	"negativo": SentimentNegative,
}

// #endregion sentiment-labels

// #region normalize

// NormalizeDistribution folds raw classifier outputs into a canonical
// Distribution. Unknown labels are dropped, scores are clamped to [0,1],
// and duplicate labels keep the highest score.
func NormalizeDistribution(raw []LabelScore) Distribution {
	dist := Distribution{}
	for _, ls := range raw {
		emotion, ok := emotionLabels[strings.ToLower(strings.TrimSpace(ls.Label))]
		if !ok {
			continue
		}
		score := clamp01(ls.Score)
		if score > dist[emotion] {
			dist[emotion] = score
		}
	}
	return dist
}

// NormalizeSentiment maps a raw sentiment output to a canonical Sentiment.
// Unknown labels degrade to neutral.
func NormalizeSentiment(raw LabelScore) Sentiment {
	label, ok := sentimentLabels[strings.ToLower(strings.TrimSpace(raw.Label))]
	if !ok {
		label = SentimentNeutral
	}
	return Sentiment{Label: label, Score: clamp01(raw.Score)}
}

// #endregion normalize

// #region helpers

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion helpers

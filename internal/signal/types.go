package signal

import "context"

// #region emotion

// Emotion is one entry of the canonical emotion vocabulary. Every
// downstream component assumes distributions are keyed by these values.
type Emotion string

const (
	EmotionJoy      Emotion = "joy"
	EmotionSadness  Emotion = "sadness"
	EmotionAnger    Emotion = "anger"
	EmotionFear     Emotion = "fear"
	EmotionSurprise Emotion = "surprise"
	EmotionDisgust  Emotion = "disgust"
	EmotionNeutral  Emotion = "neutral"
)

// Vocabulary returns the canonical emotion vocabulary in a fixed order.
func Vocabulary() []Emotion {
	return []Emotion{
		EmotionJoy, EmotionSadness, EmotionAnger, EmotionFear,
		EmotionSurprise, EmotionDisgust, EmotionNeutral,
	}
}

// #endregion emotion

// #region distribution

// Distribution maps canonical emotions to probability-like scores in [0,1].
// Scores need not sum to 1; the classifier is multi-label. A Distribution is
// computed once per message and never mutated afterwards.
type Distribution map[Emotion]float64

// Dominant returns the emotion with the highest score. Ties break in
// vocabulary order so the result is deterministic. Empty distributions
// report neutral.
func (d Distribution) Dominant() Emotion {
	best := EmotionNeutral
	bestScore := -1.0
	for _, e := range Vocabulary() {
		if s, ok := d[e]; ok && s > bestScore {
			best = e
			bestScore = s
		}
	}
	return best
}

// Max returns the highest score in the distribution, 0 when empty.
func (d Distribution) Max() float64 {
	var m float64
	for _, s := range d {
		if s > m {
			m = s
		}
	}
	return m
}

// #endregion distribution

// #region sentiment

// Polarity is the 3-way sentiment label.
type Polarity string

const (
	SentimentPositive Polarity = "positive"
	SentimentNeutral  Polarity = "neutral"
	SentimentNegative Polarity = "negative"
)

// Sentiment pairs a polarity label with the classifier's confidence in [0,1].
type Sentiment struct {
	Label Polarity
	Score float64
}

// #endregion sentiment

// #region capability

// LabelScore is one raw classifier output before label normalization.
type LabelScore struct {
	Label string
	Score float64
}

// Classifier is the injected classification capability. Implementations are
// expected to be remote or model-backed; the adapter treats every call as
// I/O-bound and honors the context deadline. Lifecycle is owned by the
// caller: construct once at process start and pass down.
type Classifier interface {
	ClassifyEmotion(ctx context.Context, text string) ([]LabelScore, error)
	ClassifySentiment(ctx context.Context, text string) (LabelScore, error)
}

// #endregion capability

package signal

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
)

// #region errors

// ErrEmptyText is returned for empty or whitespace-only input. It is the
// only error Analyze propagates; classifier failures degrade instead.
var ErrEmptyText = errors.New("empty text")

// #endregion errors

// #region result

// Result is the normalized classification output for one message.
type Result struct {
	Emotions  Distribution
	Sentiment Sentiment
	// Mixed lists the non-neutral emotions scoring above the mixed-emotion
	// threshold, highest first. Empty unless at least two qualify.
	Mixed []Emotion
	// Degraded reports that the classifier failed or timed out and the
	// emotion/sentiment fields are neutral placeholders. Callers deciding
	// crisis escalation can use this to account for lost signal.
	Degraded bool
}

// #endregion result

// #region adapter

// mixedThreshold is the minimum score for an emotion to count as co-active
// in the mixed-emotion report.
const mixedThreshold = 0.20

// Adapter wraps the injected classification capability and normalizes its
// label vocabulary. It is stateless and safe for concurrent use.
type Adapter struct {
	classifier Classifier
}

// NewAdapter wraps a classifier. The classifier's lifecycle belongs to the
// caller.
func NewAdapter(classifier Classifier) *Adapter {
	return &Adapter{classifier: classifier}
}

// Analyze classifies text into a canonical emotion distribution and
// sentiment. Empty text returns ErrEmptyText. If either classifier call
// fails, the raw error is absorbed and a degraded neutral result is
// returned so the caller's request path never crashes on a model outage.
func (a *Adapter) Analyze(ctx context.Context, text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrEmptyText
	}

	rawEmotions, err := a.classifier.ClassifyEmotion(ctx, text)
	if err != nil {
		log.Printf("[SIGNAL] emotion classify failed, degrading: %v", err)
		return degradedResult(), nil
	}

	rawSentiment, err := a.classifier.ClassifySentiment(ctx, text)
	if err != nil {
		log.Printf("[SIGNAL] sentiment classify failed, degrading: %v", err)
		return degradedResult(), nil
	}

	dist := NormalizeDistribution(rawEmotions)
	if len(dist) == 0 {
		dist = Distribution{EmotionNeutral: 1.0}
	}

	return Result{
		Emotions:  dist,
		Sentiment: NormalizeSentiment(rawSentiment),
		Mixed:     mixedEmotions(dist),
	}, nil
}

// #endregion adapter

// #region degraded

// degradedResult is the neutral placeholder returned when classification is
// unavailable.
func degradedResult() Result {
	return Result{
		Emotions:  Distribution{EmotionNeutral: 1.0},
		Sentiment: Sentiment{Label: SentimentNeutral, Score: 0.5},
		Degraded:  true,
	}
}

// #endregion degraded

// #region mixed

// mixedEmotions reports co-active emotions above the threshold, sorted by
// score descending with vocabulary order as tiebreak. A single active
// emotion is not "mixed", so fewer than two hits yields nil.
func mixedEmotions(dist Distribution) []Emotion {
	var mixed []Emotion
	for _, e := range Vocabulary() {
		if e == EmotionNeutral {
			continue
		}
		if dist[e] > mixedThreshold {
			mixed = append(mixed, e)
		}
	}
	if len(mixed) < 2 {
		return nil
	}
	sort.SliceStable(mixed, func(i, j int) bool {
		return dist[mixed[i]] > dist[mixed[j]]
	})
	return mixed
}

// #endregion mixed

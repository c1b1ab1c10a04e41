package engine

// #region imports
import (
	"context"

	"github.com/mindfulcare/risk-engine/internal/config"
	"github.com/mindfulcare/risk-engine/internal/escalate"
	"github.com/mindfulcare/risk-engine/internal/intensity"
	"github.com/mindfulcare/risk-engine/internal/needs"
	"github.com/mindfulcare/risk-engine/internal/risk"
	"github.com/mindfulcare/risk-engine/internal/signal"
)

// #endregion

// #region result

// Result is the complete assessment of one inbound message. All fields are
// computed fresh per message and never mutated; there is no timestamp or
// randomness inside, so identical input yields identical output.
type Result struct {
	Emotions      signal.Distribution
	Sentiment     signal.Sentiment
	MixedEmotions []signal.Emotion
	// Degraded reports that classification was unavailable and the emotion
	// and sentiment fields are neutral placeholders. The risk score then
	// reflects keyword terms only.
	Degraded  bool
	Intensity float64
	Risk      risk.Assessment
	Needs     []needs.Tag
	Crisis    escalate.Decision
}

// #endregion result

// #region engine

// Engine chains the full assessment pipeline: signal adapter, intensity,
// risk scoring, need classification, and crisis escalation. Every stage is
// stateless, so one Engine serves any number of conversations concurrently.
type Engine struct {
	adapter *signal.Adapter
	scorer  *risk.Scorer
	policy  *escalate.Policy
	config  config.Config
}

// New wires an engine from an injected classifier and a validated config.
func New(classifier signal.Classifier, cfg config.Config) *Engine {
	return &Engine{
		adapter: signal.NewAdapter(classifier),
		scorer:  risk.NewScorer(cfg.Risk),
		policy:  escalate.NewPolicy(cfg.Escalation),
		config:  cfg,
	}
}

// AnalyzeMessage assesses one message. history carries prior assessments
// for the same conversation, oldest first; pass nil when unavailable and
// the sustained-elevation rule simply cannot fire. The only error returned
// is signal.ErrEmptyText; classifier failures degrade within the adapter.
// The classifier call is the single blocking point, bounded by ctx.
func (e *Engine) AnalyzeMessage(ctx context.Context, text string, history []risk.Assessment) (Result, error) {
	sig, err := e.adapter.Analyze(ctx, text)
	if err != nil {
		return Result{}, err
	}

	// Intensity, risk, and needs are mutually independent; escalation
	// consumes the risk assessment.
	assessment := e.scorer.Score(text, sig.Emotions, sig.Sentiment)

	return Result{
		Emotions:      sig.Emotions,
		Sentiment:     sig.Sentiment,
		MixedEmotions: sig.Mixed,
		Degraded:      sig.Degraded,
		Intensity:     intensity.ComputeAdjusted(sig.Emotions, text, e.config.Intensity),
		Risk:          assessment,
		Needs:         needs.Classify(text, sig.Emotions, e.config.Needs),
		Crisis:        e.policy.Decide(assessment, history, sig.Degraded),
	}, nil
}

// #endregion engine

package escalate

import (
	"github.com/mindfulcare/risk-engine/internal/risk"
)

// #region priority

// Priority grades an escalation.
type Priority string

const (
	PriorityNormal   Priority = "normal"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// #endregion priority

// #region decision

// Decision is the escalation outcome for one assessed message.
type Decision struct {
	Escalate bool
	Priority Priority
	// Reason names the rule that fired, for the alert log.
	Reason string
}

// #endregion decision

// #region config

// PolicyConfig controls the escalation policy.
type PolicyConfig struct {
	// SustainedWindow is the number of consecutive assessments, including
	// the current one, that must all sit at medium or above for the
	// sustained-elevation rule to fire.
	SustainedWindow int
	// SuppressDegradedAlerts, when true, withholds escalation for
	// assessments computed from a degraded (neutral placeholder) signal.
	// Whether stale neutral data should suppress alerts or fail safe is a
	// clinical policy choice; the default keeps escalation active since
	// keyword terms still score on real text.
	SuppressDegradedAlerts bool
}

// DefaultPolicyConfig returns the standard policy: a window of three,
// no degraded suppression.
func DefaultPolicyConfig() PolicyConfig {
	return PolicyConfig{
		SustainedWindow:        3,
		SuppressDegradedAlerts: false,
	}
}

// #endregion config

// #region policy

// Policy decides whether an assessment warrants a crisis alert. Stateless
// per call: any cross-message state is reconstructed from the caller's
// history slice, never stored here, so the policy is safe for concurrent
// use across conversations.
type Policy struct {
	config PolicyConfig
}

// NewPolicy creates a policy with the given configuration.
func NewPolicy(config PolicyConfig) *Policy {
	return &Policy{config: config}
}

// Decide evaluates the current assessment against the optional recent
// history (oldest first) for the same conversation. A single spike and a
// sustained sub-threshold elevation are distinct clinical signals: the
// first two rules catch the spike, the third catches the trend. History
// shorter than the window simply cannot fire the sustained rule.
func (p *Policy) Decide(current risk.Assessment, history []risk.Assessment, degraded bool) Decision {
	if degraded && p.config.SuppressDegradedAlerts {
		return Decision{Escalate: false, Priority: PriorityNormal, Reason: "degraded signal suppressed"}
	}

	if current.RequiresImmediateAttention {
		return Decision{Escalate: true, Priority: PriorityCritical, Reason: "score requires immediate attention"}
	}
	if current.Level == risk.LevelHigh {
		return Decision{Escalate: true, Priority: PriorityHigh, Reason: "high risk level"}
	}
	if p.sustainedElevation(current, history) {
		return Decision{Escalate: true, Priority: PriorityHigh, Reason: "sustained elevation across recent messages"}
	}
	return Decision{Escalate: false, Priority: PriorityNormal, Reason: "below escalation thresholds"}
}

// #endregion policy

// #region sustained

// sustainedElevation reports whether the current assessment plus the most
// recent history entries form a full window at medium or above.
func (p *Policy) sustainedElevation(current risk.Assessment, history []risk.Assessment) bool {
	needed := p.config.SustainedWindow - 1
	if needed < 1 || len(history) < needed {
		return false
	}
	if !current.Level.AtLeastMedium() {
		return false
	}
	for _, prev := range history[len(history)-needed:] {
		if !prev.Level.AtLeastMedium() {
			return false
		}
	}
	return true
}

// #endregion sustained

package risk

// #region level

// Level buckets a continuous risk score into three tiers.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// AtLeastMedium reports whether the level is medium or high.
func (l Level) AtLeastMedium() bool {
	return l == LevelMedium || l == LevelHigh
}

// #endregion level

// #region assessment

// Assessment is the risk evaluation of a single message. Immutable once
// produced; a new message produces a new Assessment.
type Assessment struct {
	// Score is the clamped sum of all contributing risk terms, in [0,1].
	Score float64
	// Level is high iff Score > 0.7, medium iff 0.4 < Score <= 0.7,
	// low otherwise. The > / <= split at boundaries is a policy decision.
	Level Level
	// RequiresImmediateAttention is true iff Score > 0.8.
	RequiresImmediateAttention bool
}

// LevelFor maps a score onto its level tier.
func LevelFor(score float64) Level {
	switch {
	case score > 0.7:
		return LevelHigh
	case score > 0.4:
		return LevelMedium
	default:
		return LevelLow
	}
}

// NewAssessment derives the level and immediate-attention flag from a score.
func NewAssessment(score float64) Assessment {
	return Assessment{
		Score:                      score,
		Level:                      LevelFor(score),
		RequiresImmediateAttention: score > 0.8,
	}
}

// #endregion assessment

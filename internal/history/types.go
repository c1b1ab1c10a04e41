package history

import (
	"time"

	"github.com/mindfulcare/risk-engine/internal/risk"
	"github.com/mindfulcare/risk-engine/internal/signal"
)

// #region record

// Record is one persisted assessment for a conversation. The engine itself
// never writes these; the caller persists after each AnalyzeMessage so the
// stored trail can feed the sustained-elevation window and the profile
// builder on later messages.
type Record struct {
	ID              string
	ConversationID  string
	Text            string
	Score           float64
	Level           risk.Level
	Immediate       bool
	DominantEmotion signal.Emotion
	SentimentLabel  signal.Polarity
	SentimentScore  float64
	Intensity       float64
	Degraded        bool
	Escalated       bool
	CreatedAt       time.Time
}

// Assessment reconstructs the risk assessment stored in this record.
func (r Record) Assessment() risk.Assessment {
	return risk.Assessment{
		Score:                      r.Score,
		Level:                      r.Level,
		RequiresImmediateAttention: r.Immediate,
	}
}

// #endregion record

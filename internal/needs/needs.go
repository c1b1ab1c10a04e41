package needs

import (
	"strings"

	"github.com/mindfulcare/risk-engine/internal/signal"
)

// #region tags

// Tag is one therapeutic-need classification. Tags are non-exclusive; any
// subset may apply to a single message.
type Tag string

const (
	TagEmotionalRegulation Tag = "emotional_regulation"
	TagAnxietyManagement   Tag = "anxiety_management"
	TagGriefProcessing     Tag = "grief_processing"
	TagSocialSkills        Tag = "social_skills"
	TagSelfEsteemWork      Tag = "self_esteem_work"
	TagCopingTechniques    Tag = "coping_techniques"
)

// #endregion tags

// #region config

// Config holds the keyword lists and emotion thresholds driving need
// detection. Keyword lists are deployment data, not compiled-in constants.
type Config struct {
	// Anger or fear above these thresholds indicates regulation work.
	AngerThreshold float64
	FearThreshold  float64
	// Sadness above this threshold indicates coping-technique work.
	SadnessThreshold float64

	AnxietyKeywords   []string
	GriefKeywords     []string
	IsolationKeywords []string
	SelfWorthKeywords []string
}

// DefaultConfig returns the shipped English configuration.
func DefaultConfig() Config {
	return Config{
		AngerThreshold:   0.6,
		FearThreshold:    0.6,
		SadnessThreshold: 0.7,
		AnxietyKeywords: []string{
			"anxiety", "anxious", "nervous", "worried", "overwhelmed",
		},
		GriefKeywords: []string{
			"lost", "passed away", "died", "i miss", "grief", "mourning",
		},
		IsolationKeywords: []string{
			"alone", "isolated", "nobody understands me", "no friends",
		},
		SelfWorthKeywords: []string{
			"useless", "failure", "worthless", "incapable",
		},
	}
}

// #endregion config

// #region classify

// Classify derives the set of applicable need tags from text and the
// emotion distribution. All rules evaluate independently; the result is in
// a fixed rule order so identical input yields identical output. Pure
// function: no state, no side effects.
func Classify(text string, dist signal.Distribution, config Config) []Tag {
	lower := strings.ToLower(text)
	var tags []Tag

	if dist[signal.EmotionAnger] > config.AngerThreshold || dist[signal.EmotionFear] > config.FearThreshold {
		tags = append(tags, TagEmotionalRegulation)
	}
	if containsAny(lower, config.AnxietyKeywords) {
		tags = append(tags, TagAnxietyManagement)
	}
	if containsAny(lower, config.GriefKeywords) {
		tags = append(tags, TagGriefProcessing)
	}
	if containsAny(lower, config.IsolationKeywords) {
		tags = append(tags, TagSocialSkills)
	}
	if containsAny(lower, config.SelfWorthKeywords) {
		tags = append(tags, TagSelfEsteemWork)
	}
	if dist[signal.EmotionSadness] > config.SadnessThreshold {
		tags = append(tags, TagCopingTechniques)
	}

	return tags
}

// #endregion classify

// #region helpers

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// #endregion helpers

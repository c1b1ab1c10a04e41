package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mindfulcare/risk-engine/internal/escalate"
	"github.com/mindfulcare/risk-engine/internal/intensity"
	"github.com/mindfulcare/risk-engine/internal/needs"
	"github.com/mindfulcare/risk-engine/internal/risk"
)

// #region config

// Config bundles every tunable of the assessment pipeline: risk weights and
// keyword lists, need-tag keywords, intensity modifier tables, and the
// escalation policy. Keyword lists are language- and deployment-specific,
// which is why they load from a file rather than living in code.
type Config struct {
	Risk       risk.ScorerConfig
	Needs      needs.Config
	Intensity  intensity.ModifierConfig
	Escalation escalate.PolicyConfig
}

// Default returns the shipped English configuration.
func Default() Config {
	return Config{
		Risk:       risk.DefaultScorerConfig(),
		Needs:      needs.DefaultConfig(),
		Intensity:  intensity.DefaultModifierConfig(),
		Escalation: escalate.DefaultPolicyConfig(),
	}
}

// #endregion config

// #region file-format

// fileConfig is the JSON representation. Omitted sections keep defaults so
// a deployment can override only its keyword lists.
type fileConfig struct {
	Risk       *fileRiskConfig      `json:"risk"`
	Needs      *fileNeedsConfig     `json:"needs"`
	Intensity  *fileIntensityConfig `json:"intensity"`
	Escalation *fileEscalateConfig  `json:"escalation"`
}

type fileRiskConfig struct {
	CrisisKeywords      []string `json:"crisis_keywords"`
	CrisisMatchWeight   *float64 `json:"crisis_match_weight"`
	CrisisTermCap       *float64 `json:"crisis_term_cap"`
	SadnessThreshold    *float64 `json:"sadness_threshold"`
	SadnessWeight       *float64 `json:"sadness_weight"`
	FearThreshold       *float64 `json:"fear_threshold"`
	FearWeight          *float64 `json:"fear_weight"`
	AngerThreshold      *float64 `json:"anger_threshold"`
	AngerWeight         *float64 `json:"anger_weight"`
	NegativeConfidence  *float64 `json:"negative_confidence"`
	SentimentWeight     *float64 `json:"sentiment_weight"`
	HopelessnessPhrases []string `json:"hopelessness_phrases"`
	HopelessnessWeight  *float64 `json:"hopelessness_weight"`
}

type fileNeedsConfig struct {
	AngerThreshold    *float64 `json:"anger_threshold"`
	FearThreshold     *float64 `json:"fear_threshold"`
	SadnessThreshold  *float64 `json:"sadness_threshold"`
	AnxietyKeywords   []string `json:"anxiety_keywords"`
	GriefKeywords     []string `json:"grief_keywords"`
	IsolationKeywords []string `json:"isolation_keywords"`
	SelfWorthKeywords []string `json:"self_worth_keywords"`
}

type fileIntensityConfig struct {
	Intensifiers map[string]float64 `json:"intensifiers"`
	Diminishers  map[string]float64 `json:"diminishers"`
}

type fileEscalateConfig struct {
	SustainedWindow        *int  `json:"sustained_window"`
	SuppressDegradedAlerts *bool `json:"suppress_degraded_alerts"`
}

// #endregion file-format

// #region load

// Load reads a JSON config file and merges it over the defaults. The result
// is validated before being returned: a malformed config fails here, at
// startup, rather than silently degrading every message at runtime.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse merges raw JSON config over the defaults and validates the result.
// Also used by replay fixtures that embed a config section.
func Parse(data []byte) (Config, error) {
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	applyRisk(&cfg.Risk, fc.Risk)
	applyNeeds(&cfg.Needs, fc.Needs)
	applyIntensity(&cfg.Intensity, fc.Intensity)
	applyEscalation(&cfg.Escalation, fc.Escalation)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyRisk(dst *risk.ScorerConfig, src *fileRiskConfig) {
	if src == nil {
		return
	}
	if src.CrisisKeywords != nil {
		dst.CrisisKeywords = src.CrisisKeywords
	}
	if src.HopelessnessPhrases != nil {
		dst.HopelessnessPhrases = src.HopelessnessPhrases
	}
	setFloat(&dst.CrisisMatchWeight, src.CrisisMatchWeight)
	setFloat(&dst.CrisisTermCap, src.CrisisTermCap)
	setFloat(&dst.SadnessThreshold, src.SadnessThreshold)
	setFloat(&dst.SadnessWeight, src.SadnessWeight)
	setFloat(&dst.FearThreshold, src.FearThreshold)
	setFloat(&dst.FearWeight, src.FearWeight)
	setFloat(&dst.AngerThreshold, src.AngerThreshold)
	setFloat(&dst.AngerWeight, src.AngerWeight)
	setFloat(&dst.NegativeConfidence, src.NegativeConfidence)
	setFloat(&dst.SentimentWeight, src.SentimentWeight)
	setFloat(&dst.HopelessnessWeight, src.HopelessnessWeight)
}

func applyNeeds(dst *needs.Config, src *fileNeedsConfig) {
	if src == nil {
		return
	}
	setFloat(&dst.AngerThreshold, src.AngerThreshold)
	setFloat(&dst.FearThreshold, src.FearThreshold)
	setFloat(&dst.SadnessThreshold, src.SadnessThreshold)
	if src.AnxietyKeywords != nil {
		dst.AnxietyKeywords = src.AnxietyKeywords
	}
	if src.GriefKeywords != nil {
		dst.GriefKeywords = src.GriefKeywords
	}
	if src.IsolationKeywords != nil {
		dst.IsolationKeywords = src.IsolationKeywords
	}
	if src.SelfWorthKeywords != nil {
		dst.SelfWorthKeywords = src.SelfWorthKeywords
	}
}

func applyIntensity(dst *intensity.ModifierConfig, src *fileIntensityConfig) {
	if src == nil {
		return
	}
	if src.Intensifiers != nil {
		dst.Intensifiers = src.Intensifiers
	}
	if src.Diminishers != nil {
		dst.Diminishers = src.Diminishers
	}
}

func applyEscalation(dst *escalate.PolicyConfig, src *fileEscalateConfig) {
	if src == nil {
		return
	}
	if src.SustainedWindow != nil {
		dst.SustainedWindow = *src.SustainedWindow
	}
	if src.SuppressDegradedAlerts != nil {
		dst.SuppressDegradedAlerts = *src.SuppressDegradedAlerts
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

// #endregion load

// #region validate

// Validate checks configuration invariants. Empty keyword lists are legal
// (the term evaluates to zero) but empty entries, out-of-range weights, and
// a degenerate escalation window are not.
func Validate(cfg Config) error {
	lists := map[string][]string{
		"crisis_keywords":      cfg.Risk.CrisisKeywords,
		"hopelessness_phrases": cfg.Risk.HopelessnessPhrases,
		"anxiety_keywords":     cfg.Needs.AnxietyKeywords,
		"grief_keywords":       cfg.Needs.GriefKeywords,
		"isolation_keywords":   cfg.Needs.IsolationKeywords,
		"self_worth_keywords":  cfg.Needs.SelfWorthKeywords,
	}
	for name, list := range lists {
		for i, entry := range list {
			if strings.TrimSpace(entry) == "" {
				return fmt.Errorf("%s[%d]: empty keyword", name, i)
			}
		}
	}

	weights := map[string]float64{
		"crisis_match_weight": cfg.Risk.CrisisMatchWeight,
		"crisis_term_cap":     cfg.Risk.CrisisTermCap,
		"sadness_weight":      cfg.Risk.SadnessWeight,
		"fear_weight":         cfg.Risk.FearWeight,
		"anger_weight":        cfg.Risk.AngerWeight,
		"sentiment_weight":    cfg.Risk.SentimentWeight,
		"hopelessness_weight": cfg.Risk.HopelessnessWeight,
	}
	for name, w := range weights {
		if w < 0 || w > 1 {
			return fmt.Errorf("%s: weight %v outside [0,1]", name, w)
		}
	}

	thresholds := map[string]float64{
		"risk sadness_threshold":  cfg.Risk.SadnessThreshold,
		"risk fear_threshold":     cfg.Risk.FearThreshold,
		"risk anger_threshold":    cfg.Risk.AngerThreshold,
		"negative_confidence":     cfg.Risk.NegativeConfidence,
		"needs anger_threshold":   cfg.Needs.AngerThreshold,
		"needs fear_threshold":    cfg.Needs.FearThreshold,
		"needs sadness_threshold": cfg.Needs.SadnessThreshold,
	}
	for name, v := range thresholds {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s: threshold %v outside [0,1]", name, v)
		}
	}

	for word, factor := range cfg.Intensity.Intensifiers {
		if strings.TrimSpace(word) == "" || factor <= 0 {
			return fmt.Errorf("intensifiers[%q]: invalid entry", word)
		}
	}
	for word, factor := range cfg.Intensity.Diminishers {
		if strings.TrimSpace(word) == "" || factor <= 0 {
			return fmt.Errorf("diminishers[%q]: invalid entry", word)
		}
	}

	if cfg.Escalation.SustainedWindow < 2 {
		return fmt.Errorf("sustained_window: %d below minimum of 2", cfg.Escalation.SustainedWindow)
	}
	return nil
}

// #endregion validate

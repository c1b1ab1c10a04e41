package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/mindfulcare/risk-engine/internal/classifier"
	"github.com/mindfulcare/risk-engine/internal/config"
	"github.com/mindfulcare/risk-engine/internal/engine"
	"github.com/mindfulcare/risk-engine/internal/history"
	"github.com/mindfulcare/risk-engine/internal/logging"
	"github.com/mindfulcare/risk-engine/internal/profile"
	"github.com/mindfulcare/risk-engine/internal/signal"
)

// #region main
func main() {
	dbPath := envOr("RISK_DB", "risk_engine.db")
	configPath := os.Getenv("RISK_CONFIG")
	conversationID := envOr("RISK_CONVERSATION", "repl")
	backend := envOr("RISK_CLASSIFIER", "lexicon")

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	var cls signal.Classifier
	switch backend {
	case "openai":
		cls = classifier.NewOpenAIClassifier()
	case "lexicon":
		cls = classifier.NewLexiconClassifier()
	default:
		log.Fatalf("unknown classifier backend %q", backend)
	}

	eng := engine.New(cls, cfg)

	fmt.Println("Risk & Needs Assessment Engine ready.")
	fmt.Printf("  DB: %s | Classifier: %s | Conversation: %s\n", dbPath, backend, conversationID)
	fmt.Println("Type a message (or 'quit' to exit):")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "quit" || text == "exit" {
			break
		}

		// Feed the sustained-elevation window from the stored trail
		assessments, err := store.RecentAssessments(conversationID, cfg.Escalation.SustainedWindow-1)
		if err != nil {
			log.Printf("error loading history: %v", err)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		res, err := eng.AnalyzeMessage(ctx, text, assessments)
		cancel()
		if err != nil {
			if errors.Is(err, signal.ErrEmptyText) {
				continue
			}
			log.Printf("analyze error: %v", err)
			continue
		}

		printResult(res)

		rec, err := store.Save(history.Record{
			ConversationID:  conversationID,
			Text:            text,
			Score:           res.Risk.Score,
			Level:           res.Risk.Level,
			Immediate:       res.Risk.RequiresImmediateAttention,
			DominantEmotion: res.Emotions.Dominant(),
			SentimentLabel:  res.Sentiment.Label,
			SentimentScore:  res.Sentiment.Score,
			Intensity:       res.Intensity,
			Degraded:        res.Degraded,
			Escalated:       res.Crisis.Escalate,
		})
		if err != nil {
			log.Printf("save error: %v", err)
			continue
		}

		if res.Crisis.Escalate {
			log.Printf("[ALERT] conversation=%s priority=%s score=%.2f reason=%s",
				conversationID, res.Crisis.Priority, res.Risk.Score, res.Crisis.Reason)
			err = logging.LogAlert(store.DB(), logging.AlertEntry{
				AssessmentID:   rec.ID,
				ConversationID: conversationID,
				Score:          res.Risk.Score,
				Level:          string(res.Risk.Level),
				Priority:       string(res.Crisis.Priority),
				Reason:         res.Crisis.Reason,
			})
			if err != nil {
				log.Printf("alert log error: %v", err)
			}
		}

		recent, err := store.Recent(conversationID, 20)
		if err == nil && len(recent) >= 2 {
			sum := profile.Build(recent)
			fmt.Printf("[profile] dominant=%s trend=%s avg_intensity=%.1f alerts=%d\n",
				sum.DominantEmotion, sum.Trend, sum.AverageIntensity, sum.AlertCount)
			if profile.EscalatingIntensity(recent[:len(recent)-1], res.Intensity) {
				fmt.Println("[profile] intensity escalating above recent average")
			}
		}
	}
}

// #endregion main

// #region print

func printResult(res engine.Result) {
	fmt.Printf("\nemotion=%s sentiment=%s(%.2f) intensity=%.1f\n",
		res.Emotions.Dominant(), res.Sentiment.Label, res.Sentiment.Score, res.Intensity)
	fmt.Printf("risk: score=%.2f level=%s immediate=%v degraded=%v\n",
		res.Risk.Score, res.Risk.Level, res.Risk.RequiresImmediateAttention, res.Degraded)
	if len(res.Needs) > 0 {
		parts := make([]string, len(res.Needs))
		for i, tag := range res.Needs {
			parts[i] = string(tag)
		}
		fmt.Printf("needs: %s\n", strings.Join(parts, ", "))
	}
	if len(res.MixedEmotions) > 0 {
		parts := make([]string, len(res.MixedEmotions))
		for i, e := range res.MixedEmotions {
			parts[i] = string(e)
		}
		fmt.Printf("mixed: %s\n", strings.Join(parts, ", "))
	}
	fmt.Printf("crisis: escalate=%v priority=%s\n\n", res.Crisis.Escalate, res.Crisis.Priority)
}

// #endregion print

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers

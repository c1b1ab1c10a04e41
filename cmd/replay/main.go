package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mindfulcare/risk-engine/internal/config"
	"github.com/mindfulcare/risk-engine/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	configPath := flag.String("config", "", "config JSON overriding the fixture's embedded config")
	verbose := flag.Bool("v", false, "print every turn, not just mismatches")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [--config path/to/config.json] [-v]")
		os.Exit(2)
	}

	os.Exit(run(*fixturePath, *configPath, *verbose))
}

// #endregion main

// #region run

func run(fixturePath, configPath string, verbose bool) int {
	fx, cfg, err := replay.LoadFixture(fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			return 2
		}
	}

	if fx.Description != "" {
		fmt.Printf("replaying: %s\n", fx.Description)
	}

	results, summary := replay.Replay(fx, cfg)
	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Printf("%-12s ERROR %v\n", r.TurnID, r.Err)
		case r.Mismatch != "":
			fmt.Printf("%-12s MISMATCH %s\n", r.TurnID, r.Mismatch)
		case verbose:
			fmt.Printf("%-12s ok level=%s score=%.2f escalate=%v priority=%s\n",
				r.TurnID, r.Assessment.Risk.Level, r.Assessment.Risk.Score,
				r.Assessment.Crisis.Escalate, r.Assessment.Crisis.Priority)
		}
	}

	fmt.Printf("\n%d turns: %d matched, %d mismatched, %d errored\n",
		summary.TotalTurns, summary.Matched, summary.Mismatched, summary.Errored)

	if summary.Mismatched > 0 || summary.Errored > 0 {
		return 1
	}
	return 0
}

// #endregion run

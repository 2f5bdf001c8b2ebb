package main

// Compare two risk factor documents from the command line:
//   go run ./cmd/riskdiff -current cur.txt -prior prior.txt -current-year 2025 -prior-year 2024

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/Capital-W-Holdings/IntelligenceDB-sub000/internal/riskdiff"
)

func main() {
	currentPath := flag.String("current", "", "path to the current-period risk factors text")
	priorPath := flag.String("prior", "", "path to the prior-period risk factors text")
	currentYear := flag.Int("current-year", 0, "fiscal year of the current document")
	priorYear := flag.Int("prior-year", 0, "fiscal year of the prior document")
	flag.Parse()

	if *currentPath == "" || *priorPath == "" {
		fmt.Fprintln(os.Stderr, "both -current and -prior are required")
		flag.Usage()
		os.Exit(2)
	}

	current, err := os.ReadFile(*currentPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read current: %v\n", err)
		os.Exit(1)
	}
	prior, err := os.ReadFile(*priorPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read prior: %v\n", err)
		os.Exit(1)
	}

	report := riskdiff.Compare(string(current), string(prior), *currentYear, *priorYear, riskdiff.DefaultTunables())

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode report: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

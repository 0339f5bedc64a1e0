package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"docqa/config"
	"docqa/internal/adapter/source"
	"docqa/internal/domain"
	"docqa/internal/usecase"
)

func main() {
	defaults := config.DefaultConfig()

	file := flag.String("f", "", "File with one document per line (default: sample documents)")
	language := flag.String("l", defaults.Analyzer.Language, "Stemming language")
	threshold := flag.Float64("threshold", defaults.Rank.ConfidenceThreshold, "Confidence threshold")
	verbose := flag.Bool("v", false, "Log every analysis")
	flag.Parse()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	log := logger.WithField("component", "benchmark")

	docs := usecase.DocumentsFromStrings(config.DefaultDocuments())
	if *file != "" {
		src, err := source.NewFileSource(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening documents: %v\n", err)
			os.Exit(1)
		}
		docs, err = src.Load(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading documents: %v\n", err)
			os.Exit(1)
		}
	}

	questions := flag.Args()
	if len(questions) == 0 {
		questions = defaults.Suggestions
	}

	fmt.Println("TF-IDF RANKING BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Documents: %d\n", len(docs))
	fmt.Printf("Language:  %s\n", *language)
	fmt.Printf("Questions: %d\n\n", len(questions))

	analyzeUC := usecase.NewAnalyzeUseCase(*language, *threshold, log)

	results := make([]*domain.Analysis, 0, len(questions))
	for i, q := range questions {
		analysis, err := analyzeUC.Analyze(docs, q)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Analysis error for %q: %v\n", q, err)
			os.Exit(1)
		}
		results = append(results, analysis)

		fmt.Printf("%d. [%s %.3f] %s\n", i+1, rating(analysis.BestScore), analysis.BestScore, q)
		fmt.Printf("   -> Doc %d: %s\n\n", analysis.BestIndex+1, analysis.BestDocument.Text)
	}

	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("QUALITY METRICS:\n")
	fmt.Printf("  Average similarity: %.3f\n", average(results))
	fmt.Printf("  Confident answers:  %d/%d\n", confident(results), len(results))
	fmt.Printf("  Unmatched:          %d\n", unmatched(results))
}

func rating(score float64) string {
	switch {
	case score > 0.7:
		return "HIGH"
	case score > 0.5:
		return "GOOD"
	case score > 0.3:
		return "OK"
	}
	return "LOW"
}

func average(results []*domain.Analysis) float64 {
	if len(results) == 0 {
		return 0
	}
	total := 0.0
	for _, r := range results {
		total += r.BestScore
	}
	return total / float64(len(results))
}

func confident(results []*domain.Analysis) int {
	n := 0
	for _, r := range results {
		if r.Confident {
			n++
		}
	}
	return n
}

func unmatched(results []*domain.Analysis) int {
	n := 0
	for _, r := range results {
		if r.NoMatch() {
			n++
		}
	}
	return n
}

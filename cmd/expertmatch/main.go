// Copyright 2026 Scholarch Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/scholarch/expertmatch"
	"github.com/scholarch/expertmatch/ai"
	"github.com/scholarch/expertmatch/core"
	"github.com/scholarch/expertmatch/ingest"
	"github.com/scholarch/expertmatch/match"
)

const timePrecision = time.Millisecond

func main() {
	app := &cli.App{
		Name:  "expertmatch",
		Usage: "Semantic expert matching and team formation",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"EXPERTMATCH_LOG_LEVEL"},
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:      "seed",
				Usage:     "Load an expert corpus JSON file into the database",
				ArgsUsage: "<corpus.json>",
				Action:    seedCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of records per storage write",
						Value: 64,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Worker pool size for concurrent writes",
					},
				},
			},
			{
				Name:      "analyze",
				Usage:     "Analyze a problem statement and propose an expert team",
				ArgsUsage: "<problem statement>",
				Action:    analyzeCommand,
				Flags: append(aiFlags(),
					dbFlag(),
					&cli.Float64Flag{
						Name:  "threshold",
						Usage: "Minimum tag similarity for a match",
						Value: match.DefaultThreshold,
					},
					&cli.IntFlag{
						Name:  "top",
						Usage: "Number of individually ranked experts to show",
						Value: match.DefaultTopN,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Emit the full report as JSON",
					},
				),
			},
			{
				Name:      "match",
				Usage:     "Match experts against explicit tags",
				ArgsUsage: "<tag>[:weight] ...",
				Action:    matchCommand,
				Flags: append(aiFlags(),
					dbFlag(),
					&cli.Float64Flag{
						Name:  "threshold",
						Usage: "Minimum tag similarity for a match",
						Value: match.DefaultThreshold,
					},
					&cli.IntFlag{
						Name:  "top",
						Usage: "Number of ranked experts to show",
						Value: match.DefaultTopN,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Emit results as JSON",
					},
				),
			},
			{
				Name:   "tags",
				Usage:  "List every distinct tag in the expert index",
				Action: tagsCommand,
				Flags:  append(aiFlags(), dbFlag()),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Usage:    "Path to BadgerDB database directory",
		Required: true,
		EnvVars:  []string{"EXPERTMATCH_DB"},
	}
}

func aiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "embedding-host",
			Usage:   "Embedding service host URL",
			Value:   "http://localhost:11434/v1",
			EnvVars: []string{"EXPERTMATCH_EMBEDDING_HOST"},
		},
		&cli.StringFlag{
			Name:    "embedding-model",
			Usage:   "Embedding model name",
			Value:   "embeddinggemma",
			EnvVars: []string{"EXPERTMATCH_EMBEDDING_MODEL"},
		},
		&cli.StringFlag{
			Name:    "extractor-host",
			Usage:   "Extractor service host URL (defaults to embedding-host)",
			EnvVars: []string{"EXPERTMATCH_EXTRACTOR_HOST"},
		},
		&cli.StringFlag{
			Name:    "extractor-model",
			Usage:   "Extractor model name",
			Value:   "qwen2.5:3b",
			EnvVars: []string{"EXPERTMATCH_EXTRACTOR_MODEL"},
		},
	}
}

func aiConfigFromFlags(c *cli.Context) *ai.Config {
	extractorHost := c.String("extractor-host")
	if extractorHost == "" {
		extractorHost = c.String("embedding-host")
	}
	return ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithExtractorHost(extractorHost),
		ai.WithExtractorModel(c.String("extractor-model")),
	)
}

func seedCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one corpus file argument")
	}
	corpusPath := c.Args().First()

	engine, err := expertmatch.NewEngine(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer engine.Close()

	loaderOpts := []ingest.Option{ingest.WithBatchSize(c.Int("batch-size"))}
	if c.IsSet("workers") {
		loaderOpts = append(loaderOpts, ingest.WithPoolSize(c.Int("workers")))
	}

	loader, err := engine.NewLoader(loaderOpts...)
	if err != nil {
		return fmt.Errorf("failed to create loader: %w", err)
	}
	defer loader.Close()

	summary, err := loader.LoadFile(context.Background(), corpusPath)
	if err != nil {
		return fmt.Errorf("corpus load failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Loaded %d records, skipped %d\n", summary.Loaded, summary.Skipped)
	return nil
}

func analyzeCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("expected a problem statement argument")
	}
	problem := strings.Join(c.Args().Slice(), " ")

	ctx := context.Background()
	matcher, engine, err := openMatcher(ctx, c)
	if err != nil {
		return err
	}
	defer engine.Close()

	report, err := matcher.Analyze(ctx, problem)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if c.Bool("json") {
		return json.NewEncoder(os.Stdout).Encode(report)
	}
	printReport(report)
	return nil
}

func matchCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("expected at least one tag argument")
	}

	tags, weights, err := parseTagArgs(c.Args().Slice())
	if err != nil {
		return err
	}

	ctx := context.Background()
	matcher, engine, err := openMatcher(ctx, c)
	if err != nil {
		return err
	}
	defer engine.Close()

	results, err := matcher.Match(ctx, tags, weights, nil)
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}
	if len(results) > c.Int("top") {
		results = results[:c.Int("top")]
	}

	if c.Bool("json") {
		return json.NewEncoder(os.Stdout).Encode(results)
	}
	printResults(results)
	return nil
}

func tagsCommand(c *cli.Context) error {
	ctx := context.Background()
	_, engine, err := openMatcher(ctx, c)
	if err != nil {
		return err
	}
	defer engine.Close()

	for _, tag := range engine.Index().AllTags() {
		fmt.Println(tag)
	}
	return nil
}

// openMatcher opens the engine, builds the index from stored records and
// returns a matcher ready to serve queries. The caller closes the engine.
func openMatcher(ctx context.Context, c *cli.Context) (*match.Matcher, *expertmatch.Engine, error) {
	engine, err := expertmatch.NewEngine(c.String("db"),
		expertmatch.WithAIConfig(aiConfigFromFlags(c)))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := engine.RebuildIndex(ctx); err != nil {
		engine.Close()
		return nil, nil, fmt.Errorf("failed to build expert index: %w", err)
	}

	var opts []match.Option
	if c.IsSet("threshold") {
		opts = append(opts, match.WithThreshold(c.Float64("threshold")))
	}
	if c.IsSet("top") {
		opts = append(opts, match.WithTopN(c.Int("top")))
	}

	matcher, err := engine.NewMatcher(opts...)
	if err != nil {
		engine.Close()
		return nil, nil, err
	}
	return matcher, engine, nil
}

// parseTagArgs splits "tag" or "tag:weight" arguments into parallel
// tag and weight slices. Tags without a weight get 1.0.
func parseTagArgs(args []string) ([]string, []float64, error) {
	tags := make([]string, 0, len(args))
	weights := make([]float64, 0, len(args))
	for _, arg := range args {
		tag, weight := arg, 1.0
		if idx := strings.LastIndex(arg, ":"); idx > 0 {
			parsed, err := strconv.ParseFloat(arg[idx+1:], 64)
			if err == nil {
				tag = arg[:idx]
				weight = parsed
			}
		}
		tags = append(tags, tag)
		weights = append(weights, weight)
	}
	return tags, weights, nil
}

func printReport(report *core.Report) {
	fmt.Printf("Tags: %s\n", strings.Join(report.Tags, ", "))
	if report.Explanation != "" {
		fmt.Printf("Why: %s\n", report.Explanation)
	}
	if report.GroupingMessage != "" {
		fmt.Println(report.GroupingMessage)
	}
	fmt.Println()

	fmt.Println("Proposed team:")
	for _, member := range report.Team.Members {
		fmt.Printf("  %s (%s) covering: %s\n",
			member.Expert.Name, member.Expert.Department, strings.Join(member.Tags, ", "))
	}
	if len(report.Team.NotFound) > 0 {
		fmt.Printf("  no expert found for: %s\n", strings.Join(report.Team.NotFound, ", "))
	}
	fmt.Println()

	fmt.Println("Top experts:")
	printResults(report.Individual)

	fmt.Printf("\nTiming: extract %s, match %s, total %s\n",
		report.Timing.Extract.Round(timePrecision),
		report.Timing.Match.Round(timePrecision),
		report.Timing.Total.Round(timePrecision))
}

func printResults(results []*core.ExpertResult) {
	for i, res := range results {
		fmt.Printf("  %2d. %-30s %-25s rank %.2f  semantic %.2f  match %.2f%%\n",
			i+1, res.Expert.Name, res.Expert.Department,
			res.RankScore, res.Semantic, res.WeightedMatch)
		if len(res.MatchingTags) > 0 {
			fmt.Printf("      tags: %s\n", strings.Join(res.MatchingTags, ", "))
		}
	}
}

func setup(c *cli.Context) error {
	// Load .env if present; flags and real env take precedence
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}

	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

// Copyright 2025 Poiesic Systems
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
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/typeahead"
	"github.com/poiesic/typeahead/core"
	"github.com/poiesic/typeahead/ingestion"
	"github.com/poiesic/typeahead/match"
	"github.com/poiesic/typeahead/search"
)

func main() {
	app := &cli.App{
		Name:  "typeahead",
		Usage: "Typeahead candidate catalog and search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Usage:  "Load candidates from a JSON file into the catalog",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Path to a JSON array of candidates",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of candidates to write in each batch",
						Value: 64,
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Run one query against the catalog",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "algorithm",
						Aliases: []string{"a"},
						Usage:   "Match algorithm (exact, fuzzy, semantic, hybrid)",
						Value:   string(match.AlgorithmHybrid),
					},
					&cli.Float64Flag{
						Name:  "threshold",
						Usage: "Fuzzy similarity threshold in [0,1]",
						Value: search.DefaultFuzzyThreshold,
					},
					&cli.IntFlag{
						Name:    "max",
						Aliases: []string{"m"},
						Usage:   "Maximum number of results",
						Value:   search.DefaultMaxResults,
					},
					&cli.IntFlag{
						Name:  "min-length",
						Usage: "Minimum query length before fallback mode",
						Value: search.DefaultMinQueryLength,
					},
					&cli.StringFlag{
						Name:  "group-by",
						Usage: "Group results by candidate category",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	store, err := typeahead.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	input, err := os.Open(c.String("input"))
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer input.Close()

	loader, err := store.NewLoader(ingestion.WithBatchSize(c.Int("batch-size")))
	if err != nil {
		return fmt.Errorf("failed to create loader: %w", err)
	}
	defer loader.Release()

	stats, err := loader.LoadJSON(ctx, input)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Loaded %d candidates (%d skipped)\n", stats.Loaded, stats.Skipped)
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.Join(c.Args().Slice(), " ")

	store, err := typeahead.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	cfg := search.DefaultConfig()
	cfg.Algorithm = match.ParseAlgorithm(c.String("algorithm"))
	cfg.FuzzyThreshold = c.Float64("threshold")
	cfg.MaxResults = c.Int("max")
	cfg.MinQueryLength = c.Int("min-length")

	var opts []search.Option
	grouped := c.String("group-by") == "category"
	if grouped {
		opts = append(opts, search.WithGroupFunc(groupByCategory))
	}

	engine, err := store.NewEngine(ctx, cfg, opts...)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	if grouped {
		for _, group := range engine.SearchGrouped(ctx, query) {
			fmt.Printf("%s:\n", group.Key)
			for _, result := range group.Results {
				printResult("  ", result)
			}
		}
		return nil
	}

	results := engine.Search(ctx, query)
	fmt.Printf("Found %d hits\n", len(results))
	for _, result := range results {
		printResult("", result)
	}
	return nil
}

func printResult(indent string, result search.Result) {
	c := result.Candidate
	fmt.Printf("%s%s (%s)[%0.1f]\n", indent, c.Label, c.ID, c.Popularity)
}

func groupByCategory(c core.Candidate) string {
	return c.Category
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
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

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

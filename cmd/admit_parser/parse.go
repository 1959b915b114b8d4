package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/admissions-parser/internal/config"
	"github.com/jonathan/admissions-parser/internal/db"
	"github.com/jonathan/admissions-parser/internal/fallback"
	"github.com/jonathan/admissions-parser/internal/observability"
	"github.com/jonathan/admissions-parser/internal/pipeline"
	"github.com/jonathan/admissions-parser/internal/types"
)

var (
	flagConfig         string
	flagEnableFallback bool
	flagFallbackURL    string
	flagAPIKey         string
	flagDatabaseURL    string
	flagVerbose        bool
	flagJSON           bool
	flagMaxConcurrent  int
)

const defaultMaxConcurrent = 4

var parseCmd = &cobra.Command{
	Use:   "parse <file>...",
	Short: "Parse one or more application text files",
	Long:  "Parse runs the extraction pipeline over plain-text application documents and prints the extracted fields, highlight notes, and diagnostics.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	parseCmd.Flags().BoolVar(&flagEnableFallback, "fallback", false, "Allow one AI extraction call when critical fields are missing")
	parseCmd.Flags().StringVar(&flagFallbackURL, "fallback-url", "", "AI extraction endpoint URL")
	parseCmd.Flags().StringVar(&flagAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	parseCmd.Flags().StringVar(&flagDatabaseURL, "database-url", "", "PostgreSQL URL for run persistence (defaults to DATABASE_URL)")
	parseCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print diagnostics for every phase")
	parseCmd.Flags().BoolVar(&flagJSON, "json", false, "Emit results as JSON")
	parseCmd.Flags().IntVar(&flagMaxConcurrent, "max-concurrent", 0, "Parallel document limit")
	rootCmd.AddCommand(parseCmd)
}

// resolveConfig merges config file values under CLI flags and environment.
func resolveConfig() (config.Config, error) {
	cfg := config.Config{
		EnableFallback: flagEnableFallback,
		FallbackURL:    flagFallbackURL,
		APIKey:         flagAPIKey,
		DatabaseURL:    flagDatabaseURL,
		Verbose:        flagVerbose,
		JSONOutput:     flagJSON,
		MaxConcurrent:  flagMaxConcurrent,
	}

	if flagConfig != "" {
		fileCfg, err := config.LoadConfig(flagConfig)
		if err != nil {
			return cfg, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.MaxConcurrent == 0 {
		cfg.MaxConcurrent = defaultMaxConcurrent
	}

	return cfg, cfg.Validate()
}

// buildExtractor picks the fallback provider: the HTTP endpoint when a URL is
// configured, otherwise direct Gemini extraction.
func buildExtractor(cfg config.Config) (fallback.Extractor, error) {
	if !cfg.EnableFallback {
		return nil, nil
	}
	if cfg.FallbackURL != "" {
		return fallback.NewHTTPExtractor(fallback.HTTPConfig{URL: cfg.FallbackURL}, nil)
	}
	return fallback.NewGeminiExtractor(cfg.APIKey)
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	extractor, err := buildExtractor(cfg)
	if err != nil {
		return err
	}

	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to connect to database: %v\n", err)
			fmt.Fprintf(os.Stderr, "Continuing without persistence...\n")
		} else {
			defer database.Close()
		}
	}

	results := make([]*types.ParsedApplicationData, len(args))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.MaxConcurrent)
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			results[i] = pipeline.Parse(gctx, string(raw), pipeline.Options{
				EnableFallback: cfg.EnableFallback,
				Extractor:      extractor,
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Output and persistence stay in input order regardless of completion order.
	for i, path := range args {
		if err := emitResult(ctx, cfg, database, path, results[i]); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	return nil
}

func emitResult(ctx context.Context, cfg config.Config, database *db.DB, path string, data *types.ParsedApplicationData) error {
	if cfg.JSONOutput {
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result for %s: %w", path, err)
		}
		fmt.Println(string(out))
	} else {
		fmt.Printf("=== %s ===\n", path)
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintUpdates(data)
		printer.PrintMisc(data)
		if cfg.Verbose {
			printer.PrintDiagnostics(data)
		}
	}

	if database == nil {
		return nil
	}
	runID, err := database.CreateRun(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to record run for %s: %w", path, err)
	}
	if err := database.SaveResult(ctx, runID, data); err != nil {
		_ = database.CompleteRun(ctx, runID, "failed")
		return fmt.Errorf("failed to save result for %s: %w", path, err)
	}
	return database.CompleteRun(ctx, runID, "completed")
}

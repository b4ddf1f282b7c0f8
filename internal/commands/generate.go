package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/journalgen/internal/config"
	"github.com/cleared-dev/journalgen/internal/generator"
	"github.com/cleared-dev/journalgen/internal/journal"
	"github.com/cleared-dev/journalgen/internal/logger"
	"github.com/cleared-dev/journalgen/internal/manifest"
)

// now is replaced in tests.
var now = time.Now

const generateExample = `  # 1000 entries with 10% errors at the end
  journalgen generate --entries 1000 --error-percent 10

  # 1000 entries with 5% errors shuffled throughout
  journalgen generate --entries 1000 --error-percent 5 --shuffle

  # Only unbalanced errors (10% of 1000 = 100 unbalanced entries)
  journalgen generate --entries 1000 --error-percent 10 --error-type unbalanced

  # 100% errors
  journalgen generate --preset all-errors`

type generateFlags struct {
	preset         string
	configPath     string
	entries        int
	output         string
	errorPercent   float64
	errorType      string
	accountingDate string
	shuffle        bool
	seed           uint64
	manifest       string
}

func newGenerateCommand() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Generate a bulk journal CSV with a share of invalid entries",
		Example: generateExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			return runGenerate(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.preset, "preset", config.PresetMixed, "starting preset ("+strings.Join(config.PresetNames(), ", ")+")")
	flags.StringVar(&f.configPath, "config", "", "YAML config file applied on top of the preset")
	flags.IntVar(&f.entries, "entries", 1000, "total number of entries")
	flags.StringVar(&f.output, "output", "error_scenarios.csv", "output file path")
	flags.Float64Var(&f.errorPercent, "error-percent", 10, "percentage of entries with errors (0-100)")
	flags.StringVar(&f.errorType, "error-type", generator.Mixed, "error type or 'mixed' for all ("+strings.Join(config.ErrorTypes(), ", ")+")")
	flags.StringVar(&f.accountingDate, "date", "", "accounting date (YYYY-MM-DD), defaults to today")
	flags.BoolVar(&f.shuffle, "shuffle", false, "shuffle errors throughout (default: errors at end)")
	flags.Uint64Var(&f.seed, "seed", 0, "random seed for reproducible output (0 picks one)")
	flags.StringVar(&f.manifest, "manifest", "", "also write a per-entry manifest CSV to this path")

	return cmd
}

// resolveConfig layers preset, config file, environment and explicitly set flags.
func resolveConfig(cmd *cobra.Command, f generateFlags) (*config.Config, error) {
	cfg, err := config.Preset(f.preset)
	if err != nil {
		return nil, err
	}
	if f.configPath != "" {
		if err := config.Merge(f.configPath, cfg); err != nil {
			return nil, err
		}
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("entries") {
		cfg.Entries = f.entries
	}
	if flags.Changed("output") {
		cfg.Output = f.output
	}
	if flags.Changed("error-percent") {
		cfg.ErrorPercent = f.errorPercent
	}
	if flags.Changed("error-type") {
		cfg.ErrorType = f.errorType
	}
	if flags.Changed("date") {
		cfg.AccountingDate = f.accountingDate
	}
	if flags.Changed("shuffle") {
		cfg.Shuffle = f.shuffle
	}
	if flags.Changed("seed") {
		cfg.Seed = f.seed
	}
	if flags.Changed("manifest") {
		cfg.Manifest = f.manifest
	}
	return cfg, nil
}

func runGenerate(out, errOut io.Writer, cfg *config.Config) error {
	// Everything is validated before the output file is created.
	if err := cfg.Validate(); err != nil {
		return err
	}
	categories, err := cfg.Categories()
	if err != nil {
		return err
	}
	accountingDate, err := cfg.Date()
	if err != nil {
		return err
	}

	today := now()
	if accountingDate.IsZero() {
		accountingDate = generator.Day(today)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(today.UnixNano())
	}

	log := logger.New(cfg.Log, errOut)

	errorCount := generator.ErrorCount(cfg.Entries, cfg.ErrorPercent)
	fmt.Fprintf(out, "Generating %d total entries (%d rows)...\n", cfg.Entries, cfg.Entries*2)
	fmt.Fprintf(out, "  Valid entries: %d (%.1f%%)\n", cfg.Entries-errorCount, 100-cfg.ErrorPercent)
	fmt.Fprintf(out, "  Error entries: %d (%.1f%%)\n", errorCount, cfg.ErrorPercent)
	fmt.Fprintf(out, "  Error types: %v\n", categories)
	fmt.Fprintf(out, "  Accounting date: %s\n", accountingDate.Format(journal.DateFormat))
	fmt.Fprintf(out, "  Shuffle mode: %t\n", cfg.Shuffle)
	fmt.Fprintf(out, "  Seed: %d\n", seed)

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer f.Close()

	log.Info().
		Str("output", cfg.Output).
		Int("entries", cfg.Entries).
		Uint64("seed", seed).
		Msg("generating journal")

	g := generator.New(generator.Params{
		Rand:     generator.NewRand(seed),
		Defaults: &cfg.Fields,
		Today:    today,
	})
	res, err := g.Write(f, generator.Options{
		Entries:        cfg.Entries,
		ErrorPercent:   cfg.ErrorPercent,
		Categories:     categories,
		AccountingDate: accountingDate,
		Shuffle:        cfg.Shuffle,
		Progress: func(done int) {
			log.Info().Int("done", done).Int("total", cfg.Entries).Msg("progress")
		},
	})
	if err != nil {
		return fmt.Errorf("generating %s: %w", cfg.Output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	if cfg.Manifest != "" {
		if err := manifest.Write(cfg.Manifest, manifest.FromPlan(res.Plan)); err != nil {
			return err
		}
		log.Info().Str("manifest", cfg.Manifest).Msg("wrote manifest")
	}

	info, err := os.Stat(cfg.Output)
	if err != nil {
		return fmt.Errorf("stat output: %w", err)
	}

	log.Debug().Int("rows", res.Rows).Int64("bytes", info.Size()).Msg("done")

	fmt.Fprintf(out, "\nDone! Output: %s\n", cfg.Output)
	fmt.Fprintf(out, "\nSummary:\n")
	fmt.Fprintf(out, "  Valid entries: %d\n", res.Valid)
	if counts := res.ErrorCounts(); len(counts) > 0 {
		fmt.Fprintf(out, "  Error entries by type:\n")
		for _, c := range counts {
			fmt.Fprintf(out, "    %s: %d\n", c.Category, c.Count)
		}
	}
	fmt.Fprintf(out, "\nFile size: %.2f MB\n", float64(info.Size())/(1024*1024))
	return nil
}

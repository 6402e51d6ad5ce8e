package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/derekprior/rrsched/internal/config"
	"github.com/derekprior/rrsched/internal/excel"
	"github.com/derekprior/rrsched/internal/logging"
	"github.com/derekprior/rrsched/internal/report"
	"github.com/derekprior/rrsched/internal/schedule"
	"github.com/derekprior/rrsched/internal/store"
)

const defaultConfigFile = "rrsched.yaml"

// globalOptions are the flags shared by every command.
type globalOptions struct {
	configFile string
	dbPath     string
	logLevel   string
	logFormat  string
}

type generateOptions struct {
	rng  string
	xlsx string
	save bool
}

func resolveConfigPath(configFlag string) (string, error) {
	if configFlag != "" {
		return configFlag, nil
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile, nil
	}
	return "", fmt.Errorf("no league given. Pass <num_divisions> <num_teams_per_division> <num_games_vs_division> <num_games_vs_non_division>, create %s in the current directory, or pass --config", defaultConfigFile)
}

// loadConfig reads the league from --config or the default config file.
// Command-line logging and store flags override the file.
func (g *globalOptions) loadConfig() (*config.Config, error) {
	path, err := resolveConfigPath(g.configFile)
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	g.apply(cfg)
	return cfg, nil
}

func (g *globalOptions) apply(cfg *config.Config) {
	if g.logLevel != "" {
		cfg.Logging.Level = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Logging.Format = g.logFormat
	}
	if g.dbPath != "" {
		cfg.Store.Path = g.dbPath
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var global globalOptions
	var gen generateOptions

	rootCmd := &cobra.Command{
		Use:   "rrsched <num_divisions> <num_teams_per_division> <num_games_vs_division> <num_games_vs_non_division>",
		Short: "Round-robin league schedule generator",
		Long: `Generates a round-robin schedule for a league of one or two divisions.

The schedule is printed to stdout and statistics to stderr. Without
positional arguments the league is read from --config or ./rrsched.yaml.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 4 {
				return fmt.Errorf("expected 4 arguments, received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := generateConfig(cmd, &global, gen, args)
			if err != nil {
				return err
			}
			return runGenerate(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, gen)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&global.configFile, "config", "", "Path to config file (default: rrsched.yaml in current directory)")
	pf.StringVar(&global.dbPath, "db", "", "Path to the run history database (default: store.path from config)")
	pf.StringVar(&global.logLevel, "log-level", "", "Log level: debug, info, warn, error (default: warn)")
	pf.StringVar(&global.logFormat, "log-format", "", "Log format: text or json (default: text)")

	f := rootCmd.Flags()
	f.StringVar(&gen.rng, "rng", "TIME", "Shuffle seed: a non-negative integer or TIME")
	f.StringVar(&gen.xlsx, "xlsx", "", "Also write the schedule to an Excel workbook")
	f.BoolVar(&gen.save, "save", false, "Record the run in the history database")

	rootCmd.AddCommand(
		newInitCmd(),
		newValidateCmd(&global),
		newHistoryCmd(&global),
		newServeCmd(&global),
	)
	return rootCmd
}

// parseArgs converts the four positional arguments into schedule params.
func parseArgs(args []string) (schedule.Params, error) {
	names := []string{
		"number of divisions",
		"number of teams per division",
		"number of games vs division opponents",
		"number of games vs non-division opponents",
	}
	values := make([]int, len(names))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return schedule.Params{}, fmt.Errorf("failed to parse %s from [%s]", names[i], arg)
		}
		values[i] = n
	}
	return schedule.Params{
		Divisions:          values[0],
		TeamsPerDivision:   values[1],
		GamesVsDivision:    values[2],
		GamesVsNonDivision: values[3],
	}, nil
}

func generateConfig(cmd *cobra.Command, global *globalOptions, gen generateOptions, args []string) (*config.Config, error) {
	seed, err := config.ParseSeed(gen.rng)
	if err != nil {
		return nil, err
	}

	if len(args) == 0 {
		cfg, err := global.loadConfig()
		if err != nil {
			return nil, err
		}
		if cmd.Flags().Changed("rng") {
			cfg.RNG = seed
		}
		return cfg, nil
	}

	p, err := parseArgs(args)
	if err != nil {
		return nil, err
	}
	p.Seed = seed.Int64()
	cfg, err := config.FromParams(p)
	if err != nil {
		return nil, err
	}
	global.apply(cfg)
	return cfg, nil
}

func runGenerate(stdout, stderr io.Writer, cfg *config.Config, gen generateOptions) error {
	logger := logging.NewWithWriter(logging.ParseLevel(cfg.Logging.Level), cfg.Logging.Format, stderr)

	s, err := schedule.New(cfg.Params())
	if err != nil {
		return err
	}
	logger.Info("schedule generated", "seed", s.Seed(), "days", s.NumDays(), "byes", s.Byes())

	if err := report.WriteSchedule(stdout, s); err != nil {
		return fmt.Errorf("writing schedule: %w", err)
	}
	if err := report.WriteStats(stderr, s.Stats()); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}

	if gen.xlsx != "" {
		f, err := excel.Generate(s, cfg.Roster())
		if err != nil {
			return fmt.Errorf("generating Excel: %w", err)
		}
		if err := f.SaveAs(gen.xlsx); err != nil {
			return fmt.Errorf("saving file: %w", err)
		}
		logger.Info("workbook saved", "path", gen.xlsx)
	}

	if gen.save {
		st, err := openStore(context.Background(), cfg.Store.Path, logger)
		if err != nil {
			return err
		}
		defer st.Close()

		run := store.NewRun(s)
		if err := st.SaveRun(context.Background(), run); err != nil {
			return fmt.Errorf("saving run: %w", err)
		}
		fmt.Fprintf(stderr, "Saved run %s (seed %d)\n", run.ID, s.Seed())
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/derekprior/rrsched/internal/config"
	"github.com/derekprior/rrsched/internal/logging"
	"github.com/derekprior/rrsched/internal/report"
	"github.com/derekprior/rrsched/internal/store"
)

func openStore(ctx context.Context, path string, logger *slog.Logger) (*store.SQLiteStore, error) {
	st, err := store.NewSQLiteStore(path, logger)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

// storeConfig resolves the database path and logger. Defaults apply only
// when no --config is given and rrsched.yaml is absent; a config file that
// exists or was named explicitly must load.
func storeConfig(global *globalOptions) (*config.Config, *slog.Logger, error) {
	cfg := config.Default()
	if path, err := resolveConfigPath(global.configFile); err == nil {
		cfg, err = config.LoadFromFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("loading config: %w", err)
		}
	}
	global.apply(cfg)
	return cfg, logging.New(cfg.Logging.Level, cfg.Logging.Format), nil
}

func newHistoryCmd(global *globalOptions) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List and replay recorded schedule runs",
	}

	var limit int
	listCmd := &cobra.Command{
		Use:          "list",
		Short:        "List recent runs, newest first",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := storeConfig(global)
			if err != nil {
				return err
			}
			st, err := openStore(cmd.Context(), cfg.Store.Path, logger)
			if err != nil {
				return err
			}
			defer st.Close()
			return runHistoryList(cmd.Context(), cmd.OutOrStdout(), st, limit)
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", store.DefaultListLimit, "Maximum number of runs to list")

	showCmd := &cobra.Command{
		Use:          "show <run-id>",
		Short:        "Regenerate and print a recorded run",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := storeConfig(global)
			if err != nil {
				return err
			}
			st, err := openStore(cmd.Context(), cfg.Store.Path, logger)
			if err != nil {
				return err
			}
			defer st.Close()
			return runHistoryShow(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), st, args[0])
		},
	}

	historyCmd.AddCommand(listCmd, showCmd)
	return historyCmd
}

func runHistoryList(ctx context.Context, out io.Writer, st store.Store, limit int) error {
	runs, err := st.ListRuns(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded")
		return nil
	}

	const format = "%-40s  %-12s  %-20s  %-5s  %-5s  %s\n"
	fmt.Fprintf(out, format, "ID", "LEAGUE", "SEED", "DAYS", "BYES", "CREATED")
	fmt.Fprintf(out, format, "--", "------", "----", "----", "----", "-------")
	for _, run := range runs {
		p := run.Params
		league := fmt.Sprintf("%dx%d %d/%d", p.Divisions, p.TeamsPerDivision, p.GamesVsDivision, p.GamesVsNonDivision)
		fmt.Fprintf(out, format, run.ID, league, strconv.FormatInt(p.Seed, 10),
			strconv.Itoa(run.Days), strconv.Itoa(run.Byes), humanize.Time(run.CreatedAt))
	}
	return nil
}

func runHistoryShow(ctx context.Context, stdout, stderr io.Writer, st store.Store, id string) error {
	run, err := st.GetRun(ctx, id)
	if err != nil {
		return err
	}
	s, err := run.Rebuild()
	if err != nil {
		return fmt.Errorf("rebuilding %s: %w", id, err)
	}
	if err := report.WriteSchedule(stdout, s); err != nil {
		return err
	}
	return report.WriteStats(stderr, s.Stats())
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var outputPath string
	cmd := &cobra.Command{
		Use:          "init",
		Short:        "Create a starter rrsched.yaml in the current directory",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runInit(outputPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Created %s\n", outputPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", defaultConfigFile, "Output path for the config file")
	return cmd
}

func runInit(outputPath string) error {
	if _, err := os.Stat(outputPath); err == nil {
		return fmt.Errorf("%s already exists; remove it first or use -o to write elsewhere", outputPath)
	}
	if err := os.WriteFile(outputPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

const configTemplate = `# rrsched League Configuration
# ============================
# This file describes a league for the round-robin schedule generator.

# League shape and game counts. When divisions are named below, the
# division and team counts are taken from them and may be left out.
# Game counts left out are filled in from the strategy.
league:
  # divisions: 2
  # teams_per_division: 5
  # games_vs_division: 2
  # games_vs_non_division: 1

# Divisions and their teams, at most two. Every division must have the
# same number of teams and team names must be unique across divisions.
# Without names, teams are numbered from 1 and divisions lettered A and B.
divisions:
  - name: American
    teams: [Angels, Astros, Athletics, Mariners, Royals]
  - name: National
    teams: [Cubs, Padres, Phillies, Pirates, Marlins]

# Strategy supplies the game counts:
#   division_weighted   each division opponent twice, others once
#   single_round_robin  every opponent once
#   double_round_robin  every opponent twice
strategy: division_weighted

# Seed for shuffling the order of days. TIME uses the clock; the seed
# actually used is logged at info level and recorded with saved runs.
rng: TIME

logging:
  level: warn      # debug, info, warn, error
  format: text     # text or json

# Run history written by --save and read by "rrsched history".
store:
  path: rrsched.db

# Listen address for "rrsched serve".
server:
  addr: ":8080"
`

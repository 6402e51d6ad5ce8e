package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/derekprior/rrsched/internal/config"
	"github.com/derekprior/rrsched/internal/validator"
)

func newValidateCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "validate <schedule.xlsx>",
		Short:        "Validate an exported schedule workbook against the league config",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.loadConfig()
			if err != nil {
				return err
			}
			return runValidate(cmd.OutOrStdout(), cfg, args[0])
		},
	}
}

func runValidate(out io.Writer, cfg *config.Config, schedulePath string) error {
	violations, err := validator.Validate(cfg, schedulePath)
	if err != nil {
		return fmt.Errorf("validating: %w", err)
	}

	errors := 0
	warnings := 0
	for _, v := range violations {
		where := ""
		if v.Row > 0 {
			where = fmt.Sprintf(" (row %d)", v.Row)
		}
		switch v.Type {
		case "error":
			errors++
			fmt.Fprintf(out, "✗ Rule violation%s: %s\n", where, v.Message)
		case "warning":
			warnings++
			fmt.Fprintf(out, "⚠ Guideline violation%s: %s\n", where, v.Message)
		}
	}

	fmt.Fprintf(out, "\nValidation complete: %d rule violations, %d guideline violations\n", errors, warnings)
	if errors > 0 {
		return fmt.Errorf("%d rule violations found", errors)
	}
	return nil
}

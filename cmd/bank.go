package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/smartassess/internal/questionbank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect and validate question catalogs",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the questions in the active bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		bank, err := loadBank(cfg.BankPath)
		if err != nil {
			return err
		}

		tiers := questionbank.AllTiers()
		if v, _ := cmd.Flags().GetString("tier"); v != "" {
			t, err := questionbank.ParseTier(v)
			if err != nil {
				return err
			}
			tiers = []questionbank.Tier{t}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-24s  %-6s  %-7s  %s\n", "ID", "Tier", "Options", "Prompt")
		fmt.Fprintln(out, strings.Repeat("─", 80))
		for _, t := range tiers {
			for _, q := range bank.ForTier(t) {
				fmt.Fprintf(out, "%-24s  %-6s  %-7d  %s\n",
					truncate(q.ID, 24), q.Tier, len(q.Options), truncate(q.Prompt, 36))
			}
		}
		fmt.Fprintln(out, strings.Repeat("─", 80))
		fmt.Fprintln(out, tierCounts(bank))
		return nil
	},
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a YAML question catalog for problems",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		bank, err := questionbank.Load(args[0])
		if err != nil {
			var verr *questionbank.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(out, "%s: %d problem(s)\n", args[0], len(verr.Problems))
				for _, p := range verr.Problems {
					fmt.Fprintf(out, "  ✗ %s\n", p)
				}
			}
			return err
		}
		fmt.Fprintf(out, "✓ %s is valid\n", args[0])
		fmt.Fprintln(out, tierCounts(bank))
		return nil
	},
}

// tierCounts summarizes pool sizes, e.g. "18 questions: easy 8, medium 10".
func tierCounts(bank *questionbank.Bank) string {
	parts := make([]string, 0, 3)
	for _, t := range questionbank.AllTiers() {
		parts = append(parts, fmt.Sprintf("%s %d", t, bank.Count(t)))
	}
	return fmt.Sprintf("%d questions: %s", bank.Len(), strings.Join(parts, ", "))
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func init() {
	bankListCmd.Flags().String("tier", "", "Only list one tier (easy, medium or hard)")

	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankValidateCmd)
}

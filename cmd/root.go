package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/smartassess/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "smartassess",
	Short: "Adaptive multiple-choice assessment",
	Long: `Smart Assess runs a timed multiple-choice assessment in the terminal.
Question difficulty adapts to your running accuracy and the final score
comes with a recommended course level.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("bank", "", "Path to a YAML question catalog (overrides SMARTASSESS_BANK)")
	rootCmd.Flags().String("tier", "", "Starting difficulty: easy, medium or hard (overrides SMARTASSESS_INITIAL_TIER)")
	rootCmd.Flags().Duration("duration", 0, "Time budget, e.g. 10m (overrides SMARTASSESS_DURATION_SECONDS)")

	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment configuration and applies the --bank
// flag, then validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("bank") {
		cfg.BankPath, _ = cmd.Flags().GetString("bank")
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// applySessionFlags overrides the session settings with --tier and
// --duration when they were given.
func applySessionFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if !flags.Changed("tier") && !flags.Changed("duration") {
		return nil
	}
	if flags.Changed("tier") {
		cfg.InitialTier, _ = flags.GetString("tier")
	}
	if flags.Changed("duration") {
		d, _ := flags.GetDuration("duration")
		cfg.DurationSeconds = int(d / time.Second)
	}
	return cfg.Validate()
}

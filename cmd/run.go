package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/smartassess/internal/app"
	"github.com/abhisek/smartassess/internal/logger"
	"github.com/abhisek/smartassess/internal/questionbank"
)

// runApp loads configuration and the question bank, then launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applySessionFlags(cmd, cfg); err != nil {
		return err
	}

	out, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, out)

	bank, err := loadBank(cfg.BankPath)
	if err != nil {
		return err
	}
	log.Info().
		Int("questions", bank.Len()).
		Str("bank", bankSource(cfg.BankPath)).
		Dur("duration", cfg.Duration()).
		Str("initial_tier", cfg.InitialTier).
		Msg("starting assessment app")

	return app.Run(app.Options{
		Bank:           bank,
		Duration:       cfg.Duration(),
		SessionOptions: cfg.SessionOptions(),
		Logger:         log,
	})
}

// openLog opens the log file in append mode. With no path the TUI logs
// nowhere so the terminal frame stays intact.
func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// loadBank returns the catalog at path, or the built-in bank when path is
// empty.
func loadBank(path string) (*questionbank.Bank, error) {
	if path == "" {
		return questionbank.Default(), nil
	}
	bank, err := questionbank.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}
	return bank, nil
}

func bankSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

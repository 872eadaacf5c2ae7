package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/l3aro/go-arith/internal/config"
	"github.com/l3aro/go-arith/internal/demo"
	"github.com/l3aro/go-arith/internal/log"
	"github.com/l3aro/go-arith/pkg/history"
)

// RootCmd represents the base command. Called without any subcommands it runs
// the fixed demonstration: each operation applied to (10, 5), then the
// division-by-zero line.
var RootCmd = &cobra.Command{
	Use:   "arith",
	Short: "arith - basic arithmetic demo and evaluator",
	Long: `arith demonstrates and evaluates the four basic arithmetic operations.

Running arith without arguments prints the fixed demonstration:
each of +, -, *, / applied to the operands 10 and 5, followed by an
explicit division-by-zero line.

Commands:
  eval        Evaluate one operation over two operands
  history     Show or clear recorded evaluations
  init        Write a config file interactively

Use "arith [command] --help" for more information about a command.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	RootCmd.AddCommand(evalCmd)
	RootCmd.AddCommand(historyCmd)
	RootCmd.AddCommand(initCmd)
}

// loadConfig loads the layered config and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Verbose = true
	}
	if cfg.Verbose {
		log.Default().SetLevel(log.DebugLevel)
	}

	return cfg, nil
}

func runDemo(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	records, err := demo.Run(os.Stdout, demo.Options{Precision: cfg.Precision})
	if err != nil {
		return err
	}

	if err := appendHistory(cfg, records...); err != nil {
		// A history write failure does not fail the demo run.
		log.Default().Warn("could not record history", "error", err)
	}

	return nil
}

// appendHistory persists records to the configured history file.
func appendHistory(cfg *config.Config, records ...history.Record) error {
	if !cfg.HistoryEnabled || len(records) == 0 {
		return nil
	}

	store, err := history.OpenFile(cfg.HistoryPath, cfg.HistorySize)
	if err != nil {
		return err
	}

	store.Append(records...)
	return store.WriteFile(cfg.HistoryPath)
}

package commands

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/l3aro/go-arith/internal/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize arith configuration interactively",
	Long: `Guides you through setting up arith configuration step by step.
Creates a global config file with output precision and history settings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit()
	},
}

func runInit() error {
	cfg := config.DefaultConfig()

	precisionInput := strconv.Itoa(cfg.Precision)
	historyEnabled := cfg.HistoryEnabled
	historySizeInput := strconv.Itoa(cfg.HistorySize)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Output precision").
				Description("Decimal places for printed results, -1 for shortest form").
				Placeholder("-1").
				Value(&precisionInput),
			huh.NewConfirm().
				Title("Record evaluation history?").
				Affirmative("Yes, keep history").
				Negative("No").
				Value(&historyEnabled),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive prompt failed: %w", err)
	}

	if historyEnabled {
		form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("History size").
					Description("How many evaluations to keep").
					Placeholder("100").
					Value(&historySizeInput),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("interactive prompt failed: %w", err)
		}
	}

	precision, err := strconv.Atoi(precisionInput)
	if err != nil {
		return fmt.Errorf("invalid precision %q: %w", precisionInput, err)
	}
	historySize, err := strconv.Atoi(historySizeInput)
	if err != nil {
		return fmt.Errorf("invalid history size %q: %w", historySizeInput, err)
	}

	cfg.Precision = precision
	cfg.HistoryEnabled = historyEnabled
	cfg.HistorySize = historySize

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := cfg.SaveGlobal(); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Println("Configuration saved")
	return nil
}

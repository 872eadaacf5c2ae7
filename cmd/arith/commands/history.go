package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/l3aro/go-arith/pkg/history"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear recorded evaluations",
	Long:  `Shows the persisted evaluation history, oldest first. Use --clear to discard it.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		clearHistory, _ := cmd.Flags().GetBool("clear")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		store, err := history.OpenFile(cfg.HistoryPath, cfg.HistorySize)
		if err != nil {
			return err
		}

		if clearHistory {
			store.Clear()
			if err := store.WriteFile(cfg.HistoryPath); err != nil {
				return err
			}
			fmt.Println("History cleared")
			return nil
		}

		if jsonOutput {
			return store.SaveJSON(os.Stdout)
		}

		records := store.Records()
		if len(records) == 0 {
			fmt.Println("No history recorded")
			return nil
		}

		for _, rec := range records {
			fmt.Printf("%s  %s\n", rec.At.Format("2006-01-02 15:04:05"), rec.String())
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().BoolP("json", "j", false, "Output as JSON")
	historyCmd.Flags().Bool("clear", false, "Discard all recorded evaluations")
}

package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent queries",
	Long:  `Lists recent archive queries, newest first.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum records to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyStore == nil {
		return errors.New("history store not configured")
	}

	records, err := historyStore.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No history.")
		return nil
	}

	for _, rec := range records {
		status := "ok"
		if !rec.OK {
			status = "FAILED"
		}
		cmd.Printf("%s  %-8s %-13s %-8s %s (%s)\n",
			rec.When.Local().Format("2006-01-02 15:04:05"),
			rec.Archive, rec.Op, status, rec.Target, rec.Duration.Round(time.Millisecond))
		if !rec.OK && rec.Detail != "" {
			cmd.Printf("    %s\n", rec.Detail)
		}
	}
	return nil
}

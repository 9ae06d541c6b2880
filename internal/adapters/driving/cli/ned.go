package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
)

var nedCmd = &cobra.Command{
	Use:   "ned [name]",
	Short: "Look up an object in NED",
	Long:  `Returns basic extragalactic data for an object name from NED.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runNed,
}

func init() {
	rootCmd.AddCommand(nedCmd)
}

func runNed(cmd *cobra.Command, args []string) error {
	if nedService == nil {
		return errors.New("ned service not configured")
	}

	ctx := cmd.Context()
	start := time.Now()

	table := nedService.QueryObject(ctx, args[0])

	recordHistory(ctx, "ned", "QueryObject", args[0], table, start)
	if table == nil {
		return errNoResult
	}
	return outputTable(cmd, table)
}

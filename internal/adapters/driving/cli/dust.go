package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
)

var dustCmd = &cobra.Command{
	Use:   "dust [center]",
	Short: "Fetch IRSA dust statistics",
	Long: `Returns Galactic dust reddening and emission statistics around a
centre from the IRSA dust service. The centre is an object name or an
"ra dec" coordinate in degrees.`,
	Args: cobra.ExactArgs(1),
	RunE: runDust,
}

func init() {
	rootCmd.AddCommand(dustCmd)
}

func runDust(cmd *cobra.Command, args []string) error {
	if irsaService == nil {
		return errors.New("irsa service not configured")
	}

	ctx := cmd.Context()
	start := time.Now()

	table := irsaService.QueryTable(ctx, args[0])

	recordHistory(ctx, "irsa", "QueryTable", args[0], table, start)
	if table == nil {
		return errNoResult
	}
	return outputTable(cmd, table)
}

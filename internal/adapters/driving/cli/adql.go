package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
)

var adqlAsync bool

var adqlCmd = &cobra.Command{
	Use:   "adql [query]",
	Short: "Run an ADQL query at the Gaia archive",
	Long: `Executes an ADQL query against the Gaia archive. Synchronous by
default; --async submits an archive-side job and waits for it, which
the archive requires for large result sets.`,
	Args: cobra.ExactArgs(1),
	RunE: runADQL,
}

func init() {
	adqlCmd.Flags().BoolVar(&adqlAsync, "async", false, "run as an archive-side job")
	rootCmd.AddCommand(adqlCmd)
}

func runADQL(cmd *cobra.Command, args []string) error {
	if gaiaService == nil {
		return errors.New("gaia service not configured")
	}

	ctx := cmd.Context()
	start := time.Now()

	table := gaiaService.QueryADQL(ctx, args[0], adqlAsync)

	recordHistory(ctx, "gaia", "QueryADQL", args[0], table, start)
	if table == nil {
		return errNoResult
	}
	return outputTable(cmd, table)
}

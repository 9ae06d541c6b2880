package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
)

var mastDownloadLimit int

var mastCmd = &cobra.Command{
	Use:   "mast",
	Short: "Search MAST and download data products",
}

var mastSearchCmd = &cobra.Command{
	Use:   "search [name]",
	Short: "Search archived observations by object name",
	Args:  cobra.ExactArgs(1),
	RunE:  runMastSearch,
}

var mastDownloadCmd = &cobra.Command{
	Use:   "download [name]",
	Short: "Download data products for an object",
	Long: `Searches archived observations for the object and downloads the
first matching data products. Prints a manifest of downloaded files.`,
	Args: cobra.ExactArgs(1),
	RunE: runMastDownload,
}

func init() {
	mastDownloadCmd.Flags().IntVarP(&mastDownloadLimit, "limit", "n", 1, "maximum products to download")
	mastCmd.AddCommand(mastSearchCmd)
	mastCmd.AddCommand(mastDownloadCmd)
	rootCmd.AddCommand(mastCmd)
}

func runMastSearch(cmd *cobra.Command, args []string) error {
	if mastService == nil {
		return errors.New("mast service not configured")
	}

	ctx := cmd.Context()
	start := time.Now()

	table := mastService.QueryObject(ctx, args[0])

	recordHistory(ctx, "mast", "QueryObject", args[0], table, start)
	if table == nil {
		return errNoResult
	}
	return outputTable(cmd, table)
}

func runMastDownload(cmd *cobra.Command, args []string) error {
	if mastService == nil {
		return errors.New("mast service not configured")
	}

	ctx := cmd.Context()
	start := time.Now()

	products := mastService.QueryObject(ctx, args[0])
	if products == nil {
		recordHistory(ctx, "mast", "Download", args[0], nil, start)
		return errNoResult
	}

	manifest := mastService.Download(ctx, products, mastDownloadLimit)

	recordHistory(ctx, "mast", "Download", args[0], manifest, start)
	if manifest == nil {
		return errNoResult
	}
	return outputTable(cmd, manifest)
}

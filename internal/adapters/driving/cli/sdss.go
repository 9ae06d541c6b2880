package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
)

var (
	sdssRadius  string
	sdssSpectro bool
)

var sdssCmd = &cobra.Command{
	Use:   "sdss [center]",
	Short: "Radial search SDSS SkyServer",
	Long: `Searches SDSS photometry around a centre, or spectroscopy with
--spectro. The centre is an object name or an "ra dec" coordinate in
degrees.`,
	Args: cobra.ExactArgs(1),
	RunE: runSdss,
}

func init() {
	sdssCmd.Flags().StringVarP(&sdssRadius, "radius", "r", "2 arcmin", "search radius")
	sdssCmd.Flags().BoolVar(&sdssSpectro, "spectro", false, "search spectroscopy instead of photometry")
	rootCmd.AddCommand(sdssCmd)
}

func runSdss(cmd *cobra.Command, args []string) error {
	if sdssService == nil {
		return errors.New("sdss service not configured")
	}

	radius, err := domain.ParseAngle(sdssRadius)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	start := time.Now()

	table := sdssService.QueryRegion(ctx, args[0], radius, sdssSpectro)

	recordHistory(ctx, "sdss", "QueryRegion", args[0], table, start)
	if table == nil {
		return errNoResult
	}
	return outputTable(cmd, table)
}

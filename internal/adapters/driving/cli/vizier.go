package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
)

var vizierRadius string

var vizierCmd = &cobra.Command{
	Use:   "vizier [catalog] [center]",
	Short: "Cone search a VizieR catalog",
	Long: `Searches one VizieR catalog around a centre. The catalog is a
VizieR identifier such as "II/246/out" and the centre is an object
name or an "ra dec" coordinate in degrees.`,
	Args: cobra.ExactArgs(2),
	RunE: runVizier,
}

func init() {
	vizierCmd.Flags().StringVarP(&vizierRadius, "radius", "r", "2 arcmin", "cone search radius")
	rootCmd.AddCommand(vizierCmd)
}

func runVizier(cmd *cobra.Command, args []string) error {
	if vizierService == nil {
		return errors.New("vizier service not configured")
	}

	radius, err := domain.ParseAngle(vizierRadius)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	start := time.Now()

	table := vizierService.QueryRegion(ctx, args[0], args[1], radius)

	recordHistory(ctx, "vizier", "QueryRegion", args[0]+" @ "+args[1], table, start)
	if table == nil {
		return errNoResult
	}
	return outputTable(cmd, table)
}

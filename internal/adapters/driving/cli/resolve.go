package cli

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
)

var (
	resolveFields  []string
	resolveRegion  bool
	resolveRadius  string
	resolveCatalog bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [target]...",
	Short: "Look up objects in SIMBAD",
	Long: `Resolves object identifiers against the SIMBAD database.
With one target, returns that object's basic data. With several
targets, resolves them all in a single query. With --region the target
is a cone-search centre (object name or "ra dec" in degrees); with
--catalog it is a catalog prefix such as "NGC".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringSliceVarP(&resolveFields, "fields", "f", nil, "extra output fields")
	resolveCmd.Flags().BoolVar(&resolveRegion, "region", false, "cone search around the target")
	resolveCmd.Flags().StringVarP(&resolveRadius, "radius", "r", "2 arcmin", "cone search radius")
	resolveCmd.Flags().BoolVar(&resolveCatalog, "catalog", false, "list objects of a catalog")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	if simbadService == nil {
		return errors.New("simbad service not configured")
	}
	if resolveRegion && resolveCatalog {
		return errors.New("--region and --catalog are mutually exclusive")
	}

	ctx := cmd.Context()
	start := time.Now()
	target := strings.Join(args, ", ")

	var (
		table *domain.Table
		op    string
	)
	switch {
	case resolveCatalog:
		op = "QueryCatalog"
		table = simbadService.QueryCatalog(ctx, args[0])
	case resolveRegion:
		op = "QueryRegion"
		radius, err := domain.ParseAngle(resolveRadius)
		if err != nil {
			return err
		}
		table = simbadService.QueryRegion(ctx, args[0], radius, resolveFields)
	case len(args) > 1:
		op = "QueryObjects"
		table = simbadService.QueryObjects(ctx, args, resolveFields)
	default:
		op = "QueryObject"
		table = simbadService.QueryObject(ctx, args[0], resolveFields)
	}

	recordHistory(ctx, "simbad", op, target, table, start)
	if table == nil {
		return errNoResult
	}
	return outputTable(cmd, table)
}

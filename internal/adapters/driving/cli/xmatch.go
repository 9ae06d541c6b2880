package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cosmolabs/cosmo-cli/internal/archives/csvio"
	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
)

var (
	xmatchMaxDistance string
	xmatchRALeft      string
	xmatchDecLeft     string
	xmatchRARight     string
	xmatchDecRight    string
)

var xmatchCmd = &cobra.Command{
	Use:   "xmatch [left.csv] [right.csv]",
	Short: "Cross-match two CSV tables by position",
	Long: `Cross-matches two local CSV tables through the CDS cross-match
service, pairing rows whose positions fall within the maximum
distance. The coordinate column names are passed through as given.`,
	Args: cobra.ExactArgs(2),
	RunE: runXMatch,
}

func init() {
	xmatchCmd.Flags().StringVar(&xmatchMaxDistance, "max-distance", "5 arcsec", "maximum pairing distance")
	xmatchCmd.Flags().StringVar(&xmatchRALeft, "ra1", "ra", "RA column of the left table")
	xmatchCmd.Flags().StringVar(&xmatchDecLeft, "dec1", "dec", "Dec column of the left table")
	xmatchCmd.Flags().StringVar(&xmatchRARight, "ra2", "ra", "RA column of the right table")
	xmatchCmd.Flags().StringVar(&xmatchDecRight, "dec2", "dec", "Dec column of the right table")
	rootCmd.AddCommand(xmatchCmd)
}

func loadCSV(path string) (*domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	table, err := csvio.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return table, nil
}

func runXMatch(cmd *cobra.Command, args []string) error {
	if xmatchService == nil {
		return errors.New("xmatch service not configured")
	}

	maxDistance, err := domain.ParseAngle(xmatchMaxDistance)
	if err != nil {
		return err
	}
	left, err := loadCSV(args[0])
	if err != nil {
		return err
	}
	right, err := loadCSV(args[1])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	start := time.Now()

	table := xmatchService.Match(ctx, left, right, maxDistance,
		xmatchRALeft, xmatchDecLeft, xmatchRARight, xmatchDecRight)

	recordHistory(ctx, "xmatch", "Match", args[0]+" x "+args[1], table, start)
	if table == nil {
		return errNoResult
	}
	return outputTable(cmd, table)
}

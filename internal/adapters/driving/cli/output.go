package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
)

// maxTableRows caps plain-text output; JSON output is never truncated.
const maxTableRows = 50

// outputTable renders a result table honouring the --json flag.
func outputTable(cmd *cobra.Command, table *domain.Table) error {
	if jsonFlag {
		return outputJSON(cmd, table)
	}
	return outputPlain(cmd, table)
}

func outputJSON(cmd *cobra.Command, table *domain.Table) error {
	payload := struct {
		Columns []string   `json:"columns"`
		Rows    [][]string `json:"rows"`
	}{
		Columns: table.Columns,
		Rows:    table.Rows,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputPlain(cmd *cobra.Command, table *domain.Table) error {
	if table.NumRows() == 0 {
		cmd.Println("No rows.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(table.Columns, "\t"))

	shown := table.Rows
	if len(shown) > maxTableRows {
		shown = shown[:maxTableRows]
	}
	for _, row := range shown {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(table.Rows) > maxTableRows {
		cmd.Printf("... %d more rows (use --json for full output)\n", len(table.Rows)-maxTableRows)
	}
	cmd.Printf("%d rows\n", table.NumRows())
	return nil
}

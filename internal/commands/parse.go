package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/electrotech-dev/electrotech/internal/categorize"
	"github.com/electrotech-dev/electrotech/internal/model"
	"github.com/electrotech-dev/electrotech/internal/statement"
)

type parsedRow struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Kind        string `json:"kind"`
}

type parseOutput struct {
	Transactions []parsedRow `json:"transactions"`
	DateFrom     string      `json:"dateFrom,omitempty"`
	DateTo       string      `json:"dateTo,omitempty"`
	Skipped      int         `json:"skipped"`
}

func newParseCommand() *cobra.Command {
	var asJSON bool
	var rulesPath string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse and categorize a statement without storing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			labeler, err := categorize.Load(rulesPath)
			if err != nil {
				return err
			}
			stmt, stats, err := statement.ParseWithStats(string(data))
			if err != nil {
				return fmt.Errorf("%s: %w", filepath.Base(args[0]), err)
			}
			out := buildParseOutput(stmt, stats, labeler)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			return printParseOutput(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	cmd.Flags().StringVar(&rulesPath, "rules", filepath.Join("rules", "categorization-rules.yaml"), "user categorization rules")

	return cmd
}

func buildParseOutput(stmt model.ParsedStatement, stats statement.Stats, labeler *categorize.Categorizer) parseOutput {
	out := parseOutput{Transactions: []parsedRow{}, Skipped: stats.Skipped()}
	for _, txn := range stmt.Transactions {
		category := labeler.Categorize(txn.Description)
		out.Transactions = append(out.Transactions, parsedRow{
			Date:        txn.DateString(),
			Description: txn.Description,
			Amount:      txn.Amount.StringFixed(2),
			Type:        string(txn.Type),
			Category:    string(category),
			Kind:        categorize.Kind(category),
		})
	}
	if stmt.DateFrom != nil {
		out.DateFrom = stmt.DateFrom.Format(model.DateFormat)
		out.DateTo = stmt.DateTo.Format(model.DateFormat)
	}
	return out
}

func printParseOutput(w io.Writer, out parseOutput) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTYPE\tAMOUNT\tCATEGORY\tKIND\tDESCRIPTION")
	for _, r := range out.Transactions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.Date, r.Type, r.Amount, r.Category, r.Kind, r.Description)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if out.DateFrom != "" {
		fmt.Fprintf(w, "%d transactions, %s to %s, %d rows skipped\n", len(out.Transactions), out.DateFrom, out.DateTo, out.Skipped)
	} else {
		fmt.Fprintf(w, "0 transactions, %d rows skipped\n", out.Skipped)
	}
	return nil
}

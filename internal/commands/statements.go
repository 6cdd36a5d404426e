package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/electrotech-dev/electrotech/internal/categorize"
	"github.com/electrotech-dev/electrotech/internal/model"
	"github.com/electrotech-dev/electrotech/internal/storage"
)

func newStatementsCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "statements [id]",
		Short: "List imported statements, or show one with its transactions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(repoDir)
			if err != nil {
				return err
			}
			defer p.Close()

			if len(args) == 1 {
				return showStatement(cmd, p, args[0])
			}

			stmts, err := p.db.ListStatements(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tFILE\tSTATUS\tTRANSACTIONS\tFROM\tTO")
			for _, s := range stmts {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n", s.ID, s.FileName, s.Status, s.TotalTransactions, dateOrDash(s.DateFrom), dateOrDash(s.DateTo))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")

	return cmd
}

func showStatement(cmd *cobra.Command, p *project, id string) error {
	s, err := p.db.GetStatement(cmd.Context(), id)
	if err != nil {
		return err
	}
	txns, err := p.db.ListTransactions(cmd.Context(), s.ID)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Statement %s\n", s.ID)
	fmt.Fprintf(w, "  file:    %s\n", s.FileName)
	if s.BankName != nil {
		fmt.Fprintf(w, "  bank:    %s\n", *s.BankName)
	}
	if s.AccountNumber != nil {
		fmt.Fprintf(w, "  account: %s\n", *s.AccountNumber)
	}
	fmt.Fprintf(w, "  status:  %s\n", s.Status)
	fmt.Fprintf(w, "  period:  %s to %s\n\n", dateOrDash(s.DateFrom), dateOrDash(s.DateTo))
	return printStoredTransactions(w, txns)
}

func printStoredTransactions(w io.Writer, txns []storage.BankTransaction) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTYPE\tAMOUNT\tCATEGORY\tKIND\tDESCRIPTION")
	for _, t := range txns {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.TransactionDate.UTC().Format(model.DateFormat), t.TransactionType,
			t.Amount.StringFixed(2), t.Category, categorize.Kind(t.Category), t.Description)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "%d transactions\n", len(txns))
	return nil
}

func dateOrDash(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(model.DateFormat)
}

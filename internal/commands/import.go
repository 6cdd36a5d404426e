package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/electrotech-dev/electrotech/internal/importer"
	"github.com/electrotech-dev/electrotech/internal/ingest"
	"github.com/electrotech-dev/electrotech/internal/model"
)

func newImportCommand() *cobra.Command {
	var repoDir string
	var bankName string
	var accountNumber string
	var format string

	cmd := &cobra.Command{
		Use:   "import [file...]",
		Short: "Import statements into the database",
		Long: "Import the given statement files, or every CSV in the import inbox when none are given. " +
			"Imported inbox files are moved to the processed directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(repoDir)
			if err != nil {
				return err
			}
			defer p.Close()

			fromInbox := len(args) == 0
			var files []importer.FileInfo
			if fromInbox {
				files, err = importer.Scan(p.importDir())
				if err != nil {
					return err
				}
				if len(files) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No statements to import")
					return nil
				}
			} else {
				for _, a := range args {
					files = append(files, importer.FileInfo{Name: filepath.Base(a), Path: a})
				}
			}

			var failed int
			for _, f := range files {
				res, err := importFile(cmd, p, f, ingest.Upload{BankName: bankName, AccountNumber: accountNumber, Format: format})
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", f.Name, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d transactions%s (statement %s)\n",
					f.Name, res.TransactionCount, rangeSuffix(res), res.StatementID)
				if fromInbox {
					if err := importer.MarkProcessed(p.importDir(), p.processedDir(), f.Name, res.StatementID); err != nil {
						return err
					}
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d statements failed", failed, len(files))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")
	cmd.Flags().StringVar(&bankName, "bank", "", "bank name to store with the statement")
	cmd.Flags().StringVar(&accountNumber, "account", "", "account number to store with the statement")
	cmd.Flags().StringVar(&format, "format", "", "statement format, one of "+strings.Join(importer.DefaultRegistry().Formats(), ", ")+" (default from config)")

	return cmd
}

func importFile(cmd *cobra.Command, p *project, f importer.FileInfo, up ingest.Upload) (*ingest.Result, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.Path, err)
	}
	up.FileName = f.Name
	up.Content = string(data)
	res, err := p.ingest.Upload(cmd.Context(), up)
	if errors.Is(err, ingest.ErrRejected) {
		return nil, fmt.Errorf("rejected: %w", err)
	}
	return res, err
}

func rangeSuffix(res *ingest.Result) string {
	if res.DateFrom == nil {
		return ""
	}
	return fmt.Sprintf(", %s to %s", res.DateFrom.Format(model.DateFormat), res.DateTo.Format(model.DateFormat))
}

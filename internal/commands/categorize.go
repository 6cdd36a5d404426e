package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/electrotech-dev/electrotech/internal/categorize"
)

func newCategorizeCommand() *cobra.Command {
	var rulesPath string
	var list bool

	cmd := &cobra.Command{
		Use:   "categorize <description>",
		Short: "Print the category for a transaction description",
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			labeler, err := categorize.Load(rulesPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if list {
				for _, r := range labeler.Rules() {
					fmt.Fprintf(out, "%s\t%s\n", r.Category, strings.Join(r.Keywords, ", "))
				}
				return nil
			}
			fmt.Fprintln(out, labeler.Categorize(strings.Join(args, " ")))
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", filepath.Join("rules", "categorization-rules.yaml"), "user categorization rules")
	cmd.Flags().BoolVar(&list, "list", false, "print the rule table in evaluation order")

	return cmd
}

func newRecategorizeCommand() *cobra.Command {
	var repoDir string
	var statementID string

	cmd := &cobra.Command{
		Use:   "recategorize",
		Short: "Re-run categorization over stored transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(repoDir)
			if err != nil {
				return err
			}
			defer p.Close()

			n, err := p.ingest.Recategorize(cmd.Context(), statementID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d transactions recategorized\n", n)
			return nil
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")
	cmd.Flags().StringVar(&statementID, "statement", "", "only this statement (default all)")

	return cmd
}

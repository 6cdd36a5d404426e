package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/electrotech-dev/electrotech/internal/categorize"
	"github.com/electrotech-dev/electrotech/internal/config"
	"github.com/electrotech-dev/electrotech/internal/storage"
)

func newInitCommand() *cobra.Command {
	var name string
	var country string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new project directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, name, country)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "company name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&country, "country", "", "company country code")

	return cmd
}

func runInit(cmd *cobra.Command, dir, name, country string) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	cfg := config.Default(name)
	cfg.Company.Country = country

	// Create directory structure.
	dirs := []string{
		filepath.Dir(cfg.Database.Path),
		filepath.Dir(cfg.Rules.Path),
		"logs",
		cfg.Import.Dir,
		cfg.Import.ProcessedDir,
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write empty categorization rules.
	if err := categorize.SaveRules(filepath.Join(dir, cfg.Rules.Path), nil); err != nil {
		return err
	}

	// Write .gitignore.
	gitignore := "data/\nlogs/\nimport/\n.env\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	// Create the database and schema.
	db, err := storage.Open(filepath.Join(dir, cfg.Database.Path))
	if err != nil {
		return err
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized project for %s at %s\n", name, dir)
	return nil
}

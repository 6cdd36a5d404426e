package commands

import (
	"fmt"
	"path/filepath"

	"github.com/electrotech-dev/electrotech/internal/auditlog"
	"github.com/electrotech-dev/electrotech/internal/categorize"
	"github.com/electrotech-dev/electrotech/internal/config"
	"github.com/electrotech-dev/electrotech/internal/ingest"
	"github.com/electrotech-dev/electrotech/internal/storage"
)

// project bundles the services of one initialized project directory.
type project struct {
	root   string
	cfg    *config.Config
	db     *storage.Database
	ingest *ingest.Service
}

func openProject(dir string) (*project, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.LoadProject(root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	labeler, err := categorize.Load(config.Resolve(root, cfg.Rules.Path))
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}

	db, err := storage.Open(config.Resolve(root, cfg.Database.Path))
	if err != nil {
		return nil, err
	}

	svc := ingest.NewService(db, labeler, ingest.Options{
		Logger:        logger,
		Recorder:      auditlog.New(root),
		DefaultFormat: cfg.Import.DefaultFormat,
		MaxBytes:      cfg.Import.MaxFileBytes,
	})

	return &project{root: root, cfg: cfg, db: db, ingest: svc}, nil
}

func (p *project) Close() error {
	return p.db.Close()
}

func (p *project) importDir() string {
	return config.Resolve(p.root, p.cfg.Import.Dir)
}

func (p *project) processedDir() string {
	return config.Resolve(p.root, p.cfg.Import.ProcessedDir)
}

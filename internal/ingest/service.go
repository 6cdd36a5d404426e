// Package ingest runs statement uploads end to end: parse, record the
// statement, categorize and store each transaction, track status.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/electrotech-dev/electrotech/internal/auditlog"
	"github.com/electrotech-dev/electrotech/internal/importer"
	"github.com/electrotech-dev/electrotech/internal/model"
	"github.com/electrotech-dev/electrotech/internal/statement"
	"github.com/electrotech-dev/electrotech/internal/storage"
)

var (
	// ErrUnsupportedFile is returned for file names without a .csv extension.
	ErrUnsupportedFile = errors.New("only CSV files are supported")
	// ErrTooLarge is returned when the content exceeds the configured limit.
	ErrTooLarge = errors.New("file too large")
	// ErrRejected wraps a statement format error.
	ErrRejected = errors.New("failed to parse statement")
	// ErrUnknownFormat is returned when no parser is registered for a format.
	ErrUnknownFormat = errors.New("unknown statement format")
)

// Labeler assigns a category to a description. *categorize.Categorizer satisfies it.
type Labeler interface {
	Categorize(description string) model.Category
}

// Options configure a Service. Zero values fall back to defaults.
type Options struct {
	Logger        *log.Logger
	Recorder      Recorder
	Parsers       *importer.Registry
	DefaultFormat string
	MaxBytes      int64 // 0 = unlimited
	Now           func() time.Time
	NewID         func() string
}

// Service coordinates the parser, the categorizer and the store.
type Service struct {
	store         Store
	labeler       Labeler
	logger        *log.Logger
	recorder      Recorder
	parsers       *importer.Registry
	defaultFormat string
	maxBytes      int64
	now           func() time.Time
	newID         func() string
}

// NewService creates an ingest Service.
func NewService(store Store, labeler Labeler, opts Options) *Service {
	s := &Service{
		store:         store,
		labeler:       labeler,
		logger:        opts.Logger,
		recorder:      opts.Recorder,
		parsers:       opts.Parsers,
		defaultFormat: opts.DefaultFormat,
		maxBytes:      opts.MaxBytes,
		now:           opts.Now,
		newID:         opts.NewID,
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.parsers == nil {
		s.parsers = importer.DefaultRegistry()
	}
	if s.defaultFormat == "" {
		s.defaultFormat = "generic"
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

// Upload is one statement file handed in by a user.
type Upload struct {
	FileName      string
	Content       string
	Format        string // empty = service default
	BankName      string
	AccountNumber string
}

// Result summarizes a stored statement.
type Result struct {
	StatementID      string
	FileName         string
	TransactionCount int
	DateFrom         *time.Time
	DateTo           *time.Time
	Stats            statement.Stats
	Categories       map[model.Category]int
}

// Upload parses, categorizes and stores one statement. A statement with no
// usable rows is still stored, with zero transactions.
func (s *Service) Upload(ctx context.Context, up Upload) (*Result, error) {
	if !importer.IsCSV(up.FileName) {
		return nil, s.reject(up.FileName, fmt.Errorf("%s: %w", up.FileName, ErrUnsupportedFile))
	}
	if s.maxBytes > 0 && int64(len(up.Content)) > s.maxBytes {
		return nil, s.reject(up.FileName, fmt.Errorf("%s is %d bytes, limit %d: %w", up.FileName, len(up.Content), s.maxBytes, ErrTooLarge))
	}

	format := up.Format
	if format == "" {
		format = s.defaultFormat
	}
	parser := s.parsers.Get(format)
	if parser == nil {
		return nil, s.reject(up.FileName, fmt.Errorf("%q (known: %s): %w", format, strings.Join(s.parsers.Formats(), ", "), ErrUnknownFormat))
	}

	parsed, stats, err := parser.Parse(strings.NewReader(up.Content))
	if err != nil {
		return nil, s.reject(up.FileName, fmt.Errorf("%w: %w", ErrRejected, err))
	}
	s.logger.Debug("parsed statement", "file", up.FileName, "rows", stats.Rows, "emitted", stats.Emitted, "skipped", stats.Skipped())

	stmt := &storage.BankStatement{
		ID:                s.newID(),
		FileName:          up.FileName,
		BankName:          optional(up.BankName),
		AccountNumber:     optional(up.AccountNumber),
		DateFrom:          parsed.DateFrom,
		DateTo:            parsed.DateTo,
		Status:            model.StatusProcessing,
		TotalTransactions: len(parsed.Transactions),
	}
	if err := s.store.CreateStatement(ctx, stmt); err != nil {
		s.audit(auditlog.Entry{FileName: up.FileName, Action: auditlog.ActionFailed, Details: err.Error()})
		return nil, fmt.Errorf("creating statement record: %w", err)
	}

	rows, counts := s.buildRows(stmt.ID, parsed.Transactions)
	if err := s.store.InsertTransactions(ctx, rows); err != nil {
		s.logger.Error("inserting transactions failed", "statement", stmt.ID, "file", up.FileName, "err", err)
		if serr := s.store.SetStatementStatus(ctx, stmt.ID, model.StatusError); serr != nil {
			s.logger.Error("marking statement as error failed", "statement", stmt.ID, "err", serr)
		}
		s.audit(auditlog.Entry{FileName: up.FileName, Action: auditlog.ActionFailed, StatementID: stmt.ID, Details: err.Error()})
		return nil, fmt.Errorf("inserting transactions: %w", err)
	}

	if err := s.store.SetStatementStatus(ctx, stmt.ID, model.StatusCompleted); err != nil {
		s.logger.Error("completing statement failed", "statement", stmt.ID, "file", up.FileName, "err", err)
		s.audit(auditlog.Entry{FileName: up.FileName, Action: auditlog.ActionFailed, StatementID: stmt.ID, Transactions: len(rows), Details: err.Error()})
		return nil, fmt.Errorf("completing statement: %w", err)
	}

	s.logger.Info("imported statement", "file", up.FileName, "statement", stmt.ID, "transactions", len(rows), "skipped", stats.Skipped())
	s.audit(auditlog.Entry{
		FileName:     up.FileName,
		Action:       auditlog.ActionAccepted,
		StatementID:  stmt.ID,
		Transactions: len(rows),
		Skipped:      stats.Skipped(),
		Details:      dateRange(parsed),
	})

	return &Result{
		StatementID:      stmt.ID,
		FileName:         up.FileName,
		TransactionCount: len(rows),
		DateFrom:         parsed.DateFrom,
		DateTo:           parsed.DateTo,
		Stats:            stats,
		Categories:       counts,
	}, nil
}

func (s *Service) buildRows(statementID string, txns []model.ParsedTransaction) ([]storage.BankTransaction, map[model.Category]int) {
	rows := make([]storage.BankTransaction, 0, len(txns))
	counts := make(map[model.Category]int)
	for _, txn := range txns {
		cat := s.labeler.Categorize(txn.Description)
		counts[cat]++
		rows = append(rows, storage.BankTransaction{
			ID:              s.newID(),
			StatementID:     statementID,
			TransactionDate: txn.Date,
			Description:     txn.Description,
			Amount:          txn.Amount,
			TransactionType: txn.Type,
			Category:        cat,
			IsBusiness:      true,
		})
	}
	return rows, counts
}

// Recategorize relabels stored transactions of one statement, or of all
// statements when statementID is empty. It returns how many changed.
func (s *Service) Recategorize(ctx context.Context, statementID string) (int, error) {
	txns, err := s.store.ListTransactions(ctx, statementID)
	if err != nil {
		return 0, fmt.Errorf("listing transactions: %w", err)
	}

	changed := 0
	for _, txn := range txns {
		cat := s.labeler.Categorize(txn.Description)
		if cat == txn.Category {
			continue
		}
		if err := s.store.UpdateCategory(ctx, txn.ID, cat); err != nil {
			return changed, fmt.Errorf("updating transaction %s: %w", txn.ID, err)
		}
		s.logger.Debug("recategorized", "transaction", txn.ID, "from", txn.Category, "to", cat)
		changed++
	}
	return changed, nil
}

func (s *Service) reject(fileName string, err error) error {
	s.logger.Warn("rejected statement", "file", fileName, "err", err)
	s.audit(auditlog.Entry{FileName: fileName, Action: auditlog.ActionRejected, Details: err.Error()})
	return err
}

func (s *Service) audit(e auditlog.Entry) {
	if s.recorder == nil {
		return
	}
	e.Timestamp = s.now()
	if err := s.recorder.Record(e); err != nil {
		s.logger.Warn("failed to write import log", "err", err)
	}
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func dateRange(stmt model.ParsedStatement) string {
	if stmt.DateFrom == nil {
		return ""
	}
	return stmt.DateFrom.Format(model.DateFormat) + ".." + stmt.DateTo.Format(model.DateFormat)
}

package ingest

import (
	"context"

	"github.com/electrotech-dev/electrotech/internal/auditlog"
	"github.com/electrotech-dev/electrotech/internal/model"
	"github.com/electrotech-dev/electrotech/internal/storage"
)

// Store is the persistence collaborator. *storage.Database satisfies it.
//
//go:generate mockgen -destination=mocks/mock_store.go -package=mocks -source=interface.go Store Recorder
type Store interface {
	CreateStatement(ctx context.Context, s *storage.BankStatement) error
	InsertTransactions(ctx context.Context, txns []storage.BankTransaction) error
	SetStatementStatus(ctx context.Context, id string, status model.StatementStatus) error
	ListTransactions(ctx context.Context, statementID string) ([]storage.BankTransaction, error)
	UpdateCategory(ctx context.Context, id string, category model.Category) error
}

// Recorder receives one audit entry per upload attempt.
type Recorder interface {
	Record(entries ...auditlog.Entry) error
}

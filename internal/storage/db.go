// Package storage persists statements and their transactions in sqlite.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/electrotech-dev/electrotech/internal/model"
)

// ErrNotFound is returned when a statement does not exist.
var ErrNotFound = errors.New("not found")

const insertBatchSize = 200

// Database wraps a gorm connection.
type Database struct {
	db *gorm.DB
}

// Open connects to the sqlite file at path, creating it and its directory
// if needed, and migrates the schema.
func Open(path string) (*Database, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database dir: %w", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&BankStatement{}, &BankTransaction{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &Database{db: db}, nil
}

// Close releases the underlying connection.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateStatement inserts a statement record.
func (d *Database) CreateStatement(ctx context.Context, s *BankStatement) error {
	if err := d.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("failed to save statement: %w", err)
	}
	return nil
}

// SetStatementStatus updates the status of one statement.
func (d *Database) SetStatementStatus(ctx context.Context, id string, status model.StatementStatus) error {
	res := d.db.WithContext(ctx).Model(&BankStatement{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update statement %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("statement %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetStatement loads one statement by ID.
func (d *Database) GetStatement(ctx context.Context, id string) (*BankStatement, error) {
	var s BankStatement
	err := d.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("statement %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load statement %s: %w", id, err)
	}
	return &s, nil
}

// ListStatements returns all statements, newest first.
func (d *Database) ListStatements(ctx context.Context) ([]BankStatement, error) {
	var out []BankStatement
	if err := d.db.WithContext(ctx).Order("created_at desc").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list statements: %w", err)
	}
	return out, nil
}

// InsertTransactions stores all rows atomically.
func (d *Database) InsertTransactions(ctx context.Context, txns []BankTransaction) error {
	if len(txns) == 0 {
		return nil
	}
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(txns, insertBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	return nil
}

// ListTransactions returns the transactions of one statement in date order,
// or of every statement when statementID is empty.
func (d *Database) ListTransactions(ctx context.Context, statementID string) ([]BankTransaction, error) {
	q := d.db.WithContext(ctx).Order("transaction_date, created_at")
	if statementID != "" {
		q = q.Where("statement_id = ?", statementID)
	}
	var out []BankTransaction
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return out, nil
}

// UpdateCategory relabels one transaction.
func (d *Database) UpdateCategory(ctx context.Context, id string, category model.Category) error {
	res := d.db.WithContext(ctx).Model(&BankTransaction{}).Where("id = ?", id).Update("category", category)
	if res.Error != nil {
		return fmt.Errorf("failed to update transaction %s: %w", id, res.Error)
	}
	return nil
}

package ingest_test

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electrotech-dev/electrotech/internal/auditlog"
	"github.com/electrotech-dev/electrotech/internal/categorize"
	"github.com/electrotech-dev/electrotech/internal/ingest"
	"github.com/electrotech-dev/electrotech/internal/model"
	"github.com/electrotech-dev/electrotech/internal/storage"
)

func TestUpload_SQLiteEndToEnd(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	db, err := storage.Open(filepath.Join(dir, "data", "electrotech.db"))
	require.NoError(t, err)
	defer db.Close()

	svc := ingest.NewService(db, categorize.New(nil), ingest.Options{
		Logger:   log.New(io.Discard),
		Recorder: auditlog.New(dir),
	})

	content := "Date,Description,Debit,Credit\n15-01-2024,Hardware store,45.50,\n"
	res, err := svc.Upload(ctx, ingest.Upload{FileName: "split.csv", Content: content, AccountNumber: "NL01BANK0123456789"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.TransactionCount)

	stmt, err := db.GetStatement(ctx, res.StatementID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, stmt.Status)
	assert.Equal(t, 1, stmt.TotalTransactions)
	require.NotNil(t, stmt.AccountNumber)
	assert.Nil(t, stmt.BankName)

	txns, err := db.ListTransactions(ctx, res.StatementID)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "2024-01-15", txns[0].TransactionDate.UTC().Format(model.DateFormat))
	assert.Equal(t, "45.50", txns[0].Amount.StringFixed(2))
	assert.Equal(t, model.TransactionDebit, txns[0].TransactionType)
	assert.Equal(t, model.CategoryMaterials, txns[0].Category)

	entries, err := auditlog.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, auditlog.ActionAccepted, entries[0].Action)

	// A user rule added later changes the label on recategorize.
	relabel := ingest.NewService(db, categorize.New([]categorize.Rule{
		{Category: model.CategoryEquipment, Keywords: []string{"hardware store"}},
	}), ingest.Options{Logger: log.New(io.Discard)})
	n, err := relabel.Recategorize(ctx, res.StatementID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	txns, err = db.ListTransactions(ctx, res.StatementID)
	require.NoError(t, err)
	assert.Equal(t, model.CategoryEquipment, txns[0].Category)
}

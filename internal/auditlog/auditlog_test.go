package auditlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 1, 17, 10, 30, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		Timestamp:    testTime,
		FileName:     "rabobank-jan.csv",
		Action:       ActionAccepted,
		StatementID:  "5b1e7a2c-8f0e-4d61-9d3f-2f8b1c0a9e11",
		Transactions: 42,
		Skipped:      3,
		Details:      "2024-01-01..2024-01-31",
	}
}

func TestAppend_NewFile(t *testing.T) {
	dir := t.TempDir()
	err := Append(dir, []Entry{testEntry()})
	require.NoError(t, err)

	entries, err := Read(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "rabobank-jan.csv", entries[0].FileName)
}

func TestAppend_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	e2 := testEntry()
	e2.FileName = "broken.csv"
	e2.Action = ActionRejected
	e2.StatementID = ""
	e2.Details = "invalid statement format: empty file"
	require.NoError(t, Append(dir, []Entry{e2}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, ActionAccepted, entries[0].Action)
	assert.Equal(t, ActionRejected, entries[1].Action)
	assert.Empty(t, entries[1].StatementID)
}

func TestLog_Record(t *testing.T) {
	dir := t.TempDir()
	l := New(dir)
	require.NoError(t, l.Record(testEntry(), testEntry()))

	entries, err := Read(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := testEntry()
	original.Details = "contains, a comma"
	require.NoError(t, Append(dir, []Entry{original}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.True(t, original.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, original.FileName, got.FileName)
	assert.Equal(t, original.Action, got.Action)
	assert.Equal(t, original.StatementID, got.StatementID)
	assert.Equal(t, original.Transactions, got.Transactions)
	assert.Equal(t, original.Skipped, got.Skipped)
	assert.Equal(t, original.Details, got.Details)
}

func TestRead_NotFound(t *testing.T) {
	dir := t.TempDir()
	entries, err := Read(dir)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRead_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "logs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logs", "import-log.csv"), []byte(Header+"\n"), 0o644))

	entries, err := Read(dir)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntry_BadFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"one", "two"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected 7 fields")
}

func TestUnmarshalEntry_BadCount(t *testing.T) {
	row := MarshalEntry(testEntry())
	row[colTransactions] = "many"
	_, err := UnmarshalEntry(row)
	assert.ErrorContains(t, err, "parsing transactions")
}

func TestTimestampFormat(t *testing.T) {
	e := testEntry()
	e.Timestamp = time.Date(2024, 1, 17, 11, 30, 0, 0, time.FixedZone("CET", 3600))
	row := MarshalEntry(e)
	assert.Equal(t, "2024-01-17T10:30:00Z", row[0])
}

func TestAppend_CreatesDir(t *testing.T) {
	dir := t.TempDir()
	// logs/ dir does not exist yet
	err := Append(dir, []Entry{testEntry()})
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

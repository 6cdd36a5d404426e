package model

// StatementStatus is the lifecycle state of an uploaded statement record.
type StatementStatus string

const (
	StatusProcessing StatementStatus = "processing"
	StatusCompleted  StatementStatus = "completed"
	StatusError      StatementStatus = "error"
)

package storage

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/electrotech-dev/electrotech/internal/model"
)

// BankStatement is one uploaded statement file.
type BankStatement struct {
	ID                string `gorm:"primaryKey;type:text"`
	FileName          string `gorm:"not null"`
	BankName          *string
	AccountNumber     *string
	DateFrom          *time.Time `gorm:"column:statement_date_from"`
	DateTo            *time.Time `gorm:"column:statement_date_to"`
	Status            model.StatementStatus `gorm:"type:text;not null;index"`
	TotalTransactions int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName pins the table name.
func (BankStatement) TableName() string { return "bank_statements" }

// BeforeCreate assigns a UUID when the caller did not.
func (s *BankStatement) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// BankTransaction is one categorized row of a statement.
type BankTransaction struct {
	ID              string                `gorm:"primaryKey;type:text"`
	StatementID     string                `gorm:"type:text;not null;index"`
	TransactionDate time.Time             `gorm:"not null;index"`
	Description     string                `gorm:"not null"`
	Amount          decimal.Decimal       `gorm:"type:text;not null"`
	TransactionType model.TransactionType `gorm:"type:text;not null"`
	Category        model.Category        `gorm:"type:text;not null;index"`
	IsBusiness      bool
	CreatedAt       time.Time
}

// TableName pins the table name.
func (BankTransaction) TableName() string { return "bank_transactions" }

// BeforeCreate assigns a UUID when the caller did not.
func (t *BankTransaction) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (income or expense).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single money movement in the ledger.
// Amounts are positive integral values in the smallest currency unit;
// the Type field decides the sign when balances are derived.
type Transaction struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Type          TransactionType
	Amount        decimal.Decimal
	Description   string
	CategoryID    *uuid.UUID // Optional, can be uncategorized
	SavingsGoalID *uuid.UUID // Set when the transaction is a savings contribution
	Date          time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	description string,
	categoryID *uuid.UUID,
	savingsGoalID *uuid.UUID,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:            uuid.New(),
		UserID:        userID,
		Type:          transactionType,
		Amount:        amount,
		Description:   description,
		CategoryID:    categoryID,
		SavingsGoalID: savingsGoalID,
		Date:          date,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsSavingsContribution reports whether the transaction is linked to a savings goal.
func (t *Transaction) IsSavingsContribution() bool {
	return t.SavingsGoalID != nil
}

// SignedAmount returns the amount with its ledger sign applied:
// positive for income, negative for expense.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

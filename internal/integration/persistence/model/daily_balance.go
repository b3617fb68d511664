package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// DailyBalanceModel represents the daily_balances table in the database.
// The (user_id, date) unique index backs the idempotent snapshot upsert.
// Snapshots are derived data and are never soft-deleted.
type DailyBalanceModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_daily_balances_user_date"`
	Date      time.Time       `gorm:"type:timestamp;not null;uniqueIndex:idx_daily_balances_user_date"`
	Income    decimal.Decimal `gorm:"type:decimal(15,0);not null"`
	Expense   decimal.Decimal `gorm:"type:decimal(15,0);not null"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,0);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the DailyBalanceModel.
func (DailyBalanceModel) TableName() string {
	return "daily_balances"
}

// ToEntity converts a DailyBalanceModel to a domain DailyBalance entity.
func (m *DailyBalanceModel) ToEntity() *entity.DailyBalance {
	return &entity.DailyBalance{
		ID:        m.ID,
		UserID:    m.UserID,
		Date:      m.Date,
		Income:    m.Income,
		Expense:   m.Expense,
		Balance:   m.Balance,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// DailyBalanceFromEntity creates a DailyBalanceModel from a domain DailyBalance entity.
func DailyBalanceFromEntity(balance *entity.DailyBalance) *DailyBalanceModel {
	return &DailyBalanceModel{
		ID:        balance.ID,
		UserID:    balance.UserID,
		Date:      balance.Date,
		Income:    balance.Income,
		Expense:   balance.Expense,
		Balance:   balance.Balance,
	}
}

package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// CreateWithBalance creates a transaction and refreshes the snapshot for its
// date in one database transaction.
func (r *transactionRepository) CreateWithBalance(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transactionModel).Error; err != nil {
			return err
		}
		_, err := recomputeDailyBalanceTx(tx, transaction.UserID, transaction.Date)
		return err
	})
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByUserAndRange retrieves a user's transactions within [start, end],
// newest first.
func (r *transactionRepository) FindByUserAndRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// DeleteWithBalance soft-deletes a transaction and refreshes the snapshot for
// its original date in one database transaction.
func (r *transactionRepository) DeleteWithBalance(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var transactionModel model.TransactionModel
		if err := tx.Where("id = ?", id).First(&transactionModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrTransactionNotFound
			}
			return err
		}

		if err := tx.Delete(&transactionModel).Error; err != nil {
			return err
		}

		_, err := recomputeDailyBalanceTx(tx, transactionModel.UserID, transactionModel.Date)
		return err
	})
}

// SumByDay aggregates the live ledger into per-day income/expense totals for
// the range. Grouping happens in memory because day extraction from a
// timestamp column has no portable SQL form across postgres and sqlite.
func (r *transactionRepository) SumByDay(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]adapter.DayTotals, error) {
	var rows []struct {
		Date   time.Time
		Type   string
		Amount decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("date, type, amount").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	byDay := make(map[time.Time]*adapter.DayTotals)
	for _, row := range rows {
		day := entity.TruncateToDay(row.Date)
		totals, ok := byDay[day]
		if !ok {
			totals = &adapter.DayTotals{Date: day, Income: decimal.Zero, Expense: decimal.Zero}
			byDay[day] = totals
		}
		switch entity.TransactionType(row.Type) {
		case entity.TransactionTypeIncome:
			totals.Income = totals.Income.Add(row.Amount)
		case entity.TransactionTypeExpense:
			totals.Expense = totals.Expense.Add(row.Amount)
		}
	}

	out := make([]adapter.DayTotals, 0, len(byDay))
	for _, totals := range byDay {
		out = append(out, *totals)
	}
	return out, nil
}

// CumulativeBalanceBefore returns income minus expense over all live
// transactions dated strictly before the given instant.
func (r *transactionRepository) CumulativeBalanceBefore(ctx context.Context, userID uuid.UUID, before time.Time) (decimal.Decimal, error) {
	var sums ledgerSums
	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select(
			"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS income, "+
				"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS expense",
			entity.TransactionTypeIncome, entity.TransactionTypeExpense,
		).
		Where("user_id = ? AND date < ?", userID, before).
		Scan(&sums).Error
	if err != nil {
		return decimal.Zero, err
	}
	return sums.Income.Sub(sums.Expense), nil
}

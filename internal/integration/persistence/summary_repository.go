package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	"github.com/household-ledger/backend/internal/integration/persistence/model"
)

// summaryRepository implements the adapter.SummaryRepository interface.
type summaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new summary repository instance.
func NewSummaryRepository(db *gorm.DB) adapter.SummaryRepository {
	return &summaryRepository{
		db: db,
	}
}

// MonthTotals aggregates the month's income and expense sums with counts.
// Expense figures exclude savings contributions.
func (r *summaryRepository) MonthTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) (*adapter.MonthTotals, error) {
	var row struct {
		Income       decimal.Decimal
		IncomeCount  int
		Expense      decimal.Decimal
		ExpenseCount int
	}
	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select(
			"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS income, "+
				"COALESCE(SUM(CASE WHEN type = ? THEN 1 ELSE 0 END), 0) AS income_count, "+
				"COALESCE(SUM(CASE WHEN type = ? AND savings_goal_id IS NULL THEN amount ELSE 0 END), 0) AS expense, "+
				"COALESCE(SUM(CASE WHEN type = ? AND savings_goal_id IS NULL THEN 1 ELSE 0 END), 0) AS expense_count",
			entity.TransactionTypeIncome, entity.TransactionTypeIncome,
			entity.TransactionTypeExpense, entity.TransactionTypeExpense,
		).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &adapter.MonthTotals{
		Income:       row.Income,
		IncomeCount:  row.IncomeCount,
		Expense:      row.Expense,
		ExpenseCount: row.ExpenseCount,
	}, nil
}

// CategorySpend aggregates per-category expense totals joined with the
// category's display fields. Savings contributions carry no category and are
// excluded by the join.
func (r *summaryRepository) CategorySpend(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]adapter.CategorySpend, error) {
	var rows []adapter.CategorySpend
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.id AS category_id,
		       c.name AS name,
		       c.color AS color,
		       c.icon AS icon,
		       c.default_budget AS default_budget,
		       COALESCE(SUM(t.amount), 0) AS total,
		       COUNT(t.id) AS count
		FROM transactions t
		JOIN categories c ON c.id = t.category_id AND c.deleted_at IS NULL
		WHERE t.user_id = ?
		  AND t.type = ?
		  AND t.date >= ? AND t.date <= ?
		  AND t.deleted_at IS NULL
		GROUP BY c.id, c.name, c.color, c.icon, c.default_budget
		ORDER BY total DESC`,
		userID, entity.TransactionTypeExpense, start, end,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SavingsContributions aggregates the month's goal-linked transactions.
func (r *summaryRepository) SavingsContributions(ctx context.Context, userID uuid.UUID, start, end time.Time) (*adapter.SavingsContributions, error) {
	var row struct {
		Total decimal.Decimal
		Count int
	}
	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(id) AS count").
		Where("user_id = ? AND savings_goal_id IS NOT NULL AND date >= ? AND date <= ?", userID, start, end).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &adapter.SavingsContributions{
		Total: row.Total,
		Count: row.Count,
	}, nil
}

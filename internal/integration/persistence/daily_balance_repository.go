package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	"github.com/household-ledger/backend/internal/integration/persistence/model"
)

// dailyBalanceRepository implements the adapter.DailyBalanceRepository interface.
type dailyBalanceRepository struct {
	db *gorm.DB
}

// NewDailyBalanceRepository creates a new daily balance repository instance.
func NewDailyBalanceRepository(db *gorm.DB) adapter.DailyBalanceRepository {
	return &dailyBalanceRepository{
		db: db,
	}
}

// Recompute rebuilds the (user, date) snapshot from the ledger and upserts it.
func (r *dailyBalanceRepository) Recompute(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyBalance, error) {
	var balanceModel *model.DailyBalanceModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		balanceModel, err = recomputeDailyBalanceTx(tx, userID, date)
		return err
	})
	if err != nil {
		return nil, err
	}
	return balanceModel.ToEntity(), nil
}

// FindRecent returns the newest snapshot rows, ordered by date descending.
func (r *dailyBalanceRepository) FindRecent(ctx context.Context, userID uuid.UUID, days int) ([]*entity.DailyBalance, error) {
	var balanceModels []model.DailyBalanceModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(days).
		Find(&balanceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	balances := make([]*entity.DailyBalance, len(balanceModels))
	for i, bm := range balanceModels {
		balances[i] = bm.ToEntity()
	}
	return balances, nil
}

// FindRange returns snapshot rows within [start, end], ordered by date ascending.
func (r *dailyBalanceRepository) FindRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.DailyBalance, error) {
	var balanceModels []model.DailyBalanceModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC").
		Find(&balanceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	balances := make([]*entity.DailyBalance, len(balanceModels))
	for i, bm := range balanceModels {
		balances[i] = bm.ToEntity()
	}
	return balances, nil
}

// ledgerSums receives the CASE WHEN aggregate of a ledger scan.
type ledgerSums struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// recomputeDailyBalanceTx rebuilds one (user, day) snapshot inside an open
// transaction. The cumulative balance is a full scan of the live ledger up to
// the end of the day rather than an incremental adjustment, so re-running it
// always converges. The write is an ON CONFLICT upsert on (user_id, date).
func recomputeDailyBalanceTx(tx *gorm.DB, userID uuid.UUID, date time.Time) (*model.DailyBalanceModel, error) {
	day := entity.TruncateToDay(date)
	dayEnd := day.AddDate(0, 0, 1).Add(-time.Nanosecond)

	var cumulative ledgerSums
	err := tx.Model(&model.TransactionModel{}).
		Select(
			"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS income, "+
				"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS expense",
			entity.TransactionTypeIncome, entity.TransactionTypeExpense,
		).
		Where("user_id = ? AND date <= ?", userID, dayEnd).
		Scan(&cumulative).Error
	if err != nil {
		return nil, err
	}

	var dayTotals ledgerSums
	err = tx.Model(&model.TransactionModel{}).
		Select(
			"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS income, "+
				"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS expense",
			entity.TransactionTypeIncome, entity.TransactionTypeExpense,
		).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, day, dayEnd).
		Scan(&dayTotals).Error
	if err != nil {
		return nil, err
	}

	balanceModel := &model.DailyBalanceModel{
		ID:      uuid.New(),
		UserID:  userID,
		Date:    day,
		Income:  dayTotals.Income,
		Expense: dayTotals.Expense,
		Balance: cumulative.Income.Sub(cumulative.Expense),
	}

	err = tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"income", "expense", "balance", "updated_at",
		}),
	}).Create(balanceModel).Error
	if err != nil {
		return nil, err
	}

	// On conflict the stored row keeps its original ID, so read it back.
	var stored model.DailyBalanceModel
	err = tx.Where("user_id = ? AND date = ?", userID, day).First(&stored).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

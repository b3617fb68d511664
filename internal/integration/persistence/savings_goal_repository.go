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

// savingsGoalRepository implements the adapter.SavingsGoalRepository interface.
type savingsGoalRepository struct {
	db *gorm.DB
}

// NewSavingsGoalRepository creates a new savings goal repository instance.
func NewSavingsGoalRepository(db *gorm.DB) adapter.SavingsGoalRepository {
	return &savingsGoalRepository{
		db: db,
	}
}

// Create creates a new savings goal. A primary goal demotes the user's other
// live goals in the same database transaction.
func (r *savingsGoalRepository) Create(ctx context.Context, goal *entity.SavingsGoal) error {
	goalModel := model.SavingsGoalFromEntity(goal)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if goal.IsPrimary {
			if err := clearPrimaryTx(tx, goal.UserID, goal.ID); err != nil {
				return err
			}
		}
		return tx.Create(goalModel).Error
	})
}

// FindByID retrieves a savings goal by its ID.
func (r *savingsGoalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingsGoal, error) {
	var goalModel model.SavingsGoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSavingsGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUser retrieves all live savings goals for a given user.
func (r *savingsGoalRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsGoal, error) {
	var goalModels []model.SavingsGoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_primary DESC, created_at ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.SavingsGoal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// FindActiveByUser retrieves the user's live goals whose target month is the
// given month or later.
func (r *savingsGoalRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID, year, month int) ([]*entity.SavingsGoal, error) {
	var goalModels []model.SavingsGoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND (target_year > ? OR (target_year = ? AND target_month >= ?))", userID, year, year, month).
		Order("is_primary DESC, created_at ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.SavingsGoal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// Update persists changes to an existing savings goal.
func (r *savingsGoalRepository) Update(ctx context.Context, goal *entity.SavingsGoal) error {
	goalModel := model.SavingsGoalFromEntity(goal)
	result := r.db.WithContext(ctx).
		Model(&model.SavingsGoalModel{}).
		Where("id = ?", goal.ID).
		Updates(map[string]interface{}{
			"name":           goalModel.Name,
			"target_amount":  goalModel.TargetAmount,
			"current_amount": goalModel.CurrentAmount,
			"target_year":    goalModel.TargetYear,
			"target_month":   goalModel.TargetMonth,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSavingsGoalNotFound
	}
	return nil
}

// Delete soft-deletes a savings goal. Linked contribution transactions are
// left in place.
func (r *savingsGoalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SavingsGoalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSavingsGoalNotFound
	}
	return nil
}

// SetPrimary toggles a goal's primary flag. Promotion clears the flag on the
// user's other live goals first, inside the same database transaction, so a
// reader never observes two primary goals.
func (r *savingsGoalRepository) SetPrimary(ctx context.Context, goalID, userID uuid.UUID, isPrimary bool) (*entity.SavingsGoal, error) {
	var goalModel model.SavingsGoalModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if isPrimary {
			if err := clearPrimaryTx(tx, userID, goalID); err != nil {
				return err
			}
		}

		result := tx.Model(&model.SavingsGoalModel{}).
			Where("id = ? AND user_id = ?", goalID, userID).
			Update("is_primary", isPrimary)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrSavingsGoalNotFound
		}

		return tx.Where("id = ?", goalID).First(&goalModel).Error
	})
	if err != nil {
		return nil, err
	}
	return goalModel.ToEntity(), nil
}

// Deposit atomically increments the goal's current amount, records the linked
// expense transaction, and refreshes the day's snapshot. A failure in any step
// rolls back all of them.
func (r *savingsGoalRepository) Deposit(ctx context.Context, goalID, userID uuid.UUID, amount decimal.Decimal, description string, at time.Time) (*entity.SavingsGoal, *entity.Transaction, error) {
	var (
		goalModel        model.SavingsGoalModel
		transactionModel *model.TransactionModel
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.SavingsGoalModel{}).
			Where("id = ? AND user_id = ?", goalID, userID).
			Update("current_amount", gorm.Expr("current_amount + ?", amount))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrSavingsGoalNotFound
		}

		transaction := entity.NewTransaction(userID, entity.TransactionTypeExpense, amount, description, nil, &goalID, at)
		transactionModel = model.TransactionFromEntity(transaction)
		if err := tx.Create(transactionModel).Error; err != nil {
			return err
		}

		if _, err := recomputeDailyBalanceTx(tx, userID, at); err != nil {
			return err
		}

		return tx.Where("id = ?", goalID).First(&goalModel).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return goalModel.ToEntity(), transactionModel.ToEntity(), nil
}

// clearPrimaryTx demotes every live goal of the user except the given one.
func clearPrimaryTx(tx *gorm.DB, userID, exceptID uuid.UUID) error {
	return tx.Model(&model.SavingsGoalModel{}).
		Where("user_id = ? AND id <> ? AND is_primary = ?", userID, exceptID, true).
		Update("is_primary", false).Error
}

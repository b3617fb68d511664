package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Upsert creates the (user, category, month) row or updates its amount. The
// write targets the composite unique index, so concurrent calls converge on
// one row.
func (r *budgetRepository) Upsert(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "category_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(budgetModel).Error
	if err != nil {
		if isUniqueViolation(err) {
			return domainerror.ErrBudgetConflict
		}
		return err
	}

	// On conflict the stored row keeps its original identity.
	var stored model.BudgetModel
	err = r.db.WithContext(ctx).
		Where("user_id = ? AND category_id = ? AND month = ?", budgetModel.UserID, budgetModel.CategoryID, budgetModel.Month).
		First(&stored).Error
	if err != nil {
		return err
	}
	budget.ID = stored.ID
	budget.CreatedAt = stored.CreatedAt
	budget.UpdatedAt = stored.UpdatedAt
	return nil
}

// FindByUserAndMonth retrieves all live budget rows for the month.
func (r *budgetRepository) FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month time.Time) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, entity.NormalizeMonth(month)).
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.Budget, len(budgetModels))
	for i, bm := range budgetModels {
		budgets[i] = bm.ToEntity()
	}
	return budgets, nil
}

// InstantiateDefaults creates a budget row for every live expense category
// that carries a default budget and has no explicit row for the month yet.
// Each insert is ON CONFLICT DO NOTHING against the composite unique index,
// so two concurrent summary reads never produce duplicate rows.
func (r *budgetRepository) InstantiateDefaults(ctx context.Context, userID uuid.UUID, month time.Time) (int, error) {
	normalized := entity.NormalizeMonth(month)

	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND default_budget IS NOT NULL", userID, entity.CategoryTypeExpense).
		Find(&categoryModels)
	if result.Error != nil {
		return 0, result.Error
	}
	if len(categoryModels) == 0 {
		return 0, nil
	}

	created := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, category := range categoryModels {
			budgetModel := &model.BudgetModel{
				ID:         uuid.New(),
				UserID:     userID,
				CategoryID: category.ID,
				Month:      normalized,
				Amount:     *category.DefaultBudget,
			}
			res := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "category_id"}, {Name: "month"}},
				DoNothing: true,
			}).Create(budgetModel)
			if res.Error != nil {
				return res.Error
			}
			created += int(res.RowsAffected)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

package savings

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// fakeGoalRepo is an in-memory SavingsGoalRepository for use case tests. Its
// Deposit and SetPrimary mirror the atomic semantics of the real repository.
type fakeGoalRepo struct {
	goals      map[uuid.UUID]*entity.SavingsGoal
	deposits   []*entity.Transaction
	depositErr error
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[uuid.UUID]*entity.SavingsGoal)}
}

func (r *fakeGoalRepo) Create(_ context.Context, goal *entity.SavingsGoal) error {
	if goal.IsPrimary {
		for _, g := range r.goals {
			if g.UserID == goal.UserID && g.DeletedAt == nil {
				g.IsPrimary = false
			}
		}
	}
	r.goals[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.SavingsGoal, error) {
	g, ok := r.goals[id]
	if !ok || g.DeletedAt != nil {
		return nil, domainerror.ErrSavingsGoalNotFound
	}
	return g, nil
}

func (r *fakeGoalRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.SavingsGoal, error) {
	var out []*entity.SavingsGoal
	for _, g := range r.goals {
		if g.UserID == userID && g.DeletedAt == nil {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) FindActiveByUser(_ context.Context, userID uuid.UUID, year, month int) ([]*entity.SavingsGoal, error) {
	var out []*entity.SavingsGoal
	for _, g := range r.goals {
		if g.UserID == userID && g.DeletedAt == nil && g.IsActive(year, month) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) Update(_ context.Context, goal *entity.SavingsGoal) error {
	r.goals[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	if g, ok := r.goals[id]; ok {
		now := time.Now().UTC()
		g.DeletedAt = &now
	}
	return nil
}

func (r *fakeGoalRepo) SetPrimary(_ context.Context, goalID, userID uuid.UUID, isPrimary bool) (*entity.SavingsGoal, error) {
	target, ok := r.goals[goalID]
	if !ok || target.DeletedAt != nil {
		return nil, domainerror.ErrSavingsGoalNotFound
	}
	if isPrimary {
		for _, g := range r.goals {
			if g.UserID == userID && g.DeletedAt == nil {
				g.IsPrimary = false
			}
		}
	}
	target.IsPrimary = isPrimary
	return target, nil
}

func (r *fakeGoalRepo) Deposit(_ context.Context, goalID, userID uuid.UUID, amount decimal.Decimal, description string, at time.Time) (*entity.SavingsGoal, *entity.Transaction, error) {
	if r.depositErr != nil {
		return nil, nil, r.depositErr
	}
	goal, ok := r.goals[goalID]
	if !ok || goal.DeletedAt != nil {
		return nil, nil, domainerror.ErrSavingsGoalNotFound
	}
	goal.CurrentAmount = goal.CurrentAmount.Add(amount)
	txn := entity.NewTransaction(userID, entity.TransactionTypeExpense, amount, description, nil, &goalID, at)
	r.deposits = append(r.deposits, txn)
	return goal, txn, nil
}

// fakeSummaryCache records invalidations.
type fakeSummaryCache struct {
	invalidated []uuid.UUID
}

func (c *fakeSummaryCache) Get(_ context.Context, _ uuid.UUID, _, _ int) ([]byte, bool) {
	return nil, false
}

func (c *fakeSummaryCache) Set(_ context.Context, _ uuid.UUID, _, _ int, _ []byte) {}

func (c *fakeSummaryCache) InvalidateUser(_ context.Context, userID uuid.UUID) {
	c.invalidated = append(c.invalidated, userID)
}

package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// fakeTransactionRepo is an in-memory TransactionRepository for use case tests.
type fakeTransactionRepo struct {
	transactions map[uuid.UUID]*entity.Transaction
	createErr    error
	deleteErr    error
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: make(map[uuid.UUID]*entity.Transaction)}
}

func (r *fakeTransactionRepo) CreateWithBalance(_ context.Context, transaction *entity.Transaction) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	t, ok := r.transactions[id]
	if !ok || t.DeletedAt != nil {
		return nil, domainerror.ErrTransactionNotFound
	}
	return t, nil
}

func (r *fakeTransactionRepo) FindByUserAndRange(_ context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.transactions {
		if t.UserID == userID && t.DeletedAt == nil && !t.Date.Before(start) && !t.Date.After(end) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) DeleteWithBalance(_ context.Context, id uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if t, ok := r.transactions[id]; ok {
		now := time.Now().UTC()
		t.DeletedAt = &now
	}
	return nil
}

func (r *fakeTransactionRepo) SumByDay(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]adapter.DayTotals, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) CumulativeBalanceBefore(_ context.Context, _ uuid.UUID, _ time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

// fakeCategoryRepo is an in-memory CategoryRepository for use case tests.
type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok || c.DeletedAt != nil {
		return nil, domainerror.ErrCategoryNotFound
	}
	return c, nil
}

func (r *fakeCategoryRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if c.UserID == userID && c.DeletedAt == nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) FindByNameTypeAndUser(_ context.Context, userID uuid.UUID, name string, categoryType entity.CategoryType) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.UserID == userID && c.Name == name && c.Type == categoryType && c.DeletedAt == nil {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if c, ok := r.categories[id]; ok {
		now := time.Now().UTC()
		c.DeletedAt = &now
	}
	return nil
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

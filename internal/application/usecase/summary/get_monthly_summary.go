// Package summary contains the monthly summary aggregator.
package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/application/usecase/period"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// GetMonthlySummaryInput represents the input for the monthly summary.
type GetMonthlySummaryInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// Period identifies the queried month.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Totals holds the month's headline amounts. Balance treats savings
// contributions as an allocation out of disposable income, so
// income - expense - savings equals Balance exactly.
type Totals struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	TotalSavings decimal.Decimal `json:"total_savings"`
	NetAmount    decimal.Decimal `json:"net_amount"`
	Balance      decimal.Decimal `json:"balance"`
}

// BudgetUsage reports consumption of the month's overall budget.
type BudgetUsage struct {
	Amount       decimal.Decimal `json:"amount"`
	Used         decimal.Decimal `json:"used"`
	Remaining    decimal.Decimal `json:"remaining"`
	UsagePercent int             `json:"usage_percent"`
}

// CategorySummary is one row of the per-category expense breakdown.
type CategorySummary struct {
	ID                 uuid.UUID        `json:"id"`
	Name               string           `json:"name"`
	Icon               string           `json:"icon"`
	Color              string           `json:"color"`
	Count              int              `json:"count"`
	Total              decimal.Decimal  `json:"total"`
	Budget             *decimal.Decimal `json:"budget,omitempty"`
	BudgetUsagePercent *int             `json:"budget_usage_percent,omitempty"`
}

// TransactionCount holds the month's transaction counts by type.
type TransactionCount struct {
	Income  int `json:"income"`
	Expense int `json:"expense"`
	Total   int `json:"total"`
}

// PrimaryGoal is the user's designated primary savings goal, if any.
type PrimaryGoal struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	CurrentAmount   decimal.Decimal `json:"current_amount"`
	TargetAmount    decimal.Decimal `json:"target_amount"`
	ProgressPercent int             `json:"progress_percent"`
}

// SavingsOverview aggregates the user's active goals.
type SavingsOverview struct {
	TotalAmount  decimal.Decimal `json:"total_amount"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Count        int             `json:"count"`
	PrimaryGoal  *PrimaryGoal    `json:"primary_goal"`
}

// GetMonthlySummaryOutput is the assembled monthly summary.
type GetMonthlySummaryOutput struct {
	Period           Period            `json:"period"`
	Summary          Totals            `json:"summary"`
	Budget           *BudgetUsage      `json:"budget"`
	Categories       []CategorySummary `json:"categories"`
	TransactionCount TransactionCount  `json:"transaction_count"`
	Savings          SavingsOverview   `json:"savings"`
}

// GetMonthlySummaryUseCase assembles the monthly summary. It first
// instantiates missing budget rows from category defaults, then runs the
// independent sub-aggregates concurrently. Results are cached per
// (user, year, month); every ledger mutation drops the user's cache.
type GetMonthlySummaryUseCase struct {
	summaryRepo  adapter.SummaryRepository
	budgetRepo   adapter.BudgetRepository
	goalRepo     adapter.SavingsGoalRepository
	summaryCache adapter.SummaryCache
	logger       *slog.Logger
}

// NewGetMonthlySummaryUseCase creates a new GetMonthlySummaryUseCase instance.
func NewGetMonthlySummaryUseCase(
	summaryRepo adapter.SummaryRepository,
	budgetRepo adapter.BudgetRepository,
	goalRepo adapter.SavingsGoalRepository,
	summaryCache adapter.SummaryCache,
	logger *slog.Logger,
) *GetMonthlySummaryUseCase {
	return &GetMonthlySummaryUseCase{
		summaryRepo:  summaryRepo,
		budgetRepo:   budgetRepo,
		goalRepo:     goalRepo,
		summaryCache: summaryCache,
		logger:       logger,
	}
}

// Execute computes or retrieves the monthly summary.
func (uc *GetMonthlySummaryUseCase) Execute(ctx context.Context, input GetMonthlySummaryInput) (*GetMonthlySummaryOutput, error) {
	if !period.ValidYearMonth(input.Year, input.Month) {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidPeriod,
			"year and month must denote a valid calendar month",
			domainerror.ErrInvalidPeriod,
		)
	}

	if payload, ok := uc.summaryCache.Get(ctx, input.UserID, input.Year, input.Month); ok {
		var cached GetMonthlySummaryOutput
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
		uc.logger.Warn("discarding undecodable cached summary", "user_id", input.UserID)
	}

	start, end := period.MonthRange(input.Year, time.Month(input.Month))
	month := entity.NormalizeMonth(start)

	created, err := uc.budgetRepo.InstantiateDefaults(ctx, input.UserID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate default budgets: %w", err)
	}
	if created > 0 {
		uc.logger.Info("instantiated default budgets",
			"user_id", input.UserID,
			"month", month.Format("2006-01"),
			"count", created,
		)
	}

	var (
		totals        *adapter.MonthTotals
		categorySpend []adapter.CategorySpend
		contributions *adapter.SavingsContributions
		activeGoals   []*entity.SavingsGoal
		budgets       []*entity.Budget
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = uc.summaryRepo.MonthTotals(gctx, input.UserID, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		categorySpend, err = uc.summaryRepo.CategorySpend(gctx, input.UserID, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		contributions, err = uc.summaryRepo.SavingsContributions(gctx, input.UserID, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		activeGoals, err = uc.goalRepo.FindActiveByUser(gctx, input.UserID, input.Year, input.Month)
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = uc.budgetRepo.FindByUserAndMonth(gctx, input.UserID, month)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly summary: %w", err)
	}

	output := uc.assemble(input, totals, categorySpend, contributions, activeGoals, budgets)

	if payload, err := json.Marshal(output); err == nil {
		uc.summaryCache.Set(ctx, input.UserID, input.Year, input.Month, payload)
	}

	return output, nil
}

func (uc *GetMonthlySummaryUseCase) assemble(
	input GetMonthlySummaryInput,
	totals *adapter.MonthTotals,
	categorySpend []adapter.CategorySpend,
	contributions *adapter.SavingsContributions,
	activeGoals []*entity.SavingsGoal,
	budgets []*entity.Budget,
) *GetMonthlySummaryOutput {
	netAmount := totals.Income.Sub(totals.Expense)
	balance := netAmount.Sub(contributions.Total)

	var overallBudget *entity.Budget
	budgetByCategory := make(map[uuid.UUID]*entity.Budget, len(budgets))
	for _, b := range budgets {
		if b.CategoryID == nil {
			overallBudget = b
			continue
		}
		budgetByCategory[*b.CategoryID] = b
	}

	categories := make([]CategorySummary, 0, len(categorySpend))
	for _, spend := range categorySpend {
		row := CategorySummary{
			ID:    spend.CategoryID,
			Name:  spend.Name,
			Icon:  spend.Icon,
			Color: spend.Color,
			Count: spend.Count,
			Total: spend.Total,
		}

		effective := spend.DefaultBudget
		if explicit, ok := budgetByCategory[spend.CategoryID]; ok {
			effective = &explicit.Amount
		}
		if effective != nil {
			amount := *effective
			row.Budget = &amount
			if amount.IsPositive() {
				percent := int(spend.Total.Div(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
				row.BudgetUsagePercent = &percent
			}
		}

		categories = append(categories, row)
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Total.GreaterThan(categories[j].Total)
	})

	var budgetUsage *BudgetUsage
	if overallBudget != nil {
		used := totals.Expense
		remaining := overallBudget.Amount.Sub(used)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		percent := 0
		if overallBudget.Amount.IsPositive() {
			percent = int(used.Div(overallBudget.Amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
			if percent < 0 {
				percent = 0
			}
			if percent > 100 {
				percent = 100
			}
		}
		budgetUsage = &BudgetUsage{
			Amount:       overallBudget.Amount,
			Used:         used,
			Remaining:    remaining,
			UsagePercent: percent,
		}
	}

	savings := SavingsOverview{
		TotalAmount:  decimal.Zero,
		TargetAmount: decimal.Zero,
		Count:        len(activeGoals),
	}
	for _, goal := range activeGoals {
		savings.TotalAmount = savings.TotalAmount.Add(goal.CurrentAmount)
		savings.TargetAmount = savings.TargetAmount.Add(goal.TargetAmount)
		if goal.IsPrimary && savings.PrimaryGoal == nil {
			savings.PrimaryGoal = &PrimaryGoal{
				ID:              goal.ID,
				Name:            goal.Name,
				CurrentAmount:   goal.CurrentAmount,
				TargetAmount:    goal.TargetAmount,
				ProgressPercent: goal.ProgressPercent(),
			}
		}
	}

	return &GetMonthlySummaryOutput{
		Period: Period{Year: input.Year, Month: input.Month},
		Summary: Totals{
			TotalIncome:  totals.Income,
			TotalExpense: totals.Expense,
			TotalSavings: contributions.Total,
			NetAmount:    netAmount,
			Balance:      balance,
		},
		Budget:     budgetUsage,
		Categories: categories,
		TransactionCount: TransactionCount{
			Income:  totals.IncomeCount,
			Expense: totals.ExpenseCount,
			Total:   totals.IncomeCount + totals.ExpenseCount + contributions.Count,
		},
		Savings: savings,
	}
}

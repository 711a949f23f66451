package usecase

import (
	"context"
	"sort"

	"github.com/vamsipakalapati4107/finlit4/internal/domain"
	"github.com/vamsipakalapati4107/finlit4/internal/infrastructure/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const monthlySeriesLimit = 6

type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

type MonthPoint struct {
	Month string          `json:"month"`
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
}

type BudgetStatus struct {
	ID          uuid.UUID       `json:"id"`
	Category    string          `json:"category"`
	Period      string          `json:"period"`
	Allocated   decimal.Decimal `json:"allocated"`
	Spent       decimal.Decimal `json:"spent"`
	Utilization float64         `json:"utilization"`
	OverBudget  bool            `json:"over_budget"`
}

type SpendingSummary struct {
	TotalSpent     decimal.Decimal `json:"total_spent"`
	ExpenseCount   int             `json:"expense_count"`
	CategoryTotals []CategoryTotal `json:"category_totals"`
	MonthlySeries  []MonthPoint    `json:"monthly_series"`
	TrendPercent   float64         `json:"trend_percent"`
}

type AnalyticsService struct {
	expenses *repository.ExpenseRepository
	budgets  *repository.BudgetRepository
}

func NewAnalyticsService(expenses *repository.ExpenseRepository, budgets *repository.BudgetRepository) *AnalyticsService {
	return &AnalyticsService{expenses: expenses, budgets: budgets}
}

// Summary собирает сводку по всем тратам пользователя.
// Агрегируем на стороне Go, чтобы не зависеть от диалекта SQL по датам.
func (s *AnalyticsService) Summary(ctx context.Context, userID uuid.UUID) (*SpendingSummary, error) {
	expenses, err := s.expenses.ListByUser(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	series := monthlySeries(expenses)
	return &SpendingSummary{
		TotalSpent:     total,
		ExpenseCount:   len(expenses),
		CategoryTotals: categoryTotals(expenses),
		MonthlySeries:  series,
		TrendPercent:   trendPercent(series),
	}, nil
}

// BudgetStatuses отдает бюджеты периода вместе с фактическими тратами месяца
func (s *AnalyticsService) BudgetStatuses(ctx context.Context, userID uuid.UUID, period string) ([]BudgetStatus, error) {
	budgets, err := s.budgets.ListByUserPeriod(ctx, userID, period)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.ListByUser(ctx, userID, period)
	if err != nil {
		return nil, err
	}

	spentByCategory := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		spentByCategory[e.Category] = spentByCategory[e.Category].Add(e.Amount)
	}

	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		spent := spentByCategory[b.Category]
		util := utilizationPercent(spent, b.Allocated)
		statuses = append(statuses, BudgetStatus{
			ID:          b.ID,
			Category:    b.Category,
			Period:      b.Period,
			Allocated:   b.Allocated,
			Spent:       spent,
			Utilization: util,
			OverBudget:  util > 100,
		})
	}
	return statuses, nil
}

func categoryTotals(expenses []domain.Expense) []CategoryTotal {
	byCategory := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for category, total := range byCategory {
		totals = append(totals, CategoryTotal{Category: category, Total: total})
	}
	// Самые тяжелые категории сверху
	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Total.GreaterThan(totals[j].Total)
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// monthlySeries группирует траты по месяцам и возвращает последние шесть
// месяцев с данными в хронологическом порядке
func monthlySeries(expenses []domain.Expense) []MonthPoint {
	byMonth := make(map[string]decimal.Decimal)
	labels := make(map[string]string)
	for _, e := range expenses {
		key := e.Date.Format("2006-01")
		byMonth[key] = byMonth[key].Add(e.Amount)
		labels[key] = e.Date.Format("Jan 2006")
	}

	keys := make([]string, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	if len(keys) > monthlySeriesLimit {
		keys = keys[:monthlySeriesLimit]
	}

	series := make([]MonthPoint, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		key := keys[i]
		series = append(series, MonthPoint{Month: key, Label: labels[key], Total: byMonth[key]})
	}
	return series
}

// trendPercent сравнивает последний месяц с предыдущим.
// Меньше двух точек или нулевая база — считаем, что тренда нет.
func trendPercent(series []MonthPoint) float64 {
	if len(series) < 2 {
		return 0
	}
	latest := series[len(series)-1].Total
	previous := series[len(series)-2].Total
	if previous.IsZero() {
		return 0
	}
	return latest.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

func utilizationPercent(spent, allocated decimal.Decimal) float64 {
	if allocated.IsZero() {
		return 0
	}
	return spent.Div(allocated).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

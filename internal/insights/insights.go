// Package insights computes spending summaries over assembled transactions:
// per-category totals, month-over-month comparisons and budget checks. It is
// pure computation; rendering belongs to the caller.
package insights

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jstello/SMS-finance-sub000/internal/model"
)

// Direction restricts a summary to one side of the ledger.
type Direction int

const (
	Any Direction = iota
	ExpensesOnly
	IncomeOnly
)

// Filter narrows the transaction window for a summary. Zero values match
// everything.
type Filter struct {
	Year      int        // 0 matches any year
	Month     time.Month // 0 matches any month
	Direction Direction
}

func (f Filter) matches(tx model.Transaction) bool {
	if f.Year != 0 && tx.OccurredAt.Year() != f.Year {
		return false
	}
	if f.Month != 0 && tx.OccurredAt.Month() != f.Month {
		return false
	}
	switch f.Direction {
	case ExpensesOnly:
		return !tx.IsIncome
	case IncomeOnly:
		return tx.IsIncome
	}
	return true
}

// Total is the spend attributed to one category.
type Total struct {
	Category model.Category
	Amount   decimal.Decimal
}

// SpendingByCategory sums transaction amounts per category. Every category
// appears in the result, zero totals included, in the order given.
// Transactions with a blank or unknown category ID are attributed to the
// "Other" category; if no such category exists they are left out of the
// result entirely.
func SpendingByCategory(txs []model.Transaction, categories []model.Category, f Filter) []Total {
	totals := make([]Total, len(categories))
	index := make(map[string]int, len(categories))
	other := -1
	for i, c := range categories {
		totals[i] = Total{Category: c, Amount: decimal.Zero}
		index[c.ID] = i
		if c.Name == "Other" {
			other = i
		}
	}

	for _, tx := range txs {
		if !f.matches(tx) {
			continue
		}
		i, ok := index[tx.CategoryID]
		if !ok || tx.CategoryID == "" {
			if other < 0 {
				continue
			}
			i = other
		}
		totals[i].Amount = totals[i].Amount.Add(tx.Amount)
	}
	return totals
}

// Share is one category's slice of the total spend for a period.
type Share struct {
	Category model.Category
	Amount   decimal.Decimal
	Percent  decimal.Decimal // of the period total, 0-100
}

// Breakdown drops zero totals and sorts the rest by amount, largest first.
// Percentages are of the summed non-zero totals.
func Breakdown(totals []Total) []Share {
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t.Amount)
	}

	var shares []Share
	for _, t := range totals {
		if t.Amount.IsZero() {
			continue
		}
		pct := decimal.Zero
		if sum.IsPositive() {
			pct = t.Amount.Div(sum).Mul(decimal.NewFromInt(100))
		}
		shares = append(shares, Share{Category: t.Category, Amount: t.Amount, Percent: pct})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Amount.GreaterThan(shares[j].Amount)
	})
	return shares
}

// Trend labels the direction of a month-over-month change.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// Comparison holds one month's expenses against the month before it.
type Comparison struct {
	Current       decimal.Decimal
	Previous      decimal.Decimal
	PercentChange decimal.Decimal
	Trend         Trend
}

// trendThreshold is the percent change below which a move counts as stable.
var trendThreshold = decimal.NewFromInt(5)

// CompareToPreviousMonth sums expenses for the given month and the calendar
// month before it, handling the January wraparound. categoryName narrows the
// comparison to one category (case-insensitive); blank compares the total.
// The second return is false when categoryName names no known category.
func CompareToPreviousMonth(txs []model.Transaction, categories []model.Category, year int, month time.Month, categoryName string) (Comparison, bool) {
	prevYear, prevMonth := year, month-1
	if month == time.January {
		prevYear, prevMonth = year-1, time.December
	}

	current, ok := periodSpend(txs, categories, year, month, categoryName)
	if !ok {
		return Comparison{}, false
	}
	previous, _ := periodSpend(txs, categories, prevYear, prevMonth, categoryName)

	change := decimal.Zero
	switch {
	case previous.IsPositive():
		change = current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100))
	case current.IsPositive():
		change = decimal.NewFromInt(100) // spend where there was none
	}

	trend := TrendStable
	switch {
	case change.GreaterThan(trendThreshold):
		trend = TrendIncreasing
	case change.LessThan(trendThreshold.Neg()):
		trend = TrendDecreasing
	}

	return Comparison{
		Current:       current,
		Previous:      previous,
		PercentChange: change,
		Trend:         trend,
	}, true
}

// BudgetStatus reports one month's expenses for a category against a budget.
type BudgetStatus struct {
	Category        model.Category
	Spent           decimal.Decimal
	Budget          decimal.Decimal
	Remaining       decimal.Decimal // negative when over budget
	PercentOfBudget decimal.Decimal
}

// CheckBudget compares one category's expenses for a month against a budget.
// The category is matched by name, case-insensitively; the second return is
// false when no category matches.
func CheckBudget(txs []model.Transaction, categories []model.Category, year int, month time.Month, categoryName string, budget decimal.Decimal) (BudgetStatus, bool) {
	target, ok := findByName(categories, categoryName)
	if !ok {
		return BudgetStatus{}, false
	}

	spent := decimal.Zero
	for _, t := range SpendingByCategory(txs, categories, Filter{Year: year, Month: month, Direction: ExpensesOnly}) {
		if t.Category.ID == target.ID {
			spent = t.Amount
			break
		}
	}

	pct := decimal.Zero
	if budget.IsPositive() {
		pct = spent.Div(budget).Mul(decimal.NewFromInt(100))
	}

	return BudgetStatus{
		Category:        target,
		Spent:           spent,
		Budget:          budget,
		Remaining:       budget.Sub(spent),
		PercentOfBudget: pct,
	}, true
}

// periodSpend sums one month's expenses, either for a single named category
// or across all of them when name is blank.
func periodSpend(txs []model.Transaction, categories []model.Category, year int, month time.Month, name string) (decimal.Decimal, bool) {
	totals := SpendingByCategory(txs, categories, Filter{Year: year, Month: month, Direction: ExpensesOnly})

	if name == "" {
		sum := decimal.Zero
		for _, t := range totals {
			sum = sum.Add(t.Amount)
		}
		return sum, true
	}

	target, ok := findByName(categories, name)
	if !ok {
		return decimal.Zero, false
	}
	for _, t := range totals {
		if t.Category.ID == target.ID {
			return t.Amount, true
		}
	}
	return decimal.Zero, true
}

func findByName(categories []model.Category, name string) (model.Category, bool) {
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return model.Category{}, false
}

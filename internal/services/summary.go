package services

import "kharcha/internal/models"

// SummarizeExpenses folds a user's expense set into the profile
// aggregates. It is recomputed on every profile fetch; nothing here is
// cached, since the expense set can change between calls.
//
// Category totals only contain categories that actually occur. Monthly
// buckets are indexed by calendar month (0 = January) regardless of
// year, so the same month across years is merged. When two categories
// tie for the largest total, the lexicographically smaller name wins,
// keeping the result independent of map iteration order. An empty
// expense set yields zero totals and an empty top category.
func SummarizeExpenses(expenses []models.Expense) ExpenseSummary {
	summary := ExpenseSummary{
		CategoryTotals: make(map[string]float64),
	}

	for _, e := range expenses {
		summary.Total += e.Amount
		summary.CategoryTotals[e.Category] += e.Amount
		summary.MonthlyTotals[int(e.Date.Month())-1] += e.Amount
	}

	for category, total := range summary.CategoryTotals {
		if summary.TopCategory == "" ||
			total > summary.CategoryTotals[summary.TopCategory] ||
			(total == summary.CategoryTotals[summary.TopCategory] && category < summary.TopCategory) {
			summary.TopCategory = category
		}
	}

	return summary
}

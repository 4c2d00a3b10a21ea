package report

import (
	"time"

	"duit/internal/model"
)

// TrendMonths is the length of the trend series.
const TrendMonths = 6

// TrendPoint is one month of the trend series.
type TrendPoint struct {
	Key          string
	Label        string
	IncomeCents  int64
	ExpenseCents int64
}

// MonthOption is a month-picker entry.
type MonthOption struct {
	Key   string
	Label string
}

// MonthKey formats a time as the "YYYY-MM" key used for filtering.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// MonthOptions returns the current month plus the past eleven, newest
// first, for the dashboard month picker.
func MonthOptions(now time.Time) []MonthOption {
	opts := make([]MonthOption, 0, 12)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		m := first.AddDate(0, -i, 0)
		opts = append(opts, MonthOption{
			Key:   MonthKey(m),
			Label: m.Format("Jan 2006"),
		})
	}
	return opts
}

// Trend sums income and expense for each of the six calendar months
// ending at the current one, oldest first.
func Trend(now time.Time, transactions []model.Transaction) []TrendPoint {
	points := make([]TrendPoint, 0, TrendMonths)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := TrendMonths - 1; i >= 0; i-- {
		m := first.AddDate(0, -i, 0)
		point := TrendPoint{
			Key:   MonthKey(m),
			Label: m.Format("Jan"),
		}
		for _, t := range transactions {
			if !t.InMonth(point.Key) {
				continue
			}
			switch t.Type {
			case model.TypeIncome:
				point.IncomeCents += t.AmountCents
			case model.TypeExpense:
				point.ExpenseCents += t.AmountCents
			}
		}
		points = append(points, point)
	}
	return points
}

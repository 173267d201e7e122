package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/models"
)

const dateLayout = "2006-01-02"

// summaryService computes the spending summary and budget warnings.
// It is stateless: every call recomputes the report from persisted state,
// so concurrent invocations need no coordination.
type summaryService struct {
	db *gorm.DB
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(db *gorm.DB) SummaryServicer {
	return &summaryService{db: db}
}

// GetSummary aggregates all expenses into today/week/month totals, nets
// pending debts by direction, and classifies the weekly and monthly spend
// against the configured limits. If any store read fails, the whole
// computation fails; there is no partial summary.
func (s *summaryService) GetSummary(now time.Time) (*Summary, error) {
	today, weekStart, monthStart := expenseWindows(now)

	var expenses []models.Expense
	if err := s.db.Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var debts []models.Debt
	if err := s.db.Find(&debts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var weeklyLimit, monthlyLimit float64
	var limit models.LimitSettings
	err := s.db.First(&limit, "id = ?", models.LimitSettingsID).Error
	switch {
	case err == nil:
		weeklyLimit = limit.WeeklyLimit
		monthlyLimit = limit.MonthlyLimit
	case errors.Is(err, gorm.ErrRecordNotFound):
		// No limits configured; zero limits never warn.
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totals := aggregateExpenses(expenses, today, weekStart, monthStart)
	moneyGave, moneyOwe := netPendingDebts(debts)

	return &Summary{
		TotalToday:     totals.today,
		TotalWeek:      totals.week,
		TotalMonth:     totals.month,
		WeeklyLimit:    weeklyLimit,
		MonthlyLimit:   monthlyLimit,
		RemainingWeek:  weeklyLimit - totals.week,
		RemainingMonth: monthlyLimit - totals.month,
		MoneyGave:      moneyGave,
		MoneyOwe:       moneyOwe,
		WeeklyWarning:  classifyWarning(totals.week, weeklyLimit),
		MonthlyWarning: classifyWarning(totals.month, monthlyLimit),
	}, nil
}

// expenseWindows computes the three boundary dates for the given instant:
// the current date, the Monday of the current week, and the first day of
// the current month, all as YYYY-MM-DD strings in UTC.
func expenseWindows(now time.Time) (today, weekStart, monthStart string) {
	now = now.UTC()
	today = now.Format(dateLayout)

	// time.Weekday has Sunday = 0; shift so Monday = 0.
	offset := (int(now.Weekday()) + 6) % 7
	weekStart = now.AddDate(0, 0, -offset).Format(dateLayout)

	monthStart = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).Format(dateLayout)
	return today, weekStart, monthStart
}

// expenseTotals holds the three overlapping window sums.
type expenseTotals struct {
	today float64
	week  float64
	month float64
}

// aggregateExpenses sums expense amounts per window. The windows overlap by
// construction: today's expenses also count toward the week and the month.
// Comparing the fixed-width date strings lexicographically is equivalent to
// date ordering; a record whose date does not parse is skipped entirely
// rather than aborting the computation.
func aggregateExpenses(expenses []models.Expense, today, weekStart, monthStart string) expenseTotals {
	var t expenseTotals
	for _, e := range expenses {
		if !isValidDate(e.Date) {
			continue
		}
		if e.Date == today {
			t.today += e.Amount
		}
		if e.Date >= weekStart {
			t.week += e.Amount
		}
		if e.Date >= monthStart {
			t.month += e.Amount
		}
	}
	return t
}

// netPendingDebts sums pending debt amounts by direction. Paid debts
// contribute nothing; debts carry no time window.
func netPendingDebts(debts []models.Debt) (moneyGave, moneyOwe float64) {
	for _, d := range debts {
		if d.Status != models.DebtStatusPending {
			continue
		}
		switch d.Direction {
		case models.DebtDirectionGave:
			moneyGave += d.Amount
		case models.DebtDirectionOwe:
			moneyOwe += d.Amount
		}
	}
	return moneyGave, moneyOwe
}

// classifyWarning maps a spent/limit ratio to a warning tier. A zero or
// unset limit never warns, which also rules out division by zero. The
// 80% and 100% boundaries are inclusive on the higher tier.
func classifyWarning(spent, limit float64) WarningLevel {
	if limit <= 0 {
		return WarningNone
	}
	percent := spent / limit * 100
	switch {
	case percent >= 100:
		return WarningRed
	case percent >= 80:
		return WarningYellow
	default:
		return WarningNone
	}
}

// isValidDate reports whether s is a zero-padded YYYY-MM-DD calendar date.
func isValidDate(s string) bool {
	if len(s) != len(dateLayout) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

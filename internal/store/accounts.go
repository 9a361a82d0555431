package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hotel-frontoffice-backend/internal/model"
	"hotel-frontoffice-backend/internal/tax"
)

func (s *gormStore) CreateEntry(ctx context.Context, e *model.AccountEntry) error {
	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("failed to create account entry: %w", err)
	}
	return nil
}

func (s *gormStore) entries(ctx context.Context, f EntryFilter) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&model.AccountEntry{})
	if f.Kind != "" {
		q = q.Where("kind = ?", f.Kind)
	}
	if !f.From.IsZero() {
		q = q.Where("date >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("date <= ?", f.To)
	}
	return q
}

func (s *gormStore) ListEntries(ctx context.Context, f EntryFilter) ([]model.AccountEntry, error) {
	var entries []model.AccountEntry
	if err := s.entries(ctx, f).Order("date, id").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Summary totals income and expense for the filtered ledger.
func (s *gormStore) Summary(ctx context.Context, f EntryFilter) (AccountSummary, error) {
	type row struct {
		Kind  string
		Total float64
	}
	var rows []row
	if err := s.entries(ctx, f).
		Select("kind, COALESCE(SUM(amount), 0) AS total").
		Group("kind").
		Scan(&rows).Error; err != nil {
		return AccountSummary{}, fmt.Errorf("failed to summarise ledger: %w", err)
	}

	var sum AccountSummary
	for _, r := range rows {
		switch r.Kind {
		case model.EntryIncome:
			sum.Income = tax.Round2(r.Total)
		case model.EntryExpense:
			sum.Expense = tax.Round2(r.Total)
		}
	}
	sum.Net = tax.Round2(sum.Income - sum.Expense)
	return sum, nil
}

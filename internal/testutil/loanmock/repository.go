package loanmock

import (
	"context"

	domain "agrifin-backend/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Writes default to a nil error, reads to context.Canceled.
type Repo struct {
	CreateFn           func(ctx context.Context, l *domain.Loan) error
	GetByIDFn          func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByIDForUpdateFn func(ctx context.Context, loanID string) (*domain.Loan, error)
	ListFn             func(ctx context.Context, f domain.Filter) ([]domain.Loan, error)
	CountByFarmerFn    func(ctx context.Context, farmerID string) (int64, error)
	UpdateStatusFn     func(ctx context.Context, l *domain.Loan) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, context.Canceled
}

func (m *Repo) CountByFarmer(ctx context.Context, farmerID string) (int64, error) {
	if m.CountByFarmerFn != nil {
		return m.CountByFarmerFn(ctx, farmerID)
	}
	return 0, context.Canceled
}

func (m *Repo) UpdateStatus(ctx context.Context, l *domain.Loan) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, l)
	}
	return nil
}

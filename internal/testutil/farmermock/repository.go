package farmermock

import (
	"context"

	domain "agrifin-backend/internal/domain/farmer"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Writes default to a nil error, reads to context.Canceled.
type Repo struct {
	CreateFn           func(ctx context.Context, f *domain.Farmer) error
	GetByIDFn          func(ctx context.Context, farmerID string) (*domain.Farmer, error)
	GetByIDForUpdateFn func(ctx context.Context, farmerID string) (*domain.Farmer, error)
	ListFn             func(ctx context.Context) ([]domain.Farmer, error)
	SaveFn             func(ctx context.Context, f *domain.Farmer) error
	UpdateLoanStatusFn func(ctx context.Context, farmerID string, status domain.LoanStatus) error
	DeleteFn           func(ctx context.Context, farmerID string) error
}

func (m *Repo) Create(ctx context.Context, f *domain.Farmer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, f)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, farmerID string) (*domain.Farmer, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, farmerID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, farmerID string) (*domain.Farmer, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, farmerID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.Farmer, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, f *domain.Farmer) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, f)
	}
	return nil
}

func (m *Repo) UpdateLoanStatus(ctx context.Context, farmerID string, status domain.LoanStatus) error {
	if m.UpdateLoanStatusFn != nil {
		return m.UpdateLoanStatusFn(ctx, farmerID, status)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, farmerID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, farmerID)
	}
	return nil
}

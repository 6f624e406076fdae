package productmock

import (
	"context"

	domain "agrifin-backend/internal/domain/product"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, p *domain.Product) error
	GetByIDFn            func(ctx context.Context, productID string) (*domain.Product, error)
	ListFn               func(ctx context.Context, f domain.Filter) ([]domain.Product, error)
	SaveFn               func(ctx context.Context, p *domain.Product) error
	UpdateStatusFn       func(ctx context.Context, productID string, status domain.Status) error
	IncrementViewsFn     func(ctx context.Context, productID string) error
	IncrementInquiriesFn func(ctx context.Context, productID string) error
	DeleteFn             func(ctx context.Context, productID string) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Product) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, productID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Product, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, p *domain.Product) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) UpdateStatus(ctx context.Context, productID string, status domain.Status) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, productID, status)
	}
	return nil
}

func (m *Repo) IncrementViews(ctx context.Context, productID string) error {
	if m.IncrementViewsFn != nil {
		return m.IncrementViewsFn(ctx, productID)
	}
	return nil
}

func (m *Repo) IncrementInquiries(ctx context.Context, productID string) error {
	if m.IncrementInquiriesFn != nil {
		return m.IncrementInquiriesFn(ctx, productID)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, productID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, productID)
	}
	return nil
}

package farmer

import "context"

type Repository interface {
	Create(ctx context.Context, f *Farmer) error
	GetByID(ctx context.Context, id string) (*Farmer, error)
	// GetByIDForUpdate locks the row when the dialect supports it.
	GetByIDForUpdate(ctx context.Context, id string) (*Farmer, error)
	List(ctx context.Context) ([]Farmer, error)
	Save(ctx context.Context, f *Farmer) error
	UpdateLoanStatus(ctx context.Context, id string, status LoanStatus) error
	Delete(ctx context.Context, id string) error
}

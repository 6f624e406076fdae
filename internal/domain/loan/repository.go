package loan

import "context"

type Filter struct {
	FarmerID string
	Status   Status
}

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id string) (*Loan, error)
	// GetByIDForUpdate locks the row when the dialect supports it and does
	// not populate the farmer.
	GetByIDForUpdate(ctx context.Context, id string) (*Loan, error)
	List(ctx context.Context, f Filter) ([]Loan, error)
	CountByFarmer(ctx context.Context, farmerID string) (int64, error)
	// UpdateStatus persists status and the lifecycle dates only.
	UpdateStatus(ctx context.Context, l *Loan) error
}

package product

import "context"

// Filter narrows List. Zero values are ignored; State and District match
// case-insensitively as substrings.
type Filter struct {
	Category Category
	State    string
	District string
	MinPrice *float64
	MaxPrice *float64
	Status   Status
}

type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, f Filter) ([]Product, error)
	Save(ctx context.Context, p *Product) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	// IncrementViews and IncrementInquiries are single atomic UPDATEs.
	IncrementViews(ctx context.Context, id string) error
	IncrementInquiries(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

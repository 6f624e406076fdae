package product

import (
	"context"

	"agrifin-backend/internal/domain/apperror"
	domain "agrifin-backend/internal/domain/product"

	"go.uber.org/zap"
)

type Usecase struct {
	products domain.Repository
	log      *zap.Logger
}

func NewUsecase(products domain.Repository, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{products: products, log: log}
}

// Input is the writable part of a listing. On update nil fields are left
// unchanged; on create they take the zero value or the schema default.
type Input struct {
	ProductName      *string
	Category         *domain.Category
	Quantity         *float64
	Unit             *domain.Unit
	Price            *float64
	Description      *string
	Location         *string
	District         *string
	State            *string
	Pincode          *string
	ContactName      *string
	ContactPhone     *string
	ContactEmail     *string
	DeliveryOptions  []domain.DeliveryOption
	OrganicCertified *bool
	Images           []string
	SellerID         *string
}

func (u *Usecase) List(ctx context.Context, f domain.Filter) ([]domain.Product, error) {
	return u.products.List(ctx, f)
}

// Get returns the listing after counting the view.
func (u *Usecase) Get(ctx context.Context, productID string) (*domain.Product, error) {
	if err := u.products.IncrementViews(ctx, productID); err != nil {
		return nil, err
	}
	return u.products.GetByID(ctx, productID)
}

func (u *Usecase) Create(ctx context.Context, in Input) (*domain.Product, error) {
	p := &domain.Product{}
	in.apply(p)
	p.Status = domain.StatusPending
	if err := u.products.Create(ctx, p); err != nil {
		return nil, err
	}
	u.log.Info("product listed", zap.String("product_id", p.ID), zap.String("category", string(p.Category)))
	return p, nil
}

func (u *Usecase) Update(ctx context.Context, productID string, in Input) (*domain.Product, error) {
	p, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	in.apply(p)
	if err := u.products.Save(ctx, p); err != nil {
		return nil, err
	}
	return u.products.GetByID(ctx, productID)
}

func (u *Usecase) Delete(ctx context.Context, productID string) error {
	return u.products.Delete(ctx, productID)
}

func (u *Usecase) UpdateStatus(ctx context.Context, productID string, status domain.Status) (*domain.Product, error) {
	if !status.Valid() {
		return nil, apperror.Invalid("status", "Invalid status")
	}
	// a missing listing is a 404
	if _, err := u.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	if err := u.products.UpdateStatus(ctx, productID, status); err != nil {
		return nil, err
	}
	return u.products.GetByID(ctx, productID)
}

func (u *Usecase) RecordInquiry(ctx context.Context, productID string) (*domain.Product, error) {
	if err := u.products.IncrementInquiries(ctx, productID); err != nil {
		return nil, err
	}
	return u.products.GetByID(ctx, productID)
}

func (in Input) apply(p *domain.Product) {
	set(&p.ProductName, in.ProductName)
	set(&p.Category, in.Category)
	set(&p.Quantity, in.Quantity)
	set(&p.Unit, in.Unit)
	set(&p.Price, in.Price)
	set(&p.Description, in.Description)
	set(&p.Location, in.Location)
	set(&p.District, in.District)
	set(&p.State, in.State)
	set(&p.Pincode, in.Pincode)
	set(&p.ContactName, in.ContactName)
	set(&p.ContactPhone, in.ContactPhone)
	set(&p.ContactEmail, in.ContactEmail)
	set(&p.OrganicCertified, in.OrganicCertified)
	if in.DeliveryOptions != nil {
		p.DeliveryOptions = in.DeliveryOptions
	}
	if in.Images != nil {
		p.Images = in.Images
	}
	if in.SellerID != nil {
		p.SellerID = in.SellerID
		p.Seller = nil
	}
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

package gormstore

import (
	"context"
	"strings"
	"time"

	"agrifin-backend/internal/domain/apperror"
	productDomain "agrifin-backend/internal/domain/product"
	"agrifin-backend/pkg/id"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{db: db} }

func (r *ProductRepository) Create(ctx context.Context, p *productDomain.Product) error {
	if p.ID == "" {
		p.ID = id.New()
	}
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error, "Product")
}

func (r *ProductRepository) GetByID(ctx context.Context, productID string) (*productDomain.Product, error) {
	var out productDomain.Product
	res := r.db.WithContext(ctx).Preload("Seller").Where("id = ?", productID).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, "Product")
	}
	return &out, nil
}

func (r *ProductRepository) List(ctx context.Context, f productDomain.Filter) ([]productDomain.Product, error) {
	q := r.db.WithContext(ctx).Preload("Seller")
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.State != "" {
		q = q.Where("LOWER(state) LIKE ? ESCAPE '!'", likePattern(f.State))
	}
	if f.District != "" {
		q = q.Where("LOWER(district) LIKE ? ESCAPE '!'", likePattern(f.District))
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	out := []productDomain.Product{}
	res := q.Order("created_at DESC, id").Find(&out)
	return out, res.Error
}

// Save writes the listing; the counters are only moved by the increment
// methods so a stale copy cannot roll them back.
func (r *ProductRepository) Save(ctx context.Context, p *productDomain.Product) error {
	res := r.db.WithContext(ctx).
		Omit(clause.Associations, "views", "inquiries", "created_at").
		Save(p)
	return translate(res.Error, "Product")
}

func (r *ProductRepository) UpdateStatus(ctx context.Context, productID string, status productDomain.Status) error {
	if !status.Valid() {
		return apperror.Invalid("status", "Invalid status")
	}
	res := noHooks(r.db.WithContext(ctx)).
		Model(&productDomain.Product{}).
		Where("id = ?", productID).
		Updates(map[string]any{"status": status, "updated_at": time.Now().UTC()})
	return res.Error
}

func (r *ProductRepository) IncrementViews(ctx context.Context, productID string) error {
	return r.increment(ctx, productID, "views")
}

func (r *ProductRepository) IncrementInquiries(ctx context.Context, productID string) error {
	return r.increment(ctx, productID, "inquiries")
}

func (r *ProductRepository) increment(ctx context.Context, productID, column string) error {
	res := r.db.WithContext(ctx).
		Model(&productDomain.Product{}).
		Where("id = ?", productID).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("Product")
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, productID string) error {
	res := r.db.WithContext(ctx).Where("id = ?", productID).Delete(&productDomain.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("Product")
	}
	return nil
}

// '!' is the LIKE escape character in the queries above.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// likePattern builds a case-insensitive substring match with the input's
// wildcards taken literally.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(s))) + "%"
}

package gormstore

import (
	"context"
	"time"

	"agrifin-backend/internal/domain/apperror"
	farmerDomain "agrifin-backend/internal/domain/farmer"
	"agrifin-backend/pkg/id"

	"gorm.io/gorm"
)

type FarmerRepository struct{ db *gorm.DB }

func NewFarmerRepository(db *gorm.DB) *FarmerRepository { return &FarmerRepository{db: db} }

func (r *FarmerRepository) Create(ctx context.Context, f *farmerDomain.Farmer) error {
	if f.ID == "" {
		f.ID = id.New()
	}
	return translate(r.db.WithContext(ctx).Create(f).Error, "Farmer")
}

func (r *FarmerRepository) GetByID(ctx context.Context, farmerID string) (*farmerDomain.Farmer, error) {
	var out farmerDomain.Farmer
	res := r.db.WithContext(ctx).Where("id = ?", farmerID).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, "Farmer")
	}
	return &out, nil
}

func (r *FarmerRepository) GetByIDForUpdate(ctx context.Context, farmerID string) (*farmerDomain.Farmer, error) {
	var out farmerDomain.Farmer
	res := forUpdate(r.db.WithContext(ctx)).Where("id = ?", farmerID).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, "Farmer")
	}
	return &out, nil
}

func (r *FarmerRepository) List(ctx context.Context) ([]farmerDomain.Farmer, error) {
	out := []farmerDomain.Farmer{}
	res := r.db.WithContext(ctx).Order("created_at DESC, id").Find(&out)
	return out, res.Error
}

// Save writes the profile. loan_status is owned by the loan workflow and is
// never written from here.
func (r *FarmerRepository) Save(ctx context.Context, f *farmerDomain.Farmer) error {
	return translate(r.db.WithContext(ctx).Omit("loan_status", "created_at").Save(f).Error, "Farmer")
}

func (r *FarmerRepository) UpdateLoanStatus(ctx context.Context, farmerID string, status farmerDomain.LoanStatus) error {
	if !farmerDomain.ValidLoanStatus(status) {
		return apperror.Invalid("loanStatus", "`"+string(status)+"` is not a valid loan status")
	}
	res := noHooks(r.db.WithContext(ctx)).
		Model(&farmerDomain.Farmer{}).
		Where("id = ?", farmerID).
		Updates(map[string]any{"loan_status": status, "updated_at": time.Now().UTC()})
	return res.Error
}

func (r *FarmerRepository) Delete(ctx context.Context, farmerID string) error {
	res := r.db.WithContext(ctx).Where("id = ?", farmerID).Delete(&farmerDomain.Farmer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("Farmer")
	}
	return nil
}

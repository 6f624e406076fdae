package gormstore

import (
	"context"
	"time"

	loanDomain "agrifin-backend/internal/domain/loan"
	"agrifin-backend/pkg/id"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	if l.ID == "" {
		l.ID = id.New()
	}
	// the populated farmer is read-only here
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(l).Error, "Loan")
}

func (r *LoanRepository) GetByID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Preload("Farmer").Where("id = ?", loanID).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, "Loan")
	}
	return &out, nil
}

func (r *LoanRepository) GetByIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := forUpdate(r.db.WithContext(ctx)).Where("id = ?", loanID).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, "Loan")
	}
	return &out, nil
}

func (r *LoanRepository) List(ctx context.Context, f loanDomain.Filter) ([]loanDomain.Loan, error) {
	q := r.db.WithContext(ctx).Preload("Farmer")
	if f.FarmerID != "" {
		q = q.Where("farmer_id = ?", f.FarmerID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	out := []loanDomain.Loan{}
	res := q.Order("applied_date DESC, id").Find(&out)
	return out, res.Error
}

func (r *LoanRepository) CountByFarmer(ctx context.Context, farmerID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).Where("farmer_id = ?", farmerID).Count(&n)
	return n, res.Error
}

// UpdateStatus writes status and the lifecycle dates. ai_score and the
// requested terms are never rewritten after creation.
func (r *LoanRepository) UpdateStatus(ctx context.Context, l *loanDomain.Loan) error {
	if !l.Status.Valid() {
		return loanDomain.ErrInvalidStatus
	}
	now := time.Now().UTC()
	res := noHooks(r.db.WithContext(ctx)).
		Model(&loanDomain.Loan{}).
		Where("id = ?", l.ID).
		Updates(map[string]any{
			"status":            l.Status,
			"approval_date":     l.ApprovalDate,
			"disbursement_date": l.DisbursementDate,
			"updated_at":        now,
		})
	if res.Error != nil {
		return res.Error
	}
	l.UpdatedAt = now
	return nil
}

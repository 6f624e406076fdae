package loan

import (
	"context"
	"time"

	"agrifin-backend/internal/domain/farmer"
	domain "agrifin-backend/internal/domain/loan"
	"agrifin-backend/internal/domain/uow"

	"go.uber.org/zap"
)

type Usecase struct {
	loans   domain.Repository
	uow     uow.UnitOfWork
	metrics *Metrics
	log     *zap.Logger
	now     func() time.Time
}

// NewUsecase: loans serves reads, tx runs every write that also touches
// the farmer. metrics may be nil.
func NewUsecase(loans domain.Repository, tx uow.UnitOfWork, metrics *Metrics, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{
		loans:   loans,
		uow:     tx,
		metrics: metrics,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

type CreateInput struct {
	FarmerID     string
	LoanAmount   float64
	InterestRate float64
	Tenure       int
	Purpose      domain.Purpose
}

// Create scores and records a loan application and marks the farmer as
// Applied. Nothing is written when the farmer does not exist.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*domain.Loan, error) {
	var created *domain.Loan

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		f, err := r.Farmers.GetByIDForUpdate(ctx, in.FarmerID)
		if err != nil {
			return err
		}

		l := &domain.Loan{
			FarmerID:     f.ID,
			LoanAmount:   in.LoanAmount,
			InterestRate: in.InterestRate,
			Tenure:       in.Tenure,
			Purpose:      in.Purpose,
			Status:       domain.StatusPending,
			AppliedDate:  u.now(),
			AIScore:      domain.Score(f.CreditScore, f.LandSize, in.LoanAmount),
		}
		if err := l.Validate(); err != nil {
			return err
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}

		if err := r.Farmers.UpdateLoanStatus(ctx, f.ID, farmer.LoanStatusApplied); err != nil {
			return err
		}
		f.LoanStatus = farmer.LoanStatusApplied
		l.Farmer = f
		created = l
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.metrics.loanCreated()
	u.log.Info("loan application created",
		zap.String("loan_id", created.ID),
		zap.String("farmer_id", created.FarmerID),
		zap.Int("ai_score", created.AIScore),
	)
	return created, nil
}

// UpdateStatus moves a loan along the lifecycle, stamps the matching date
// and mirrors the result onto the farmer. A farmer that no longer exists
// is skipped.
func (u *Usecase) UpdateStatus(ctx context.Context, loanID string, next domain.Status) (*domain.Loan, error) {
	var prev domain.Status

	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if err := l.Status.CheckTransition(next); err != nil {
			return err
		}
		prev = l.Status

		now := u.now()
		l.Status = next
		switch next {
		case domain.StatusApproved:
			l.ApprovalDate = &now
		case domain.StatusDisbursed:
			l.DisbursementDate = &now
		}
		if err := r.Loans.UpdateStatus(ctx, l); err != nil {
			return err
		}
		return r.Farmers.UpdateLoanStatus(ctx, l.FarmerID, next.FarmerStatus())
	})
	if err != nil {
		return nil, err
	}

	u.metrics.transitioned(string(next))
	u.log.Info("loan status changed",
		zap.String("loan_id", loanID),
		zap.String("from", string(prev)),
		zap.String("to", string(next)),
	)
	return u.loans.GetByID(ctx, loanID)
}

func (u *Usecase) List(ctx context.Context, f domain.Filter) ([]domain.Loan, error) {
	return u.loans.List(ctx, f)
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*domain.Loan, error) {
	return u.loans.GetByID(ctx, loanID)
}

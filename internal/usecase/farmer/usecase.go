package farmer

import (
	"context"
	"errors"
	"strings"
	"time"

	"agrifin-backend/internal/domain/apperror"
	domain "agrifin-backend/internal/domain/farmer"
	"agrifin-backend/internal/domain/uow"

	"go.uber.org/zap"
)

var (
	errDuplicateContact = apperror.Duplicate("Email or phone already exists")
	errHasLoans         = apperror.Conflict("Farmer has existing loan applications")
)

type Usecase struct {
	farmers domain.Repository
	uow     uow.UnitOfWork
	log     *zap.Logger
}

func NewUsecase(farmers domain.Repository, tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{farmers: farmers, uow: tx, log: log}
}

type CreateInput struct {
	Name        string
	Email       string
	Phone       string
	Address     domain.Address
	LandSize    float64
	CropType    domain.CropType
	CreditScore int
}

// UpdateInput carries the editable fields; nil means unchanged. The loan
// status is owned by the loan workflow and cannot be set here.
type UpdateInput struct {
	Name        *string
	Email       *string
	Phone       *string
	Address     *domain.Address
	LandSize    *float64
	CropType    *domain.CropType
	CreditScore *int
}

func (u *Usecase) List(ctx context.Context) ([]domain.Farmer, error) {
	return u.farmers.List(ctx)
}

func (u *Usecase) Get(ctx context.Context, farmerID string) (*domain.Farmer, error) {
	return u.farmers.GetByID(ctx, farmerID)
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*domain.Farmer, error) {
	f := &domain.Farmer{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		LandSize:    in.LandSize,
		CropType:    in.CropType,
		LoanStatus:  domain.LoanStatusNone,
		CreditScore: in.CreditScore,
	}
	if err := u.farmers.Create(ctx, f); err != nil {
		return nil, mapDuplicate(err)
	}
	u.log.Info("farmer registered", zap.String("farmer_id", f.ID))
	return f, nil
}

func (u *Usecase) Update(ctx context.Context, farmerID string, in UpdateInput) (*domain.Farmer, error) {
	f, err := u.farmers.GetByID(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	in.apply(f)
	if err := u.farmers.Save(ctx, f); err != nil {
		return nil, mapDuplicate(err)
	}
	return f, nil
}

// Delete removes a farmer that has no loan applications.
func (u *Usecase) Delete(ctx context.Context, farmerID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Farmers.GetByIDForUpdate(ctx, farmerID); err != nil {
			return err
		}
		n, err := r.Loans.CountByFarmer(ctx, farmerID)
		if err != nil {
			return err
		}
		if n > 0 {
			return errHasLoans
		}
		return r.Farmers.Delete(ctx, farmerID)
	})
}

// AddRecommendation appends a timestamped advisory note to the farmer.
func (u *Usecase) AddRecommendation(ctx context.Context, farmerID, text string) (*domain.Farmer, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperror.Invalid("text", "Recommendation text is required")
	}
	var out *domain.Farmer
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		f, err := r.Farmers.GetByIDForUpdate(ctx, farmerID)
		if err != nil {
			return err
		}
		f.AIRecommendations = append(f.AIRecommendations, domain.Recommendation{
			Text:      text,
			Timestamp: time.Now().UTC(),
		})
		if err := r.Farmers.Save(ctx, f); err != nil {
			return err
		}
		out = f
		return nil
	})
	return out, err
}

func (in UpdateInput) apply(f *domain.Farmer) {
	if in.Name != nil {
		f.Name = *in.Name
	}
	if in.Email != nil {
		f.Email = *in.Email
	}
	if in.Phone != nil {
		f.Phone = *in.Phone
	}
	if in.Address != nil {
		f.Address = *in.Address
	}
	if in.LandSize != nil {
		f.LandSize = *in.LandSize
	}
	if in.CropType != nil {
		f.CropType = *in.CropType
	}
	if in.CreditScore != nil {
		f.CreditScore = *in.CreditScore
	}
}

func mapDuplicate(err error) error {
	if errors.Is(err, apperror.ErrDuplicate) {
		return errDuplicateContact
	}
	return err
}

package uow

import (
	"context"

	"agrifin-backend/internal/domain/farmer"
	"agrifin-backend/internal/domain/loan"
)

// Repos are bound to the transaction opened by WithinTx.
type Repos struct {
	Farmers farmer.Repository
	Loans   loan.Repository
}

type UnitOfWork interface {
	// plain tx; fn's error rolls back
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock loan first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}

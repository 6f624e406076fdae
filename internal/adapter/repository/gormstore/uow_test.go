package gormstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"agrifin-backend/internal/domain/apperror"
	farmerDomain "agrifin-backend/internal/domain/farmer"
	loanDomain "agrifin-backend/internal/domain/loan"
	"agrifin-backend/internal/domain/uow"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	farmers := NewFarmerRepository(db)
	f := makeFarmer("u1@example.com", "9200000001")
	if err := farmers.Create(ctx, f); err != nil {
		t.Fatalf("create farmer: %v", err)
	}

	var loanID string
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		l := makeLoan(f.ID)
		l.AppliedDate = time.Now().UTC()
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		loanID = l.ID
		return r.Farmers.UpdateLoanStatus(ctx, f.ID, farmerDomain.LoanStatusApplied)
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	// Verify post-commit visibility
	if _, err := NewLoanRepository(db).GetByID(ctx, loanID); err != nil {
		t.Fatalf("loan not visible after commit: %v", err)
	}
	got, _ := farmers.GetByID(ctx, f.ID)
	if got.LoanStatus != farmerDomain.LoanStatusApplied {
		t.Fatalf("farmer status = %s", got.LoanStatus)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	farmers := NewFarmerRepository(db)
	f := makeFarmer("u2@example.com", "9200000002")
	_ = farmers.Create(ctx, f)

	sentinel := errors.New("farmer mirror failed")
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		l := makeLoan(f.ID)
		l.AppliedDate = time.Now().UTC()
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("want sentinel, got %v", err)
	}

	n, _ := NewLoanRepository(db).CountByFarmer(ctx, f.ID)
	if n != 0 {
		t.Fatalf("loan insert was not rolled back (count=%d)", n)
	}
}

func TestGormUoW_WithinLoanTx(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	f := makeFarmer("u3@example.com", "9200000003")
	_ = NewFarmerRepository(db).Create(ctx, f)
	l := makeLoan(f.ID)
	l.AppliedDate = time.Now().UTC()
	if err := NewLoanRepository(db).Create(ctx, l); err != nil {
		t.Fatalf("create loan: %v", err)
	}

	err := guow.WithinLoanTx(ctx, l.ID, func(r uow.Repos, locked *loanDomain.Loan) error {
		if locked.ID != l.ID {
			t.Fatalf("locked wrong loan: %s", locked.ID)
		}
		locked.Status = loanDomain.StatusRejected
		return r.Loans.UpdateStatus(ctx, locked)
	})
	if err != nil {
		t.Fatalf("WithinLoanTx: %v", err)
	}
	got, _ := NewLoanRepository(db).GetByID(ctx, l.ID)
	if got.Status != loanDomain.StatusRejected {
		t.Fatalf("status = %s", got.Status)
	}

	err = guow.WithinLoanTx(ctx, "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee", func(uow.Repos, *loanDomain.Loan) error {
		t.Fatal("fn must not run for a missing loan")
		return nil
	})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

package gormstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"agrifin-backend/internal/domain/apperror"
	loanDomain "agrifin-backend/internal/domain/loan"
)

func TestLoan_CreateGetWithFarmer(t *testing.T) {
	db := openTestDB(t)
	farmers := NewFarmerRepository(db)
	loans := NewLoanRepository(db)
	ctx := context.Background()

	f := makeFarmer("l1@example.com", "9100000001")
	if err := farmers.Create(ctx, f); err != nil {
		t.Fatalf("create farmer: %v", err)
	}
	l := makeLoan(f.ID)
	l.AppliedDate = time.Now().UTC()
	if err := loans.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := loans.GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Farmer == nil || got.Farmer.Email != "l1@example.com" {
		t.Fatalf("farmer not populated: %+v", got.Farmer)
	}
	if got.AIScore != 95 || got.Status != loanDomain.StatusPending {
		t.Errorf("unexpected loan: %+v", got)
	}

	locked, err := loans.GetByIDForUpdate(ctx, l.ID)
	if err != nil || locked.Farmer != nil {
		t.Fatalf("GetByIDForUpdate: %v, farmer=%v", err, locked)
	}

	if _, err := loans.GetByID(ctx, "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestLoan_CreateValidation(t *testing.T) {
	db := openTestDB(t)
	loans := NewLoanRepository(db)

	l := makeLoan("ffffffffffffffffffffffffffffffff")
	l.LoanAmount = 500
	l.Purpose = "Holiday"
	err := loans.Create(context.Background(), l)
	if !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	var n int64
	db.Model(&loanDomain.Loan{}).Count(&n)
	if n != 0 {
		t.Fatalf("invalid loan was inserted")
	}
}

func TestLoan_UpdateStatusKeepsScore(t *testing.T) {
	db := openTestDB(t)
	farmers := NewFarmerRepository(db)
	loans := NewLoanRepository(db)
	ctx := context.Background()

	f := makeFarmer("l2@example.com", "9100000002")
	_ = farmers.Create(ctx, f)
	l := makeLoan(f.ID)
	l.AppliedDate = time.Now().UTC()
	if err := loans.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	now := time.Now().UTC()
	l.Status = loanDomain.StatusApproved
	l.ApprovalDate = &now
	l.AIScore = 10 // must not be written
	if err := loans.UpdateStatus(ctx, l); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	got, _ := loans.GetByID(ctx, l.ID)
	if got.Status != loanDomain.StatusApproved || got.ApprovalDate == nil {
		t.Fatalf("status/date not stored: %+v", got)
	}
	if got.DisbursementDate != nil {
		t.Errorf("disbursement date must stay unset")
	}
	if got.AIScore != 95 {
		t.Errorf("ai score rewritten: %d", got.AIScore)
	}

	l.Status = "Paid"
	if err := loans.UpdateStatus(ctx, l); !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("want validation error for out-of-enum status, got %v", err)
	}
}

func TestLoan_ListFilterAndCount(t *testing.T) {
	db := openTestDB(t)
	farmers := NewFarmerRepository(db)
	loans := NewLoanRepository(db)
	ctx := context.Background()

	a := makeFarmer("l3@example.com", "9100000003")
	b := makeFarmer("l4@example.com", "9100000004")
	_ = farmers.Create(ctx, a)
	_ = farmers.Create(ctx, b)
	for i, fid := range []string{a.ID, a.ID, b.ID} {
		l := makeLoan(fid)
		l.AppliedDate = time.Now().UTC().Add(time.Duration(i) * time.Minute)
		if i == 1 {
			l.Status = loanDomain.StatusRejected
		}
		if err := loans.Create(ctx, l); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	all, err := loans.List(ctx, loanDomain.Filter{})
	if err != nil || len(all) != 3 {
		t.Fatalf("List: %v (%d)", err, len(all))
	}
	if all[0].FarmerID != b.ID {
		t.Errorf("want newest first")
	}
	for _, l := range all {
		if l.Farmer == nil {
			t.Fatalf("farmer not populated on list")
		}
	}

	mine, _ := loans.List(ctx, loanDomain.Filter{FarmerID: a.ID, Status: loanDomain.StatusPending})
	if len(mine) != 1 {
		t.Fatalf("filtered list = %d, want 1", len(mine))
	}

	n, err := loans.CountByFarmer(ctx, a.ID)
	if err != nil || n != 2 {
		t.Fatalf("CountByFarmer = %d, %v", n, err)
	}
}

package gormstore

import (
	"path/filepath"
	"testing"

	farmerDomain "agrifin-backend/internal/domain/farmer"
	loanDomain "agrifin-backend/internal/domain/loan"
	productDomain "agrifin-backend/internal/domain/product"
	dbinfra "agrifin-backend/internal/infrastructure/db"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates a file-backed sqlite DB per test (so every pooled
// connection sees the same schema) and migrates the real domain models.
// The busy timeout lets concurrent writers queue instead of failing.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := dbinfra.Migrate(db); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func makeFarmer(email, phone string) *farmerDomain.Farmer {
	return &farmerDomain.Farmer{
		Name:        "Ramesh Patel",
		Email:       email,
		Phone:       phone,
		Address:     farmerDomain.Address{Village: "Kotda", District: "Rajkot", State: "Gujarat", Pincode: "360001"},
		LandSize:    4,
		CropType:    farmerDomain.CropWheat,
		CreditScore: 720,
	}
}

func makeLoan(farmerID string) *loanDomain.Loan {
	return &loanDomain.Loan{
		FarmerID:     farmerID,
		LoanAmount:   80000,
		InterestRate: 8,
		Tenure:       12,
		Purpose:      loanDomain.PurposeSeeds,
		Status:       loanDomain.StatusPending,
		AIScore:      95,
	}
}

func makeProduct(name string, category productDomain.Category, price float64, district, state string) *productDomain.Product {
	return &productDomain.Product{
		ProductName:  name,
		Category:     category,
		Quantity:     100,
		Unit:         "kg",
		Price:        price,
		Location:     district,
		District:     district,
		State:        state,
		Pincode:      "360001",
		ContactName:  "Ramesh Patel",
		ContactPhone: "9876543210",
	}
}

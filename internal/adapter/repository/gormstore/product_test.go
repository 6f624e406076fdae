package gormstore

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"agrifin-backend/internal/domain/apperror"
	productDomain "agrifin-backend/internal/domain/product"
	userDomain "agrifin-backend/internal/domain/user"
)

func seedProducts(t *testing.T, repo *ProductRepository) {
	t.Helper()
	ctx := context.Background()
	items := []*productDomain.Product{
		makeProduct("Fresh Tomatoes", productDomain.CategoryVegetables, 40, "Rajkot", "Gujarat"),
		makeProduct("Organic Rice", productDomain.CategoryGrains, 50, "Ahmedabad", "Gujarat"),
		makeProduct("Fresh Wheat", productDomain.CategoryGrains, 25, "Ludhiana", "Punjab"),
	}
	items[1].Status = productDomain.StatusApproved
	for _, p := range items {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create %s: %v", p.ProductName, err)
		}
	}
}

func TestProduct_ListFilters(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	seedProducts(t, repo)
	ctx := context.Background()

	min30, max45 := 30.0, 45.0
	tests := []struct {
		name   string
		filter productDomain.Filter
		want   int
	}{
		{"no filter", productDomain.Filter{}, 3},
		{"category", productDomain.Filter{Category: productDomain.CategoryGrains}, 2},
		{"state case-insensitive", productDomain.Filter{State: "gujar"}, 2},
		{"district", productDomain.Filter{District: "LUDHI"}, 1},
		{"status", productDomain.Filter{Status: productDomain.StatusApproved}, 1},
		{"min price", productDomain.Filter{MinPrice: &min30}, 2},
		{"price range", productDomain.Filter{MinPrice: &min30, MaxPrice: &max45}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(got) != tt.want {
				t.Fatalf("got %d products, want %d", len(got), tt.want)
			}
		})
	}
}

func TestProduct_CountersAreAtomic(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	p := makeProduct("Mangoes", productDomain.CategoryFruits, 120, "Ratnagiri", "Maharashtra")
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.IncrementInquiries(ctx, p.ID); err != nil {
				t.Errorf("IncrementInquiries: %v", err)
			}
		}()
	}
	wg.Wait()
	if err := repo.IncrementViews(ctx, p.ID); err != nil {
		t.Fatalf("IncrementViews: %v", err)
	}

	got, _ := repo.GetByID(ctx, p.ID)
	if got.Inquiries != n || got.Views != 1 {
		t.Fatalf("inquiries=%d views=%d", got.Inquiries, got.Views)
	}

	// a stale copy saved later must not roll the counters back
	p.Price = 130
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, _ = repo.GetByID(ctx, p.ID)
	if got.Price != 130 || got.Inquiries != n {
		t.Fatalf("after save price=%v inquiries=%d", got.Price, got.Inquiries)
	}

	if err := repo.IncrementViews(ctx, "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestProduct_StatusSellerAndDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	seller := &userDomain.User{Name: "Suresh", Email: "suresh@example.com", PasswordHash: "x"}
	if err := users.Create(ctx, seller); err != nil {
		t.Fatalf("create user: %v", err)
	}
	p := makeProduct("Turmeric", productDomain.CategorySpices, 200, "Erode", "Tamil Nadu")
	p.SellerID = &seller.ID
	p.DeliveryOptions = []productDomain.DeliveryOption{"farm-pickup", "nationwide"}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.UpdateStatus(ctx, p.ID, productDomain.StatusSold); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if err := repo.UpdateStatus(ctx, p.ID, "archived"); !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("want validation error, got %v", err)
	}

	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != productDomain.StatusSold {
		t.Errorf("status = %s", got.Status)
	}
	if got.Seller == nil || got.Seller.Email != "suresh@example.com" {
		t.Errorf("seller not populated: %+v", got.Seller)
	}
	if len(got.DeliveryOptions) != 2 {
		t.Errorf("delivery options = %v", got.DeliveryOptions)
	}

	if err := repo.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, p.ID); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestProduct_ListFilterWildcardsAreLiteral(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	seedProducts(t, repo)
	ctx := context.Background()
	if err := repo.Create(ctx, makeProduct("Jaggery", productDomain.CategoryOther, 60, "Kolhapur_East", "Maha%rashtra")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	tests := []struct {
		name   string
		filter productDomain.Filter
		want   int
	}{
		{"percent alone matches nothing", productDomain.Filter{District: "%"}, 0},
		{"underscore alone matches nothing", productDomain.Filter{State: "_"}, 0},
		{"literal percent", productDomain.Filter{State: "maha%ra"}, 1},
		{"literal underscore", productDomain.Filter{District: "pur_e"}, 1},
		{"underscore is not any char", productDomain.Filter{District: "rajko_"}, 0},
		{"escape char is literal", productDomain.Filter{State: "!"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(got) != tt.want {
				t.Fatalf("got %d products, want %d", len(got), tt.want)
			}
		})
	}
}

func TestProduct_JSONColumns(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	cols, err := db.Migrator().ColumnTypes(&productDomain.Product{})
	if err != nil {
		t.Fatalf("ColumnTypes: %v", err)
	}
	for _, c := range cols {
		switch c.Name() {
		case "images", "delivery_options":
			if !strings.EqualFold(c.DatabaseTypeName(), "json") {
				t.Errorf("%s column type = %s, want JSON", c.Name(), c.DatabaseTypeName())
			}
		}
	}

	photo := "data:image/jpeg;base64," + strings.Repeat("A", 100<<10)
	p := makeProduct("Saffron", productDomain.CategorySpices, 900, "Pampore", "Kashmir")
	p.Images = []string{photo, "https://example.com/saffron.jpg"}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Images) != 2 || got.Images[0] != photo {
		t.Fatalf("images did not round-trip: %d entries", len(got.Images))
	}
	if got.DeliveryOptions == nil || len(got.DeliveryOptions) != 0 {
		t.Errorf("delivery options = %v, want empty list", got.DeliveryOptions)
	}
}

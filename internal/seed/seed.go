// Package seed loads the demo marketplace listings and accounts.
package seed

import (
	"context"
	"errors"

	"agrifin-backend/internal/adapter/repository/gormstore"
	"agrifin-backend/internal/domain/apperror"
	"agrifin-backend/internal/domain/product"
	"agrifin-backend/internal/domain/user"
	"agrifin-backend/pkg/password"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Result struct {
	Products int
	Users    int
}

type account struct {
	name, email, password string
	role                  user.Role
}

var accounts = []account{
	{"Admin User", "admin@agrifin.com", "admin123", user.RoleAdmin},
	{"John Farmer", "john@example.com", "password123", user.RoleFarmer},
	{"Priya Singh", "priya@example.com", "password123", user.RoleBuyer},
	{"Rahul Verma", "rahul@example.com", "password123", user.RoleFarmer},
	{"Anjali Desai", "anjali@example.com", "password123", user.RoleBuyer},
}

type place struct{ location, district, state, pincode string }

func listing(name string, cat product.Category, qty float64, unit product.Unit, price float64, desc string, at place, contact, phone, email string, status product.Status, images ...string) product.Product {
	return product.Product{
		ProductName:  name,
		Category:     cat,
		Quantity:     qty,
		Unit:         unit,
		Price:        price,
		Description:  desc,
		Location:     at.location,
		District:     at.district,
		State:        at.state,
		Pincode:      at.pincode,
		ContactName:  contact,
		ContactPhone: phone,
		ContactEmail: email,
		Status:       status,
		Images:       images,
	}
}

// Products returns the sample listings. Each call builds fresh values.
func Products() []product.Product {
	return []product.Product{
		listing("Fresh Tomatoes", product.CategoryVegetables, 100, "kg", 40, "Fresh organic tomatoes directly from farm",
			place{"Rajkot", "Rajkot", "Gujarat", "360001"}, "Ramesh Patel", "9876543210", "ramesh@example.com", product.StatusApproved,
			"https://images.unsplash.com/photo-1546470427-227a5e20df8e?w=400",
			"https://images.unsplash.com/photo-1561136594-7f68413baa99?w=400"),
		listing("Organic Rice", product.CategoryGrains, 500, "kg", 50, "Premium quality organic basmati rice",
			place{"Ahmedabad", "Ahmedabad", "Gujarat", "380001"}, "Suresh Kumar", "9876543211", "suresh@example.com", product.StatusApproved,
			"https://images.unsplash.com/photo-1586201375761-83865001e31c?w=400"),
		listing("Fresh Wheat", product.CategoryGrains, 1000, "kg", 25, "Quality wheat grains from Punjab farms",
			place{"Ludhiana", "Ludhiana", "Punjab", "141001"}, "Harpreet Singh", "9876543212", "harpreet@example.com", product.StatusPending,
			"https://images.unsplash.com/photo-1574323347407-f5e1ad6d020b?w=400"),
		listing("Fresh Potatoes", product.CategoryVegetables, 200, "kg", 20, "Fresh farm potatoes, best quality",
			place{"Bangalore", "Bangalore Urban", "Karnataka", "560001"}, "Rajesh Reddy", "9876543213", "rajesh@example.com", product.StatusApproved,
			"https://images.unsplash.com/photo-1518977676601-b53f82aba655?w=400"),
		listing("Fresh Onions", product.CategoryVegetables, 150, "kg", 30, "Red onions, premium quality",
			place{"Nashik", "Nashik", "Maharashtra", "422001"}, "Amit Sharma", "9876543214", "amit@example.com", product.StatusPending,
			"https://images.unsplash.com/photo-1587500241088-b3c6c7af5c94?w=400"),
		listing("Fresh Mangoes", product.CategoryFruits, 80, "kg", 100, "Alphonso mangoes from Konkan region",
			place{"Ratnagiri", "Ratnagiri", "Maharashtra", "415612"}, "Prakash Patil", "9876543215", "prakash@example.com", product.StatusApproved,
			"https://images.unsplash.com/photo-1553279768-865429fa0078?w=400"),
		listing("Fresh Milk", product.CategoryDairy, 50, "liter", 60, "Pure cow milk, hygienically packed",
			place{"Anand", "Anand", "Gujarat", "388001"}, "Mukesh Patel", "9876543216", "mukesh@example.com", product.StatusApproved,
			"https://images.unsplash.com/photo-1550583724-b2692b85b150?w=400"),
		listing("Organic Honey", product.CategoryOther, 30, "kg", 400, "Pure organic honey from Himalayan region",
			place{"Shimla", "Shimla", "Himachal Pradesh", "171001"}, "Anil Kumar", "9876543217", "anil@example.com", product.StatusRejected,
			"https://images.unsplash.com/photo-1587049352846-4a222e784422?w=400"),
	}
}

// Run inserts the sample data in one transaction. With reset the products
// and users tables are emptied first. Without it, listings are only added to
// an empty catalogue and accounts whose email exists are skipped.
func Run(ctx context.Context, db *gorm.DB, reset bool, log *zap.Logger) (Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var res Result
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if reset {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&product.Product{}).Error; err != nil {
				return err
			}
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&user.User{}).Error; err != nil {
				return err
			}
			log.Info("cleared products and users")
		}

		var existing int64
		if err := tx.Model(&product.Product{}).Count(&existing).Error; err != nil {
			return err
		}
		if existing == 0 {
			products := gormstore.NewProductRepository(tx)
			for _, p := range Products() {
				if err := products.Create(ctx, &p); err != nil {
					return err
				}
				res.Products++
			}
		}

		users := gormstore.NewUserRepository(tx)
		for _, a := range accounts {
			_, err := users.GetByEmail(ctx, a.email)
			if err == nil {
				continue
			}
			if !errors.Is(err, apperror.ErrNotFound) {
				return err
			}
			hash, err := password.Hash(a.password)
			if err != nil {
				return err
			}
			if err := users.Create(ctx, &user.User{Name: a.name, Email: a.email, PasswordHash: hash, Role: a.role, IsActive: true}); err != nil {
				return err
			}
			res.Users++
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	log.Info("seed complete", zap.Int("products", res.Products), zap.Int("users", res.Users))
	return res, nil
}

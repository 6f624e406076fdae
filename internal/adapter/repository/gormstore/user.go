package gormstore

import (
	"context"
	"strings"

	"agrifin-backend/internal/domain/apperror"
	userDomain "agrifin-backend/internal/domain/user"
	"agrifin-backend/pkg/id"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	if u.ID == "" {
		u.ID = id.New()
	}
	return translate(r.db.WithContext(ctx).Create(u).Error, "User")
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("id = ?", userID).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, "User")
	}
	return &out, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, "User")
	}
	return &out, nil
}

func (r *UserRepository) List(ctx context.Context) ([]userDomain.User, error) {
	out := []userDomain.User{}
	res := r.db.WithContext(ctx).Order("created_at DESC, id").Find(&out)
	return out, res.Error
}

func (r *UserRepository) Save(ctx context.Context, u *userDomain.User) error {
	return translate(r.db.WithContext(ctx).Omit("created_at").Save(u).Error, "User")
}

func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	res := r.db.WithContext(ctx).Where("id = ?", userID).Delete(&userDomain.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("User")
	}
	return nil
}

package user

import (
	"regexp"
	"strings"
	"time"

	"agrifin-backend/internal/domain/apperror"

	"gorm.io/gorm"
)

type Role string

const (
	RoleFarmer Role = "farmer"
	RoleBuyer  Role = "buyer"
	RoleAdmin  Role = "admin"
)

var reEmail = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Table: users
type User struct {
	ID           string     `gorm:"primaryKey;size:32" json:"_id"`
	Name         string     `gorm:"size:160;not null" json:"name"`
	Email        string     `gorm:"size:191;not null;uniqueIndex:ux_users_email" json:"email"`
	Phone        string     `gorm:"size:20" json:"phone,omitempty"`
	PasswordHash string     `gorm:"size:100;not null" json:"-"`
	Role         Role       `gorm:"size:16;not null;default:'farmer'" json:"role"`
	IsActive     bool       `gorm:"not null;default:true" json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

func (u *User) Validate() error {
	v := &apperror.ValidationError{}
	if strings.TrimSpace(u.Name) == "" {
		v.Add("name", "Name is required")
	}
	if !reEmail.MatchString(u.Email) {
		v.Add("email", "Please provide a valid email")
	}
	if u.PasswordHash == "" {
		v.Add("password", "Password is required")
	}
	if !u.Role.Valid() {
		v.Add("role", "`"+string(u.Role)+"` is not a valid role")
	}
	return v.OrNil()
}

func (u *User) BeforeSave(*gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Role == "" {
		u.Role = RoleFarmer
	}
	return u.Validate()
}

func (r Role) Valid() bool {
	return r == RoleFarmer || r == RoleBuyer || r == RoleAdmin
}

package auth

import (
	"context"
	"errors"
	"time"

	"agrifin-backend/internal/domain/apperror"
	domain "agrifin-backend/internal/domain/user"
	"agrifin-backend/pkg/password"
	"agrifin-backend/pkg/token"

	"go.uber.org/zap"
)

var (
	errBadCredentials = apperror.Unauthorized("Invalid email or password")
	errDisabled       = apperror.Unauthorized("User account is disabled")
	errBadToken       = apperror.Unauthorized("Invalid or expired token")
	errUnknownUser    = apperror.Unauthorized("User not found")
)

type Usecase struct {
	users  domain.Repository
	tokens *token.Issuer
	log    *zap.Logger
	now    func() time.Time
}

func NewUsecase(users domain.Repository, tokens *token.Issuer, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{users: users, tokens: tokens, log: log, now: func() time.Time { return time.Now().UTC() }}
}

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     domain.Role
}

type ProfileInput struct {
	Name  *string
	Phone *string
}

// Session is what register and login hand back to the client.
type Session struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	if in.Role == domain.RoleAdmin {
		return nil, apperror.Invalid("role", "Admin accounts cannot be self-registered")
	}
	hash, err := hashPassword("password", in.Password)
	if err != nil {
		return nil, err
	}
	usr := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
		Role:         in.Role,
		IsActive:     true,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		if errors.Is(err, apperror.ErrDuplicate) {
			return nil, apperror.Duplicate("User already exists with this email")
		}
		return nil, err
	}
	u.log.Info("user registered", zap.String("user_id", usr.ID), zap.String("role", string(usr.Role)))
	return u.session(usr)
}

func (u *Usecase) Login(ctx context.Context, email, plain string) (*Session, error) {
	usr, err := u.users.GetByEmail(ctx, email)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, errBadCredentials
	}
	if err != nil {
		return nil, err
	}
	if !password.Matches(usr.PasswordHash, plain) {
		return nil, errBadCredentials
	}
	if !usr.IsActive {
		return nil, errDisabled
	}

	now := u.now()
	usr.LastLogin = &now
	if err := u.users.Save(ctx, usr); err != nil {
		return nil, err
	}
	return u.session(usr)
}

// Authenticate resolves a bearer token to an active user.
func (u *Usecase) Authenticate(ctx context.Context, raw string) (*domain.User, error) {
	claims, err := u.tokens.Parse(raw)
	if err != nil {
		return nil, errBadToken
	}
	usr, err := u.users.GetByID(ctx, claims.UserID)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, errUnknownUser
	}
	if err != nil {
		return nil, err
	}
	if !usr.IsActive {
		return nil, errDisabled
	}
	return usr, nil
}

func (u *Usecase) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return u.users.GetByID(ctx, userID)
}

func (u *Usecase) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*domain.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		usr.Name = *in.Name
	}
	if in.Phone != nil {
		usr.Phone = *in.Phone
	}
	if err := u.users.Save(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

func (u *Usecase) ChangePassword(ctx context.Context, userID, current, next string) error {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !password.Matches(usr.PasswordHash, current) {
		return apperror.Unauthorized("Current password is incorrect")
	}
	hash, err := hashPassword("newPassword", next)
	if err != nil {
		return err
	}
	usr.PasswordHash = hash
	return u.users.Save(ctx, usr)
}

func (u *Usecase) ListUsers(ctx context.Context) ([]domain.User, error) {
	return u.users.List(ctx)
}

func (u *Usecase) DeleteUser(ctx context.Context, userID string) error {
	return u.users.Delete(ctx, userID)
}

// ToggleStatus flips isActive and returns the updated user.
func (u *Usecase) ToggleStatus(ctx context.Context, userID string) (*domain.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	usr.IsActive = !usr.IsActive
	if err := u.users.Save(ctx, usr); err != nil {
		return nil, err
	}
	u.log.Info("user status changed", zap.String("user_id", usr.ID), zap.Bool("active", usr.IsActive))
	return usr, nil
}

func (u *Usecase) session(usr *domain.User) (*Session, error) {
	tok, err := u.tokens.Issue(usr.ID, string(usr.Role))
	if err != nil {
		return nil, err
	}
	return &Session{Token: tok, User: usr}, nil
}

func hashPassword(field, plain string) (string, error) {
	hash, err := password.Hash(plain)
	if errors.Is(err, password.ErrTooShort) {
		return "", apperror.Invalid(field, "Password must be at least 6 characters")
	}
	return hash, err
}

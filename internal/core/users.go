package core

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// UserProfile is the stored account and shipping profile of a customer.
type UserProfile struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserPatch updates only the fields that are non-nil.
type UserPatch struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
}

func (p UserPatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Phone == nil && p.Address == nil
}

type PasswordChange struct {
	Current string `json:"current_password"`
	New     string `json:"new_password"`
}

// Session is what a successful login hands back.
type Session struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

type UserRepo interface {
	Create(ctx context.Context, u UserProfile) error
	Get(ctx context.Context, id string) (UserProfile, error)
	GetByEmail(ctx context.Context, email string) (UserProfile, error)
	Update(ctx context.Context, id string, patch UserPatch, updatedAt time.Time) error
	SetPasswordHash(ctx context.Context, id, hash string, updatedAt time.Time) error
}

// TokenIssuer signs session tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}

const MinPasswordLength = 6

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (in SignupInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.Email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if !emailRegex.MatchString(strings.TrimSpace(in.Email)) {
		return fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	if len(in.Password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	}
	return nil
}

var (
	ErrUserNotFound       = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrUserExists         = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
)

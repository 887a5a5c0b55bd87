package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lamontana/storefront/internal/platform/ids"
)

type UserService interface {
	Signup(ctx context.Context, in SignupInput) (UserProfile, error)
	Login(ctx context.Context, in LoginInput) (Session, error)
	Profile(ctx context.Context, id string) (UserProfile, error)
	UpdateProfile(ctx context.Context, id string, patch UserPatch) (UserProfile, error)
	ChangePassword(ctx context.Context, id string, in PasswordChange) error
}

type userService struct {
	users  UserRepo
	tokens TokenIssuer
	cost   int
	clock  func() time.Time
}

func NewUserService(users UserRepo, tokens TokenIssuer) UserService {
	return &userService{
		users:  users,
		tokens: tokens,
		cost:   bcrypt.DefaultCost,
		clock:  time.Now,
	}
}

func (s *userService) Signup(ctx context.Context, in SignupInput) (UserProfile, error) {
	if err := in.Validate(); err != nil {
		return UserProfile{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return UserProfile{}, fmt.Errorf("hash password: %w", err)
	}

	// Last name, phone and address are filled in later from the profile screen.
	now := s.clock()
	u := UserProfile{
		ID:           ids.New(),
		FirstName:    strings.TrimSpace(in.Name),
		Email:        NormalizeEmail(in.Email),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return UserProfile{}, err
	}
	return u, nil
}

func (s *userService) Login(ctx context.Context, in LoginInput) (Session, error) {
	if in.Email == "" || in.Password == "" {
		return Session{}, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	u, err := s.users.GetByEmail(ctx, NormalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}
	return Session{Token: token, User: u}, nil
}

func (s *userService) Profile(ctx context.Context, id string) (UserProfile, error) {
	if strings.TrimSpace(id) == "" {
		return UserProfile{}, fmt.Errorf("%w: missing user ID", ErrValidation)
	}
	return s.users.Get(ctx, id)
}

func (s *userService) UpdateProfile(ctx context.Context, id string, patch UserPatch) (UserProfile, error) {
	if strings.TrimSpace(id) == "" {
		return UserProfile{}, fmt.Errorf("%w: missing user ID", ErrValidation)
	}
	if patch.Empty() {
		return UserProfile{}, fmt.Errorf("%w: nothing to update", ErrValidation)
	}
	if err := s.users.Update(ctx, id, patch, s.clock()); err != nil {
		return UserProfile{}, err
	}
	return s.users.Get(ctx, id)
}

func (s *userService) ChangePassword(ctx context.Context, id string, in PasswordChange) error {
	if in.Current == "" || in.New == "" {
		return fmt.Errorf("%w: current and new password are required", ErrValidation)
	}
	if len(in.New) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	}

	u, err := s.users.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Current)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.New), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.SetPasswordHash(ctx, id, string(hash), s.clock())
}

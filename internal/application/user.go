package application

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/linskybing/forms-go/internal/api/middleware"
	"github.com/linskybing/forms-go/internal/domain/user"
	"github.com/linskybing/forms-go/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const TokenLifetime = 24 * time.Hour

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrIncorrectPassword   = errors.New("old password is incorrect")
	ErrPasswordHashFailure = errors.New("failed to hash new password")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

func (s *UserService) LoginUser(ctx context.Context, username, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByUsername(ctx, username)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr.ID, usr.Username, usr.IsAdmin, TokenLifetime)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

func (s *UserService) Me(ctx context.Context, id uint) (user.UserDTO, error) {
	usr, err := s.Repos.User.GetUserRawByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.UserDTO{}, ErrUserNotFound
		}
		return user.UserDTO{}, err
	}
	return user.UserDTO{ID: usr.ID, Username: usr.Username, Email: usr.Email, IsAdmin: usr.IsAdmin}, nil
}

func (s *UserService) ChangePassword(ctx context.Context, id uint, input user.ChangePasswordInput) error {
	usr, err := s.Repos.User.GetUserRawByID(ctx, id)
	if err != nil {
		return ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(input.OldPassword)); err != nil {
		return ErrIncorrectPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}
	usr.Password = string(hashed)
	return s.Repos.User.SaveUser(ctx, &usr)
}

// SeedAdmin creates the first admin account when none exists yet.
func (s *UserService) SeedAdmin(ctx context.Context, username, password string) error {
	n, err := s.Repos.User.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	if password == "" {
		log.Printf("No admin account exists and ADMIN_PASSWORD is empty; skipping admin seed")
		return nil
	}

	usr, err := s.Repos.User.GetUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}
	usr.Username = username
	usr.Password = string(hashed)
	usr.IsAdmin = true
	if err := s.Repos.User.SaveUser(ctx, &usr); err != nil {
		return err
	}
	log.Printf("Seeded admin user %q", username)
	return nil
}

package userservice

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/GlebRadaev/railtickets/internal/domain"
	"github.com/GlebRadaev/railtickets/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=userservice.go -destination=mock_userservice.go -package=userservice

type Repo interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
}

const tokenTTL = 24 * time.Hour

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register stores a new user. user.Password holds the plain password on
// input and the hash on return.
func (s *Service) Register(ctx context.Context, user domain.User) (*domain.User, error) {
	user.Email = normalizeEmail(user.Email)
	if _, err := mail.ParseAddress(user.Email); err != nil {
		return nil, fmt.Errorf("%w: invalid email %q", domain.ErrValidation, user.Email)
	}
	if user.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	_, err := s.userRepo.FindUserByEmail(ctx, user.Email)
	switch {
	case err == nil:
		zap.L().Info("user already exists", zap.String("email", user.Email))
		return nil, domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrNotFound):
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}

	hashedPassword, err := s.hashService.HashPassword(user.Password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	user.ID = ""
	user.Password = hashedPassword
	if err := s.userRepo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return nil, domain.ErrEmailTaken
		}
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("user_id", user.ID))
	return &user, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if ok := s.hashService.ComparePassword(user.Password, password); !ok {
		zap.L().Info("invalid credentials", zap.String("user_id", user.ID))
		return nil, domain.ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("user_id", user.ID))
	return user, nil
}

func (s *Service) GenerateToken(userID string) (string, error) {
	token, err := s.jwtService.GenerateJWT(userID, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.GetUser(ctx, userID)
}

// UpdateProfile changes contact details. Email and password stay as they are.
func (s *Service) UpdateProfile(ctx context.Context, userID, surname, name, phone string) (*domain.User, error) {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Surname = strings.TrimSpace(surname)
	user.Name = strings.TrimSpace(name)
	user.Phone = strings.TrimSpace(phone)
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		zap.L().Error("can't update user", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return user, nil
}

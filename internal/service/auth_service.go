package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"anoa.com/ramadhanpitstop/internal/dto"
	"anoa.com/ramadhanpitstop/internal/repository"
	"anoa.com/ramadhanpitstop/pkg/apperror"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, input dto.LoginRequest) (*dto.LoginResponse, error)
	SessionTTL() time.Duration
}

type authService struct {
	repo          repository.UserRepository
	secret        string
	adminUsername string
	sessionTTL    time.Duration
}

func NewAuthService(repo repository.UserRepository, secret, adminUsername string, sessionTTL time.Duration) AuthService {
	return &authService{
		repo:          repo,
		secret:        secret,
		adminUsername: adminUsername,
		sessionTTL:    sessionTTL,
	}
}

func (s *authService) Login(ctx context.Context, input dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByUsername(ctx, s.adminUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidPasswordError()
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, invalidPasswordError()
	}

	expiresAt := time.Now().Add(s.sessionTTL)
	claims := jwt.RegisteredClaims{
		Subject:   user.Username,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   expiresAt.Unix(),
	}, nil
}

func (s *authService) SessionTTL() time.Duration {
	return s.sessionTTL
}

func invalidPasswordError() error {
	return apperror.New(http.StatusUnauthorized, "Password salah!", apperror.ErrUnauthorized)
}

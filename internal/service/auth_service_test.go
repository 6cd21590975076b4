package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"anoa.com/ramadhanpitstop/internal/dto"
	"anoa.com/ramadhanpitstop/internal/model"
	"anoa.com/ramadhanpitstop/pkg/apperror"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func seededAuthService(t *testing.T, password string) AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	repo := &fakeUserRepo{user: &model.User{
		ID:           1,
		Username:     "admin",
		PasswordHash: string(hash),
	}}
	return NewAuthService(repo, "testsecret", "admin", 24*time.Hour)
}

func TestLoginIssuesSessionToken(t *testing.T) {
	svc := seededAuthService(t, "rahasia-pitstop")

	result, err := svc.Login(context.Background(), dto.LoginRequest{Password: "rahasia-pitstop"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(result.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("testsecret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Subject != "admin" {
		t.Fatalf("unexpected subject %q", claims.Subject)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 23*time.Hour || ttl > 25*time.Hour {
		t.Fatalf("expected ~24h session, got %v", ttl)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := seededAuthService(t, "rahasia-pitstop")

	_, err := svc.Login(context.Background(), dto.LoginRequest{Password: "salah"})
	if !errors.Is(err, apperror.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginMissingAdminRow(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, "testsecret", "admin", 24*time.Hour)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Password: "apapun"})
	if !errors.Is(err, apperror.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

package auth_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/skillprep/backend/internal/auth"
)

const (
	secret   = "test-secret"
	audience = "authenticated"
)

func TestVerify_ValidToken(t *testing.T) {
	token, err := auth.IssueToken(secret, audience, "user-1", time.Hour)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	userID, err := auth.NewVerifier(secret, audience).Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "user-1" {
		t.Errorf("expected user-1, got %q", userID)
	}
}

func TestVerify_Rejects(t *testing.T) {
	v := auth.NewVerifier(secret, audience)

	expired, _ := auth.IssueToken(secret, audience, "user-1", -time.Minute)
	wrongSecret, _ := auth.IssueToken("other-secret", audience, "user-1", time.Hour)
	wrongAudience, _ := auth.IssueToken(secret, "anon", "user-1", time.Hour)
	noSubject, _ := auth.IssueToken(secret, audience, "", time.Hour)
	noExpiry, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:  "user-1",
		Audience: jwt.ClaimStrings{audience},
	}).SignedString([]byte(secret))

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"empty", "", auth.ErrNoToken},
		{"garbage", "not-a-jwt", auth.ErrInvalidToken},
		{"expired", expired, auth.ErrInvalidToken},
		{"wrong secret", wrongSecret, auth.ErrInvalidToken},
		{"wrong audience", wrongAudience, auth.ErrInvalidToken},
		{"no subject", noSubject, auth.ErrInvalidToken},
		{"no expiry", noExpiry, auth.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify(tt.token)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestVerify_NoAudienceCheck(t *testing.T) {
	token, _ := auth.IssueToken(secret, "", "user-1", time.Hour)

	if _, err := auth.NewVerifier(secret, "").Verify(token); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFromRequest(t *testing.T) {
	v := auth.NewVerifier(secret, audience)
	token, _ := auth.IssueToken(secret, audience, "user-1", time.Hour)

	r := httptest.NewRequest("GET", "/", nil)
	if _, err := v.FromRequest(r); !errors.Is(err, auth.ErrNoToken) {
		t.Errorf("expected ErrNoToken without header, got %v", err)
	}

	r.Header.Set("Authorization", "Token "+token)
	if _, err := v.FromRequest(r); !errors.Is(err, auth.ErrNoToken) {
		t.Errorf("expected ErrNoToken for non-bearer scheme, got %v", err)
	}

	r.Header.Set("Authorization", "Bearer "+token)
	userID, err := v.FromRequest(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "user-1" {
		t.Errorf("expected user-1, got %q", userID)
	}
}

func TestUserIDContext(t *testing.T) {
	if _, ok := auth.UserID(context.Background()); ok {
		t.Error("expected no user id in empty context")
	}

	ctx := auth.WithUserID(context.Background(), "user-1")
	userID, ok := auth.UserID(ctx)
	if !ok || userID != "user-1" {
		t.Errorf("expected user-1, got %q (%v)", userID, ok)
	}
}

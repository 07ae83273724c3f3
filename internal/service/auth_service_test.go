package service

import (
	"errors"
	"testing"
	"time"
)

func newAuthService() *AuthService {
	return NewAuthService(newFakeAuthRepo(), "unit-test-key", time.Hour)
}

func TestAuth_SignUpSignInRoundTrip(t *testing.T) {
	svc := newAuthService()

	id, err := svc.SignUp("piper", "s3cret")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive user id, got %d", id)
	}

	token, err := svc.GenerateToken("piper", "s3cret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a non-empty token")
	}

	parsedID, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if parsedID != id {
		t.Fatalf("token carries user %d, want %d", parsedID, id)
	}
}

func TestAuth_SignUpEmptyPassword(t *testing.T) {
	svc := newAuthService()

	if _, err := svc.SignUp("piper", "   "); err == nil {
		t.Fatalf("expected error for blank password")
	}
}

func TestAuth_WrongPassword(t *testing.T) {
	svc := newAuthService()

	if _, err := svc.SignUp("piper", "s3cret"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if _, err := svc.GenerateToken("piper", "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestAuth_UnknownUser(t *testing.T) {
	svc := newAuthService()

	if _, err := svc.GenerateToken("ghost", "whatever"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuth_TokenFromDifferentKeyRejected(t *testing.T) {
	repo := newFakeAuthRepo()
	issuer := NewAuthService(repo, "key-one", time.Hour)
	verifier := NewAuthService(repo, "key-two", time.Hour)

	if _, err := issuer.SignUp("piper", "s3cret"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	token, err := issuer.GenerateToken("piper", "s3cret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatalf("token signed with another key must be rejected")
	}
}

func TestAuth_GarbageTokenRejected(t *testing.T) {
	svc := newAuthService()

	if _, err := svc.ParseToken("not.a.jwt"); err == nil {
		t.Fatalf("expected parse error")
	}
}

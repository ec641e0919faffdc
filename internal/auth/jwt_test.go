package auth

import (
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret", 15*time.Minute)

	raw, err := m.GenerateAccessToken("user-1", "alice1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := m.VerifyAccessToken(raw)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	if claims.UserID != "user-1" {
		t.Fatalf("got user id %q, want %q", claims.UserID, "user-1")
	}
	if claims.Username != "alice1" {
		t.Fatalf("got username %q, want %q", claims.Username, "alice1")
	}
	if claims.TokenType != "access" {
		t.Fatalf("got token type %q, want access", claims.TokenType)
	}
	if claims.JTI == "" {
		t.Fatal("expected a jti")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m := NewManager("test-secret", 15*time.Minute)
	other := NewManager("other-secret", 15*time.Minute)

	raw, err := m.GenerateAccessToken("user-1", "alice1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := other.VerifyAccessToken(raw); err == nil {
		t.Fatal("expected verification to fail with a different secret")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	raw, err := m.GenerateAccessToken("user-1", "alice1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := m.VerifyAccessToken(raw); err == nil {
		t.Fatal("expected verification to fail for an expired token")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", 15*time.Minute)

	if _, err := m.VerifyAccessToken("not-a-token"); err == nil {
		t.Fatal("expected verification to fail for garbage input")
	}
}

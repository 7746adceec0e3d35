package utils

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("a@x.com", "Ana", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Email != "a@x.com" || claims.Name != "Ana" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > time.Hour {
		t.Errorf("expiry not bounded by ttl: %v", claims.ExpiresAt)
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken("a@x.com", "", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseToken(token, testSecret); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("a@x.com", "", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseToken(token, "another-secret"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseTokenGarbage(t *testing.T) {
	for _, in := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseToken(in, testSecret); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("input %q: expected ErrTokenInvalid, got %v", in, err)
		}
	}
}

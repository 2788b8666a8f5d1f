package jwt

import (
	"testing"
	"time"
)

const testSecret = "test-secret-key"

func TestGenerateAndParseToken(t *testing.T) {
	payload := &Payload{
		UserID:   "8a6e0804-2bd0-4672-b79d-d97027f9071a",
		FullName: "Alice Example",
	}

	tokenString, err := GenerateToken(payload, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	parsed, err := ParseToken(tokenString, testSecret)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	if parsed.UserID != payload.UserID {
		t.Errorf("expected UserID %q, got %q", payload.UserID, parsed.UserID)
	}
	if parsed.FullName != payload.FullName {
		t.Errorf("expected FullName %q, got %q", payload.FullName, parsed.FullName)
	}
	if parsed.Issuer != TokenIssuer {
		t.Errorf("expected issuer %q, got %q", TokenIssuer, parsed.Issuer)
	}
}

func TestParseTokenExpired(t *testing.T) {
	payload := &Payload{UserID: "user-1", FullName: "Alice"}

	tokenString, err := GenerateToken(payload, testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	_, err = ParseToken(tokenString, testSecret)
	if err == nil {
		t.Fatal("expected parse of expired token to fail")
	}
	if !IsExpired(err) {
		t.Fatalf("expected IsExpired to report true, got false for: %v", err)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	payload := &Payload{UserID: "user-1", FullName: "Alice"}

	tokenString, err := GenerateToken(payload, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	_, err = ParseToken(tokenString, "a-different-secret")
	if err == nil {
		t.Fatal("expected parse with wrong secret to fail")
	}
	if IsExpired(err) {
		t.Fatal("signature failure must not be reported as expiration")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken("not-a-token", testSecret); err == nil {
		t.Fatal("expected parse of garbage to fail")
	}
}

package security

import (
	"strings"
	"testing"
	"time"

	"careerassign/internal/common"
)

func TestGenerateAndParse(t *testing.T) {
	provider := NewJWTProvider("test-secret")
	userID := common.NewUUID()

	token, expiresAt, err := provider.Generate(userID, "candidate", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if expiresAt.Before(time.Now()) {
		t.Fatalf("expected future expiry, got %v", expiresAt)
	}

	claims, err := provider.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != userID.String() {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Role != "candidate" {
		t.Fatalf("expected role candidate, got %s", claims.Role)
	}
}

func TestParseRejectsTamperedToken(t *testing.T) {
	provider := NewJWTProvider("test-secret")
	token, _, err := provider.Generate(common.NewUUID(), "company", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]
	if _, err := provider.Parse(tampered); err == nil {
		t.Fatal("expected error for tampered payload")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	provider := NewJWTProvider("secret-a")
	token, _, err := provider.Generate(common.NewUUID(), "institute", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	other := NewJWTProvider("secret-b")
	if _, err := other.Parse(token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	provider := NewJWTProvider("test-secret")
	token, _, err := provider.Generate(common.NewUUID(), "candidate", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := provider.Parse(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

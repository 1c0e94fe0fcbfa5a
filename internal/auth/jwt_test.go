package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerateAndParseToken(t *testing.T) {
	accountID := uuid.New()

	token, sessionID, err := GenerateToken("test-secret", accountID, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if sessionID == "" {
		t.Fatal("expected a non-empty session id")
	}

	claims, err := ParseToken("test-secret", token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.AccountID != accountID {
		t.Errorf("account id = %s, want %s", claims.AccountID, accountID)
	}
	if claims.ID != sessionID {
		t.Errorf("jti = %s, want %s", claims.ID, sessionID)
	}
	if claims.Issuer != "adfluence" {
		t.Errorf("issuer = %s, want adfluence", claims.Issuer)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, _, err := GenerateToken("right-secret", uuid.New(), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if _, err := ParseToken("wrong-secret", token); err == nil {
		t.Error("token signed with a different secret should not parse")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, _, err := GenerateToken("secret", uuid.New(), -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if _, err := ParseToken("secret", token); err == nil {
		t.Error("expired token should not parse")
	}
}

func TestGenerateTokenUniqueSessions(t *testing.T) {
	accountID := uuid.New()
	_, s1, err := GenerateToken("secret", accountID, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	_, s2, err := GenerateToken("secret", accountID, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if s1 == s2 {
		t.Error("two issued tokens should carry distinct session ids")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken("secret", "not-a-jwt"); err == nil {
		t.Error("garbage input should not parse")
	}
}

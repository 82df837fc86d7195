package crypto

import (
	"testing"
	"time"
)

func TestGenerateToken_WithJTI(t *testing.T) {
	secret := "test-secret"
	userID := "test-user-id"
	role := "USER"

	token, jti, err := GenerateToken(secret, userID, role, AccessTokenTTL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if token == "" {
		t.Error("Expected token to be generated")
	}
	if jti == "" {
		t.Error("Expected JTI to be generated")
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("Expected no error parsing token, got %v", err)
	}
	if claims.ID != jti {
		t.Errorf("Expected JTI %s, got %s", jti, claims.ID)
	}
	if claims.Sub != userID {
		t.Errorf("Expected user ID %s, got %s", userID, claims.Sub)
	}
	if claims.Role != role {
		t.Errorf("Expected role %s, got %s", role, claims.Role)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken("secret-a", "user-1", "USER", time.Hour)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := ParseToken("secret-b", token); err == nil {
		t.Error("Expected error parsing token with wrong secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, _, err := GenerateToken("test-secret", "user-1", "USER", -time.Minute)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := ParseToken("test-secret", token); err == nil {
		t.Error("Expected error parsing expired token")
	}
}

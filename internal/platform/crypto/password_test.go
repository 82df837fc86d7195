package crypto

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Sup3r$ecret")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if hash == "Sup3r$ecret" {
		t.Error("Expected hash to differ from plaintext")
	}
	if !VerifyPassword(hash, "Sup3r$ecret") {
		t.Error("Expected correct password to verify")
	}
	if VerifyPassword(hash, "wrong-password") {
		t.Error("Expected wrong password to fail verification")
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "Test123!@#", nil},
		{"valid with symbol", "SecureP@ss1", nil},
		{"too short", "Abc12", ErrPasswordTooShort},
		{"no uppercase", "password1$", ErrPasswordNoUpper},
		{"no lowercase", "PASSWORD1$", ErrPasswordNoLower},
		{"no number", "TestPass!@#", ErrPasswordNoNumber},
		{"no special char", "TestPass123", ErrPasswordNoSpecialChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidatePasswordStrength(tt.password); err != tt.wantErr {
				t.Errorf("ValidatePasswordStrength(%q) = %v, want %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

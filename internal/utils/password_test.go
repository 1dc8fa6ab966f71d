package utils

import (
	"testing"
)

func TestHashPassword(t *testing.T) {
	password := "testpassword123"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "" {
		t.Error("HashPassword() returned empty string")
	}

	if hash == password {
		t.Error("HashPassword() should not return plaintext password")
	}

	if len(hash) < 50 {
		t.Errorf("hash seems too short: %d chars", len(hash))
	}
}

func TestHashPassword_DifferentHashes(t *testing.T) {
	password := "testpassword"

	hash1, _ := HashPassword(password)
	hash2, _ := HashPassword(password)

	if hash1 == hash2 {
		t.Error("same password should produce different hashes (due to salt)")
	}
}

func TestCheckPassword(t *testing.T) {
	password := "correctpassword"
	hash, _ := HashPassword(password)

	tests := []struct {
		name     string
		password string
		expected bool
	}{
		{"correct password", "correctpassword", true},
		{"wrong password", "wrongpassword", false},
		{"empty password", "", false},
		{"similar password", "correctpassword1", false},
		{"case sensitive", "CorrectPassword", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckPassword(tt.password, hash)
			if result != tt.expected {
				t.Errorf("CheckPassword(%q) = %v, expected %v", tt.password, result, tt.expected)
			}
		})
	}
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	result := CheckPassword("password", "invalid_hash")
	if result {
		t.Error("CheckPassword should return false for invalid hash")
	}
}

func TestCheckPassword_EmptyHash(t *testing.T) {
	result := CheckPassword("password", "")
	if result {
		t.Error("CheckPassword should return false for empty hash")
	}
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		expected int
	}{
		{"", 0},
		{"aaa", 1},                // lowercase only
		{"AAA", 1},                // uppercase only
		{"123", 1},                // digit only
		{"!!!", 1},                // special only
		{"aA1", 3},                // lower + upper + digit
		{"aA1!", 4},               // all classes, short
		{"aA1!aA1!", 5},           // all classes, length >= 8
		{"abcdefgh", 2},           // lowercase + length
		{"Abcdefgh", 3},           // lower + upper + length
		{"Abcdefg1", 4},           // lower + upper + digit + length
		{"password", 2},           // common weak password
		{"P@ssw0rd", 5},           // satisfies everything
		{"12345678", 2},           // digits + length
		{"ABCDEFGH123", 3},        // upper + digit + length
		{"correct horse battery", 2}, // spaces are not in the special set: lower + length
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			got := PasswordStrength(tt.password)
			if got != tt.expected {
				t.Errorf("PasswordStrength(%q) = %d, expected %d", tt.password, got, tt.expected)
			}
		})
	}
}

func TestPasswordStrength_Range(t *testing.T) {
	passwords := []string{"", "a", "aB", "aB1", "aB1!", "aB1!aB1!", "aB1!aB1!aB1!aB1!aB1!"}
	for _, p := range passwords {
		score := PasswordStrength(p)
		if score < 0 || score > 5 {
			t.Errorf("PasswordStrength(%q) = %d, out of [0,5]", p, score)
		}
	}
}

func TestPasswordStrength_Monotonic(t *testing.T) {
	// Each step satisfies one more predicate; the score must never decrease.
	steps := []string{"", "a", "aB", "aB1", "aB1!", "aB1!xyz!"}
	prev := -1
	for _, p := range steps {
		score := PasswordStrength(p)
		if score < prev {
			t.Errorf("score decreased at %q: %d < %d", p, score, prev)
		}
		prev = score
	}
}

func TestStrengthLabel(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{0, "Very Weak"},
		{1, "Weak"},
		{2, "Fair"},
		{3, "Good"},
		{4, "Strong"},
		{5, "Very Strong"},
		{-1, "Very Weak"}, // clamped
		{9, "Very Strong"},
	}

	for _, tt := range tests {
		if got := StrengthLabel(tt.score); got != tt.expected {
			t.Errorf("StrengthLabel(%d) = %q, expected %q", tt.score, got, tt.expected)
		}
	}
}

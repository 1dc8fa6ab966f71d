package utils

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// specialChars is the fixed set counted by the strength score.
const specialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?~` + "`"

// PasswordStrength scores a password 0..5, one point per satisfied predicate:
// contains a lowercase letter, an uppercase letter, a digit, a special
// character, and is at least 8 characters long. Adding characters never
// lowers the score.
func PasswordStrength(password string) int {
	score := 0
	if strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyz") {
		score++
	}
	if strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		score++
	}
	if strings.ContainsAny(password, "0123456789") {
		score++
	}
	if strings.ContainsAny(password, specialChars) {
		score++
	}
	if len(password) >= 8 {
		score++
	}
	return score
}

var strengthLabels = [6]string{"Very Weak", "Weak", "Fair", "Good", "Strong", "Very Strong"}

// StrengthLabel maps a strength score to its display label.
// Out-of-range scores clamp to the nearest end.
func StrengthLabel(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 5 {
		score = 5
	}
	return strengthLabels[score]
}

// MinSignupStrength is the lowest score accepted at signup.
const MinSignupStrength = 3

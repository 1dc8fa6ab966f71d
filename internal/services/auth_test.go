package services

import (
	"errors"
	"testing"
)

func TestSignupRequest_Validate_Order(t *testing.T) {
	// A request with every problem at once must report missing fields first.
	req := &SignupRequest{
		Name:            "",
		Email:           "a@b.com",
		Password:        "weak",
		ConfirmPassword: "different",
	}
	if err := req.Validate(); !errors.Is(err, ErrMissingFields) {
		t.Errorf("expected ErrMissingFields, got %v", err)
	}

	// With fields present, mismatch wins over weakness.
	req = &SignupRequest{
		Name:            "Learner",
		Email:           "a@b.com",
		Password:        "weak",
		ConfirmPassword: "weaker",
	}
	if err := req.Validate(); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}

	// Matching but weak.
	req = &SignupRequest{
		Name:            "Learner",
		Email:           "a@b.com",
		Password:        "weak",
		ConfirmPassword: "weak",
	}
	if err := req.Validate(); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("expected ErrWeakPassword, got %v", err)
	}
}

func TestSignupRequest_Validate_MissingFields(t *testing.T) {
	cases := []SignupRequest{
		{Email: "a@b.com", Password: "P@ssw0rd", ConfirmPassword: "P@ssw0rd"},
		{Name: "Learner", Password: "P@ssw0rd", ConfirmPassword: "P@ssw0rd"},
		{Name: "Learner", Email: "a@b.com", ConfirmPassword: "P@ssw0rd"},
		{Name: "Learner", Email: "a@b.com", Password: "P@ssw0rd"},
		{},
	}

	for i, req := range cases {
		if err := req.Validate(); !errors.Is(err, ErrMissingFields) {
			t.Errorf("case %d: expected ErrMissingFields, got %v", i, err)
		}
	}
}

func TestSignupRequest_Validate_Success(t *testing.T) {
	req := &SignupRequest{
		Name:            "Learner",
		Email:           "a@b.com",
		Password:        "P@ssw0rd",
		ConfirmPassword: "P@ssw0rd",
		LearningGoal:    "learn distributed systems",
	}
	if err := req.Validate(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestSignupRequest_Validate_StrengthBoundary(t *testing.T) {
	// Score 3 passes, score 2 does not.
	cases := []struct {
		password string
		ok       bool
	}{
		{"abcdefg1", true},   // lower + digit + length
		{"Abcdefgh", true},   // lower + upper + length
		{"abcdefgh", false},  // lower + length only
		{"abc1", false},      // lower + digit only
		{"P@ssw0rd", true},   // all five
	}

	for _, tc := range cases {
		req := &SignupRequest{
			Name:            "Learner",
			Email:           "a@b.com",
			Password:        tc.password,
			ConfirmPassword: tc.password,
		}
		err := req.Validate()
		if tc.ok && err != nil {
			t.Errorf("password %q: expected nil, got %v", tc.password, err)
		}
		if !tc.ok && !errors.Is(err, ErrWeakPassword) {
			t.Errorf("password %q: expected ErrWeakPassword, got %v", tc.password, err)
		}
	}
}

func TestValidationErrorMessages(t *testing.T) {
	// These strings are part of the API contract with the client.
	if ErrMissingFields.Error() != "please fill in all required fields" {
		t.Errorf("ErrMissingFields = %q", ErrMissingFields.Error())
	}
	if ErrPasswordMismatch.Error() != "passwords do not match" {
		t.Errorf("ErrPasswordMismatch = %q", ErrPasswordMismatch.Error())
	}
	if ErrWeakPassword.Error() != "please choose a stronger password" {
		t.Errorf("ErrWeakPassword = %q", ErrWeakPassword.Error())
	}
}

func TestLoginRequest_Structure(t *testing.T) {
	req := LoginRequest{
		Email:    "a@b.com",
		Password: "password123",
	}

	if req.Email != "a@b.com" {
		t.Errorf("Email = %q, expected %q", req.Email, "a@b.com")
	}
	if req.Password != "password123" {
		t.Errorf("Password = %q, expected %q", req.Password, "password123")
	}
}

func TestChangePasswordRequest_Structure(t *testing.T) {
	req := ChangePasswordRequest{
		OldPassword: "oldpass",
		NewPassword: "N3wpass!",
	}

	if req.OldPassword != "oldpass" {
		t.Errorf("OldPassword = %q, expected %q", req.OldPassword, "oldpass")
	}
	if req.NewPassword != "N3wpass!" {
		t.Errorf("NewPassword = %q, expected %q", req.NewPassword, "N3wpass!")
	}
}

func TestGenerateRefreshToken(t *testing.T) {
	token, hash, err := generateRefreshToken()
	if err != nil {
		t.Fatalf("generateRefreshToken failed: %v", err)
	}
	if len(token) != 64 {
		t.Errorf("token length = %d, expected 64 hex chars", len(token))
	}
	if len(hash) != 64 {
		t.Errorf("hash length = %d, expected 64 hex chars", len(hash))
	}
	if hash != hashRefreshToken(token) {
		t.Error("hash should match hashRefreshToken(token)")
	}

	token2, _, _ := generateRefreshToken()
	if token == token2 {
		t.Error("two generated tokens should differ")
	}
}

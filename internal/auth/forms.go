package auth

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"novelverse/pkg/models"
)

// bcrypt ignores input past 72 bytes.
const maxPasswordBytes = 72

var (
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrTermsNotAccepted    = errors.New("terms not accepted")
	ErrCredentialsRequired = errors.New("email and password required")
	ErrEmailRequired       = errors.New("email required")
	ErrPasswordTooLong     = fmt.Errorf("password must be at most %d bytes", maxPasswordBytes)
)

// CheckSignup applies the signup form rules in the order the form reports
// them: matching passwords first, then the terms checkbox.
func CheckSignup(req models.SignupRequest) error {
	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if !req.AgreeToTerms {
		return ErrTermsNotAccepted
	}
	if strings.TrimSpace(req.Email) == "" {
		return ErrEmailRequired
	}
	if len(req.Password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

// NewAccount hashes the password so only the hash leaves the signup page.
func NewAccount(req models.SignupRequest, cost int) (models.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), cost)
	if err != nil {
		return models.Account{}, fmt.Errorf("hash password: %w", err)
	}
	return models.Account{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.TrimSpace(strings.ToLower(req.Email)),
		PasswordHash: string(hash),
		Newsletter:   req.Newsletter,
	}, nil
}

func CheckLogin(req models.LoginRequest) error {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return ErrCredentialsRequired
	}
	return nil
}

// ForgotState is the forgot-password page: the form, or the "check your
// email" notice once submitted.
type ForgotState struct {
	Email     string `json:"email"`
	Submitted bool   `json:"submitted"`
}

func (s *ForgotState) Submit(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	s.Email = email
	s.Submitted = true
	return nil
}

// TryDifferentEmail returns to the form.
func (s *ForgotState) TryDifferentEmail() {
	s.Submitted = false
}

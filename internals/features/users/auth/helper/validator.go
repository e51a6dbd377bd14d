package helper

import (
	"errors"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks the basic shape of an email address.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return errors.New("Invalid email address")
	}
	return nil
}

// ValidateRegisterInput validates the register payload before it reaches the service.
func ValidateRegisterInput(email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return errors.New("Email and password are required")
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if len(password) < 8 {
		return errors.New("Password must be at least 8 characters long")
	}
	return nil
}

// ValidateLoginInput validates the login payload.
func ValidateLoginInput(email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return errors.New("Email and password are required")
	}
	return ValidateEmail(email)
}

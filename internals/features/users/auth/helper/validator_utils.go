package helper

import (
	"errors"
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidateRegisterInput(userName, email, password string) error {
	userName = strings.TrimSpace(userName)
	email = strings.TrimSpace(email)

	if len(userName) < 3 {
		return errors.New("username must be at least 3 characters")
	}
	if !emailRe.MatchString(email) {
		return errors.New("invalid email format")
	}
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

func ValidateLoginInput(identifier, password string) error {
	if strings.TrimSpace(identifier) == "" {
		return errors.New("username or email is required")
	}
	if password == "" {
		return errors.New("password is required")
	}
	return nil
}

func ValidateChangePassword(current, next string) error {
	if current == "" {
		return errors.New("current password is required")
	}
	if len(next) < 8 {
		return errors.New("new password must be at least 8 characters")
	}
	if current == next {
		return errors.New("new password must differ from the current one")
	}
	return nil
}

package services

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/junaidrashid-git/echocart-api/apperrors"
	"github.com/junaidrashid-git/echocart-api/models"
	"github.com/junaidrashid-git/echocart-api/repository"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

const (
	minPasswordLength = 6
	minUsernameLength = 3
	maxUsernameLength = 50
)

// maxMoney is the first value a numeric(10,2) column cannot hold.
var maxMoney = decimal.New(1, 8)

// validateMoney rounds to cents and requires 0 < amount < maxMoney.
func validateMoney(amount decimal.Decimal, positiveMsg, maxMsg string) (decimal.Decimal, error) {
	rounded := amount.Round(2)
	if !rounded.IsPositive() {
		return decimal.Zero, apperrors.Validation(positiveMsg)
	}
	if rounded.GreaterThanOrEqual(maxMoney) {
		return decimal.Zero, apperrors.Validation(maxMsg)
	}
	return rounded, nil
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

func isValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

func validateUsername(username string) error {
	if isBlank(username) {
		return apperrors.Validation("Username cannot be empty")
	}
	if n := utf8.RuneCountInString(username); n < minUsernameLength || n > maxUsernameLength {
		return apperrors.Validation("Username must be between %d and %d characters", minUsernameLength, maxUsernameLength)
	}
	return nil
}

func validateEmail(email string) error {
	if isBlank(email) {
		return apperrors.Validation("Email cannot be empty")
	}
	if !isValidEmail(email) {
		return apperrors.Validation("Email should be valid")
	}
	return nil
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return apperrors.Validation("Password must be at least %d characters", minPasswordLength)
	}
	return nil
}

// lookupError converts a repository lookup failure into a typed error.
func lookupError(err error, format string, args ...interface{}) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound(format, args...)
	}
	return apperrors.Unexpected("storage failure", err)
}

// clock returns today's date; services swap it in tests.
type clock func() time.Time

func (c clock) today() models.Date {
	if c == nil {
		return models.Today()
	}
	return models.DateOf(c())
}

package utils

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

var (
	// Vietnamese mobile numbers: 10 digits starting 03, 05, 07, 08 or 09
	phoneRegex    = regexp.MustCompile(`^0[35789][0-9]{8}$`)
	usernameRegex = regexp.MustCompile(`^[a-z0-9_.]{3,32}$`)
	htmlTagRegex  = regexp.MustCompile(`<[^>]*>`)
	jsEventRegex  = regexp.MustCompile(`on\w+="[^"]*"`)
)

// SanitizeString strips HTML tags and inline event handlers, then trims
func SanitizeString(input string) string {
	sanitized := htmlTagRegex.ReplaceAllString(input, "")
	sanitized = jsEventRegex.ReplaceAllString(sanitized, "")
	return strings.TrimSpace(html.UnescapeString(sanitized))
}

// IsValidPhone reports whether phone is a Vietnamese mobile number
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(phone))
}

// NormalizeUsername trims and lower-cases a login name the way the auth service stores it
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// ValidateUsername checks a normalized username
func ValidateUsername(username string) (bool, string) {
	if !usernameRegex.MatchString(username) {
		return false, "Username must be 3-32 characters of letters, numbers, '.' or '_'"
	}
	return true, ""
}

// ValidateConfirmPassword checks if the confirm password matches the password
func ValidateConfirmPassword(password, confirmPassword string) (bool, string) {
	if password != confirmPassword {
		return false, "Passwords do not match"
	}
	return true, ""
}

// ValidatePrice validates a price
func ValidatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return fmt.Errorf("price must be greater than 0")
	}
	return nil
}

// ValidateDiscountPercentage validates a discount percentage
func ValidateDiscountPercentage(percent int) error {
	if percent < 0 || percent > 100 {
		return fmt.Errorf("discount percentage must be between 0 and 100")
	}
	return nil
}

// ValidateStock validates stock quantity
func ValidateStock(stock int) error {
	if stock < 0 {
		return fmt.Errorf("stock cannot be negative")
	}
	return nil
}

// ValidateRating validates a review rating
func ValidateRating(rating float64) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return nil
}

// ValidateStringLength validates string length
func ValidateStringLength(str string, min, max int) error {
	length := len(strings.TrimSpace(str))
	if length < min {
		return fmt.Errorf("must be at least %d characters long", min)
	}
	if length > max {
		return fmt.Errorf("must not exceed %d characters", max)
	}
	return nil
}

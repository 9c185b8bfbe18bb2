package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	for _, phone := range []string{"0912345678", "0312345678", " 0861234567 ", "0701234567", "0512345678"} {
		assert.True(t, IsValidPhone(phone), phone)
	}
	for _, phone := range []string{"", "091234567", "09123456789", "0112345678", "+84912345678", "09l2345678"} {
		assert.False(t, IsValidPhone(phone), phone)
	}
}

func TestUsername(t *testing.T) {
	assert.Equal(t, "an.nguyen", NormalizeUsername("  An.Nguyen "))

	ok, _ := ValidateUsername("an_nguyen")
	assert.True(t, ok)
	ok, msg := ValidateUsername("a!")
	assert.False(t, ok)
	assert.NotEmpty(t, msg)
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString(`  <b onclick="x()">hello</b> `))
	assert.Equal(t, "a & b", SanitizeString("a &amp; b"))
}

func TestFieldValidationErrors(t *testing.T) {
	errs := FieldValidationErrors{
		{Field: "customerName", Message: "Please enter your name"},
		{Field: "phoneNumber", Message: ErrInvalidPhone},
	}
	assert.Equal(t, "customerName: Please enter your name; phoneNumber: Invalid phone number", errs.Error())
}

func TestValueValidators(t *testing.T) {
	assert.NoError(t, ValidatePrice(decimal.NewFromInt(1)))
	assert.Error(t, ValidatePrice(decimal.Zero))
	assert.NoError(t, ValidateDiscountPercentage(100))
	assert.Error(t, ValidateDiscountPercentage(101))
	assert.Error(t, ValidateStock(-1))
	assert.NoError(t, ValidateRating(4.5))
	assert.Error(t, ValidateRating(0))
	assert.Error(t, ValidateStringLength(" a ", 2, 10))
	assert.Error(t, ValidateStringLength("abcdef", 2, 5))
}

func TestPersonName(t *testing.T) {
	name := "  nguyễn   VĂN <i>an</i> "
	got := PersonName(&name)
	if assert.NotNil(t, got) {
		assert.Equal(t, "Nguyễn Văn An", *got)
	}

	blank := "   "
	assert.Nil(t, PersonName(&blank))
	assert.Nil(t, PersonName(nil))
}

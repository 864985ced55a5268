package validation

import (
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
)

const (
	tagEmail     = "rx_email"
	tagLetterMix = "rx_letters_digits"
	tagUnsigned  = "rx_unsigned"
	tagPositive  = "ne=0"
	tagMinLength = "min=8"
	tagNotBlank  = "required"
)

// Local part from a permissive symbol set, "@", a host label, a dot and the TLD label(s).
var emailPattern = regexp.MustCompile(
	"^[a-zA-Z0-9!#\\$%&'\\*\\+-/=\\?\\^_`\\{\\|\\}~\\.]+@[a-zA-Z0-9\\-]+\\.[a-zA-Z\\.]+$",
)

var unsignedPattern = regexp.MustCompile(`^[0-9]+$`)

// NewEngine returns a validator/v10 instance with the custom tags the checks use.
func NewEngine() *validator.Validate {
	engine := validator.New(validator.WithRequiredStructEnabled())

	// The tag functions are static and the tag names constant, so registration cannot fail.
	_ = engine.RegisterValidation(tagEmail, func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = engine.RegisterValidation(tagLetterMix, func(fl validator.FieldLevel) bool {
		return hasLetterAndDigit(fl.Field().String())
	})
	_ = engine.RegisterValidation(tagUnsigned, func(fl validator.FieldLevel) bool {
		return isUnsigned(fl.Field().String())
	})

	return engine
}

func hasLetterAndDigit(s string) bool {
	var letter, digit bool
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
			letter = true
		case '0' <= r && r <= '9':
			digit = true
		}
		if letter && digit {
			return true
		}
	}

	return false
}

func isUnsigned(s string) bool {
	if !unsignedPattern.MatchString(s) {
		return false
	}
	_, err := strconv.ParseInt(s, 10, 64)

	return err == nil
}

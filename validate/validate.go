// Package validate contains custom validation functions
package validate

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/productr/server/enums"
	"github.com/productr/server/errors"
)

var (
	v          = validator.New()
	phoneRegex = regexp.MustCompile(`^\+?\d{7,15}$`)
)

// Identifier normalizes an email or a phone number into the canonical identifier
// that challenges and users are keyed by. Exactly one of email/phone is expected;
// when both are given the email is used.
func Identifier(email, phone string) (identifier string, channel enums.Channel, err error) {
	if email == "" && phone == "" {
		return "", "", errors.ErrProvideEmailOrPhone
	}

	if email != "" {
		if err := v.Var(email, "email"); err != nil {
			return "", "", errors.ErrInvalidEmail
		}

		return strings.ToLower(email), enums.ChannelEmail, nil
	}

	if !phoneRegex.MatchString(phone) {
		return "", "", errors.ErrInvalidPhone
	}

	return phone, enums.ChannelPhone, nil
}

// Package validators contains validators found throughout the application
// that have been abstracted away from the main code
package validators

import (
	"errors"
	"net/mail"
	"strings"
)

// Registration is restricted to one mail provider by policy.
const allowedEmailDomain = "gmail.com"

var (
	ErrEmailEmpty     = errors.New("no email address provided")
	ErrEmailInvalid   = errors.New("invalid email address provided")
	ErrEmailBadDomain = errors.New("only " + allowedEmailDomain + " emails are allowed")
)

// NormalizeEmail lowercases and trims an address so lookups and the
// unique index agree on one spelling.
func NormalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

// EmailValidator checks syntax and the domain policy. Run it on the
// normalized form.
func EmailValidator(e string) error {
	if e == "" {
		return ErrEmailEmpty
	}

	addr, err := mail.ParseAddress(e)
	if err != nil || addr.Address != e {
		return ErrEmailInvalid
	}

	_, domain, found := strings.Cut(e, "@")
	if !found || domain != allowedEmailDomain {
		return ErrEmailBadDomain
	}

	return nil
}

package validators

import (
	"errors"
	"unicode"
)

var ErrPasswordEmpty = errors.New("no password provided")

// PasswordValidator checks the composed password policy and returns
// every violated rule, not just the first one, so the client can show
// the full list at once.
func PasswordValidator(p string) []string {
	if p == "" {
		return []string{ErrPasswordEmpty.Error()}
	}

	var violations []string

	if len(p) < 6 {
		violations = append(violations, "password must be at least 6 characters long")
	}

	var upper, lower, digit, symbol bool
	for _, r := range p {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}

	if !upper {
		violations = append(violations, "password must contain at least one uppercase letter")
	}
	if !lower {
		violations = append(violations, "password must contain at least one lowercase letter")
	}
	if !digit {
		violations = append(violations, "password must contain at least one number")
	}
	if !symbol {
		violations = append(violations, "password must contain at least one special character")
	}

	return violations
}

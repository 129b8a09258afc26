// Package security contains everything related to the security of user data
package security

import "golang.org/x/crypto/bcrypt"

// Cost 12 keeps offline brute force expensive while staying usable for
// interactive login.
const bcryptCost = 12

type PasswordHasher struct {
	Cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{Cost: bcryptCost}
}

func (h *PasswordHasher) GenerateFromPassword(p string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(p), h.Cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPasswd compares a password p with the stored bcrypt hash e.
func (h *PasswordHasher) VerifyPasswd(p, e string) bool {
	return bcrypt.CompareHashAndPassword([]byte(e), []byte(p)) == nil
}

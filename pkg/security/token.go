package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// AuthTokenTTL is how long an issued token stays valid. Tokens are
// stateless: there is no revocation list, a leaked token works until it
// expires.
const AuthTokenTTL = 4 * time.Hour

// ErrInvalidToken is the single error returned for every verification
// failure. Callers can't tell an expired token from a tampered one, so
// neither can an attacker.
var ErrInvalidToken = errors.New("invalid token")

// Identity is what a verified token asserts about the caller.
type Identity struct {
	UserID string
	Email  string
}

// MakeAuthToken signs an identity assertion for id and email that
// expires in AuthTokenTTL.
func MakeAuthToken(userID, email string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(AuthTokenTTL).Unix(),
	})

	return t.SignedString([]byte(viper.GetString("jwt.secret")))
}

// ParseAuthToken verifies signature and expiry and returns the identity
// the token carries.
func ParseAuthToken(tokenStr string) (*Identity, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}

		return []byte(viper.GetString("jwt.secret")), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return nil, ErrInvalidToken
	}

	email, _ := claims["email"].(string)

	return &Identity{UserID: userID, Email: email}, nil
}

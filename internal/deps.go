package internal

import (
	"dropbase/airdrop-api/db"
	"dropbase/airdrop-api/pkg/security"
)

type Deps struct {
	DB     db.UserStore
	Hasher *security.PasswordHasher
}

package helpers

import (
	"errors"
	"strings"
	"sync"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptPHPPrefix = "$2y$"
	bcryptPrefix    = "$2a$"
	argon2idPrefix  = "$argon2id$"
)

// NormalizeBcryptHash rewrites the $2y$ prefix written by PHP's
// password_hash to the equivalent $2a$ prefix. Other hashes are returned as is.
func NormalizeBcryptHash(hash string) string {
	if strings.HasPrefix(hash, bcryptPHPPrefix) {
		return bcryptPrefix + strings.TrimPrefix(hash, bcryptPHPPrefix)
	}
	return hash
}

// ComparePassword reports whether password matches the stored hash.
// Both comparison paths are constant time.
func ComparePassword(hash string, password string) (bool, error) {
	if strings.HasPrefix(hash, argon2idPrefix) {
		return argon2id.ComparePasswordAndHash(password, hash)
	}

	err := bcrypt.CompareHashAndPassword([]byte(NormalizeBcryptHash(hash)), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func CreateHash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.New("can not create hash password")
	}

	return string(hash), nil
}

var dummyHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("matchdash-dummy-password"), bcrypt.DefaultCost)
	return hash
})

// BurnPasswordCheck spends the time of a real bcrypt comparison. It is used
// when the account does not exist so both failures take as long.
func BurnPasswordCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
}

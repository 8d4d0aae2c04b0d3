// file: internals/features/users/auth/service/password_service.go
package service

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword meng-hash password plaintext dengan bcrypt default cost.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword membandingkan plaintext dengan hash tersimpan.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

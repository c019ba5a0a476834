package auth

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Verifier checks a plaintext password against a stored hash.
type Verifier interface {
	Verify(hash, plain string) bool
}

type BcryptVerifier struct{}

func (BcryptVerifier) Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

var (
	dummyOnce sync.Once
	dummy     string
)

// DummyHash is a valid bcrypt hash that matches no real password. Comparing
// against it keeps unknown-account logins as slow as wrong-password ones.
func DummyHash() string {
	dummyOnce.Do(func() {
		h, err := HashPassword("mindconnect-no-such-account")
		if err == nil {
			dummy = h
		}
	})
	return dummy
}

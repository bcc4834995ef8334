package services

import (
	"fmt"
	"unicode/utf8"

	"github.com/akinalp/parkapp/pkg"
	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes, bcrypt'in işleyebildiği en uzun girdi.
const maxPasswordBytes = 72

// defaultBcryptCost, cost verilmediğinde kullanılır.
const defaultBcryptCost = 12

// passwordPolicy, kayıt, seed, sıfırlama ve şifre değişikliğinin ortak kuralı.
type passwordPolicy struct {
	minLength int
	cost      int
}

func newPasswordPolicy(minLength, cost int) passwordPolicy {
	if cost == 0 {
		cost = defaultBcryptCost
	}
	return passwordPolicy{minLength: minLength, cost: cost}
}

// check, minimum uzunluk (ErrWeakPassword) ve bcrypt üst sınırını kontrol eder.
func (p passwordPolicy) check(password string) error {
	if utf8.RuneCountInString(password) < p.minLength {
		return fmt.Errorf("%w: password must be at least %d characters", pkg.ErrWeakPassword, p.minLength)
	}
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("%w: password must be at most %d bytes", pkg.ErrBadRequest, maxPasswordBytes)
	}
	return nil
}

func (p passwordPolicy) hash(password string) (string, error) {
	if err := p.check(password); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// matches, hash'in password'e ait olup olmadığını döner.
func (p passwordPolicy) matches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

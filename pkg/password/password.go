// Package password envuelve bcrypt con el costo fijo que usa la API.
package password

import (
	"golang.org/x/crypto/bcrypt"
)

const (
	// Cost factor fijo para todos los hashes.
	Cost = 10
	// MaxBytes bcrypt solo acepta hasta 72 bytes de entrada.
	MaxBytes = 72
)

// FitsBcrypt indica si plain cabe en el límite de bcrypt (se cuentan bytes, no runas).
func FitsBcrypt(plain string) bool {
	return len(plain) <= MaxBytes
}

// Hash devuelve el hash bcrypt de plain.
func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare indica si plain corresponde al hash.
func Compare(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

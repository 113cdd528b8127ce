// Package password wraps bcrypt hashing behind a fixed work factor so every
// caller derives and checks credential hashes the same way.
package password

import "golang.org/x/crypto/bcrypt"

// cost 10 keeps hashing around tens of milliseconds on current hardware.
const cost = bcrypt.DefaultCost

// Hash derives a salted bcrypt hash from a plaintext password.
func Hash(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed
// stored hash is treated as a mismatch rather than an error; login must not
// distinguish a corrupt record from a wrong password.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

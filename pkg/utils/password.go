package utils

import "golang.org/x/crypto/bcrypt"

// bcryptCost 12 puts a single hash around 250ms on current hardware.
const bcryptCost = 12

// HashPassword hashes a plaintext password for storage on the users table.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// ComparePassword reports whether the plaintext password matches the
// stored bcrypt hash.
func ComparePassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

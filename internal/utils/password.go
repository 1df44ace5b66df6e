package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt hash of the password using the given cost.
// Each call salts independently, so equal passwords produce distinct hashes.
func HashPassword(password string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

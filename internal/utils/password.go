package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt hash of the password at the given cost.
// The cost comes from configuration so tests can dial it down; bcrypt
// itself rejects values outside its supported range.
func HashPassword(plain string, cost int) (string, error) {
    hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
    if err != nil {
        return "", err
    }
    return string(hash), nil
}

// VerifyPassword reports whether the password matches the stored bcrypt
// hash.  The comparison is constant time; any bcrypt error counts as a
// mismatch rather than surfacing to the login flow.
func VerifyPassword(hash, plain string) bool {
    return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

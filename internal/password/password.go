// Package password provides password hashing and verification.
package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = 12

// Hasher defines the interface for password hashing algorithms.
type Hasher interface {
	// Hash creates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A mismatch is not an
	// error; the error return is for malformed hashes only.
	Verify(password, hash string) (bool, error)
}

// Bcrypt implements Hasher using golang.org/x/crypto/bcrypt.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a bcrypt hasher with the given cost, clamped to the
// range the library accepts.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (b *Bcrypt) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

var _ Hasher = (*Bcrypt)(nil)

package security

import "golang.org/x/crypto/bcrypt"

// BcryptHasher derives and verifies password digests with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher builds a hasher at the given cost; non-positive values
// fall back to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

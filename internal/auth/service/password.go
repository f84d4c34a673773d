package service

import "golang.org/x/crypto/bcrypt"

// BcryptVerifier implements domain.PasswordVerifier on top of bcrypt.
type BcryptVerifier struct {
	cost int
}

func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{cost: bcrypt.DefaultCost}
}

func (v *BcryptVerifier) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), v.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (v *BcryptVerifier) Matches(plain, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plain)) == nil
}

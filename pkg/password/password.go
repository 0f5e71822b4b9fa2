package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the bcrypt cost used for all new hashes
	DefaultCost = 10

	errPasswordEmpty     = "password cannot be empty"
	errHashPasswordFmt   = "failed to hash password: %w"
	errVerifyPasswordFmt = "failed to verify password: %w"
)

// Hash generates a salted bcrypt hash of the password. It fails only on
// empty input or an underlying bcrypt failure, never on an otherwise valid
// password.
func Hash(password string) (string, error) {
	if len(password) == 0 {
		return "", fmt.Errorf(errPasswordEmpty)
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf(errHashPasswordFmt, err)
	}

	return string(bytes), nil
}

// Verify checks the password against a stored hash. A mismatch or a malformed
// stored hash reports (false, nil); a non-nil error means the verification
// subsystem itself failed, which callers must treat as an internal error and
// not as a wrong password.
func Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if isMalformedHash(err) {
		return false, nil
	}

	return false, fmt.Errorf(errVerifyPasswordFmt, err)
}

func isMalformedHash(err error) bool {
	if errors.Is(err, bcrypt.ErrHashTooShort) {
		return true
	}

	var versionErr bcrypt.HashVersionTooNewError
	var prefixErr bcrypt.InvalidHashPrefixError
	var costErr bcrypt.InvalidCostError
	return errors.As(err, &versionErr) || errors.As(err, &prefixErr) || errors.As(err, &costErr)
}

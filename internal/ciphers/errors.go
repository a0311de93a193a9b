package ciphers

import "fmt"

// UnsupportedKeySizeError is returned when an algorithm is asked to run with
// a key length it does not accept.
type UnsupportedKeySizeError struct {
	Algorithm Algorithm
	KeyBytes  int
}

func (e *UnsupportedKeySizeError) Error() string {
	return fmt.Sprintf("unsupported key size for %s: %d bits", e.Algorithm, e.KeyBytes*8)
}

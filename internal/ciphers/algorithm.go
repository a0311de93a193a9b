package ciphers

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"fmt"

	"github.com/RyuaNerin/go-krypto/seed"
	"github.com/dgryski/go-camellia"
	"github.com/dgryski/go-idea"
	"golang.org/x/crypto/blowfish"
	"golang.org/x/crypto/cast5"
)

// Algorithm identifies one of the block ciphers the benchmark knows about.
// The set is closed; dispatch happens in newBlock.
type Algorithm int

const (
	AES Algorithm = iota
	Blowfish
	Camellia
	TripleDES
	SEED
	IDEA
	CAST5
)

var algorithmNames = [...]string{
	AES:       "AES",
	Blowfish:  "Blowfish",
	Camellia:  "Camellia",
	TripleDES: "TripleDES",
	SEED:      "SEED",
	IDEA:      "IDEA",
	CAST5:     "CAST5",
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// BlockSize returns the cipher block size in bytes, which is also the
// length of the IV used for CBC.
func (a Algorithm) BlockSize() int {
	switch a {
	case AES, Camellia, SEED:
		return 16
	default:
		return 8
	}
}

// KeySizes lists the key lengths in bytes the algorithm is benchmarked with.
func (a Algorithm) KeySizes() []int {
	switch a {
	case AES, Blowfish, Camellia:
		return []int{16, 24, 32}
	case TripleDES:
		return []int{16, 24}
	case SEED, IDEA, CAST5:
		return []int{16}
	default:
		return nil
	}
}

// AcceptsKey reports whether a key of n bytes is valid for the algorithm.
func (a Algorithm) AcceptsKey(n int) bool {
	for _, size := range a.KeySizes() {
		if size == n {
			return true
		}
	}
	return false
}

// ParseAlgorithm maps a name as printed by String back to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm: %s", name)
}

// newBlock builds the raw block cipher. Callers must have checked the key
// length with AcceptsKey first.
func newBlock(a Algorithm, key []byte) (cipher.Block, error) {
	switch a {
	case AES:
		return aes.NewCipher(key)
	case Blowfish:
		return blowfish.NewCipher(key)
	case Camellia:
		return camellia.New(key)
	case TripleDES:
		if len(key) == 16 {
			// two-key 3DES: K1 || K2 || K1
			ede := make([]byte, 0, 24)
			ede = append(ede, key...)
			ede = append(ede, key[:8]...)
			key = ede
		}
		return des.NewTripleDESCipher(key)
	case SEED:
		return seed.NewCipher(key)
	case IDEA:
		return idea.NewCipher(key)
	case CAST5:
		return cast5.NewCipher(key)
	default:
		return nil, fmt.Errorf("unknown algorithm: %s", a)
	}
}

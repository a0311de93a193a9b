package ciphers

import (
	"fmt"
	"io"
)

// KeyClass is one of the three benchmark tiers.
type KeyClass int

const (
	Key128 KeyClass = 128
	Key192 KeyClass = 192
	Key256 KeyClass = 256
)

// AllKeyClasses returns the classes in the order they are benchmarked.
func AllKeyClasses() []KeyClass {
	return []KeyClass{Key128, Key192, Key256}
}

func (k KeyClass) Bits() int  { return int(k) }
func (k KeyClass) Bytes() int { return int(k) / 8 }

func (k KeyClass) String() string {
	return fmt.Sprintf("%dbit", int(k))
}

func (k KeyClass) valid() bool {
	return k == Key128 || k == Key192 || k == Key256
}

var classAlgorithms = map[KeyClass][]Algorithm{
	Key128: {AES, Blowfish, Camellia, TripleDES, SEED, IDEA, CAST5},
	Key192: {AES, Blowfish, Camellia, TripleDES},
	Key256: {AES, Blowfish, Camellia},
}

// Algorithms returns the ordered algorithm subset benchmarked for a class.
func Algorithms(k KeyClass) []Algorithm {
	algos := classAlgorithms[k]
	out := make([]Algorithm, len(algos))
	copy(out, algos)
	return out
}

// KeyMaterial holds the random keys and IVs shared by every run.
type KeyMaterial struct {
	Key128 []byte
	Key192 []byte
	Key256 []byte
	IV16   []byte
	IV8    []byte
}

// NewKeyMaterial draws all keys and IVs from r, normally crypto/rand.Reader.
func NewKeyMaterial(r io.Reader) (*KeyMaterial, error) {
	km := &KeyMaterial{
		Key128: make([]byte, 16),
		Key192: make([]byte, 24),
		Key256: make([]byte, 32),
		IV16:   make([]byte, 16),
		IV8:    make([]byte, 8),
	}
	for _, buf := range [][]byte{km.Key128, km.Key192, km.Key256, km.IV16, km.IV8} {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("failed to read key material: %w", err)
		}
	}
	return km, nil
}

// Key returns the key for the given class.
func (km *KeyMaterial) Key(k KeyClass) []byte {
	switch k {
	case Key128:
		return km.Key128
	case Key192:
		return km.Key192
	case Key256:
		return km.Key256
	}
	return nil
}

// IV returns the IV matching the given block size.
func (km *KeyMaterial) IV(blockSize int) []byte {
	if blockSize == 16 {
		return km.IV16
	}
	return km.IV8
}

package ciphers

import "fmt"

// Descriptor pairs an algorithm with the key-size class it runs under.
type Descriptor struct {
	Algorithm Algorithm
	KeyClass  KeyClass
}

// IVSize is the IV length CBC needs for this algorithm.
func (d Descriptor) IVSize() int {
	return d.Algorithm.BlockSize()
}

// Supports reports whether the algorithm accepts the class key length.
func (d Descriptor) Supports() bool {
	return d.Algorithm.AcceptsKey(d.KeyClass.Bytes())
}

// NewContext builds a fresh CBC context keyed with key. The IV is picked
// from iv16 or iv8 by block size.
func (d Descriptor) NewContext(key, iv16, iv8 []byte) (Context, error) {
	if len(key) != d.KeyClass.Bytes() || !d.Algorithm.AcceptsKey(len(key)) {
		return nil, &UnsupportedKeySizeError{Algorithm: d.Algorithm, KeyBytes: len(key)}
	}

	iv := iv8
	if d.IVSize() == 16 {
		iv = iv16
	}

	block, err := newBlock(d.Algorithm, key)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s cipher: %w", d.Algorithm, err)
	}
	return newCBCContext(d.Algorithm.String(), block, iv)
}

type entry struct {
	name string
	ctx  Context
}

// Registry is the ordered set of ready contexts for one key-size class.
type Registry struct {
	class   KeyClass
	entries []entry
}

// NewRegistry validates every (algorithm, key length) pair of the class and
// then builds one context per algorithm. No context is built if any pair is
// invalid.
func NewRegistry(class KeyClass, km *KeyMaterial) (*Registry, error) {
	if !class.valid() {
		return nil, fmt.Errorf("unknown key class: %d", int(class))
	}
	return newRegistry(class, Algorithms(class), km.Key(class), km.IV16, km.IV8)
}

func newRegistry(class KeyClass, algos []Algorithm, key, iv16, iv8 []byte) (*Registry, error) {
	descs := make([]Descriptor, len(algos))
	for i, a := range algos {
		descs[i] = Descriptor{Algorithm: a, KeyClass: class}
		if len(key) != class.Bytes() || !descs[i].Supports() {
			return nil, &UnsupportedKeySizeError{Algorithm: a, KeyBytes: len(key)}
		}
	}

	r := &Registry{class: class, entries: make([]entry, 0, len(descs))}
	for _, d := range descs {
		ctx, err := d.NewContext(key, iv16, iv8)
		if err != nil {
			return nil, err
		}
		r.entries = append(r.entries, entry{name: d.Algorithm.String(), ctx: ctx})
	}
	return r, nil
}

func (r *Registry) Class() KeyClass { return r.class }

func (r *Registry) Len() int { return len(r.entries) }

// Names returns the algorithm names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	return names
}

// Each visits the contexts in registry order and stops at the first error.
func (r *Registry) Each(fn func(name string, ctx Context) error) error {
	for _, e := range r.entries {
		if err := fn(e.name, e.ctx); err != nil {
			return err
		}
	}
	return nil
}

package ciphers

import (
	"crypto/cipher"
	"fmt"
)

// Context is a single-use incremental encryptor. It is not safe for
// concurrent use and records must be fed in order.
type Context interface {
	Name() string
	// Update encrypts as many whole blocks as are available and returns
	// them. A trailing partial block is kept for the next call.
	Update(p []byte) []byte
	// Buffered reports how many plaintext bytes are waiting for a full block.
	Buffered() int
}

// cbcContext chains one block cipher in CBC mode across Update calls.
type cbcContext struct {
	name    string
	mode    cipher.BlockMode
	pending []byte
}

func newCBCContext(name string, block cipher.Block, iv []byte) (*cbcContext, error) {
	if len(iv) != block.BlockSize() {
		return nil, fmt.Errorf("%s: IV length %d does not match block size %d", name, len(iv), block.BlockSize())
	}
	return &cbcContext{
		name:    name,
		mode:    cipher.NewCBCEncrypter(block, iv),
		pending: make([]byte, 0, block.BlockSize()),
	}, nil
}

func (c *cbcContext) Name() string { return c.name }

func (c *cbcContext) Buffered() int { return len(c.pending) }

func (c *cbcContext) Update(p []byte) []byte {
	bs := c.mode.BlockSize()
	total := len(c.pending) + len(p)
	full := total - total%bs
	if full == 0 {
		c.pending = append(c.pending, p...)
		return nil
	}

	in := make([]byte, 0, full)
	in = append(in, c.pending...)
	take := full - len(c.pending)
	in = append(in, p[:take]...)

	out := make([]byte, full)
	c.mode.CryptBlocks(out, in)

	c.pending = append(c.pending[:0], p[take:]...)
	return out
}

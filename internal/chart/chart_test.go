package chart

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/cipherbench/internal/benchmark"
	"github.com/user/cipherbench/internal/ciphers"
)

func classResult(class ciphers.KeyClass, pairs ...any) benchmark.ClassResult {
	r := benchmark.NewResults()
	for i := 0; i < len(pairs); i += 2 {
		r.Set(pairs[i].(string), pairs[i+1].(time.Duration))
	}
	return benchmark.ClassResult{Class: class, Results: r}
}

func TestRenderGroupsByAlgorithm(t *testing.T) {
	classes := []benchmark.ClassResult{
		classResult(ciphers.Key128, "AES", time.Second, "SEED", 2*time.Second),
		classResult(ciphers.Key192, "AES", 3*time.Second),
		classResult(ciphers.Key256, "AES", 4*time.Second),
	}

	buf := &bytes.Buffer{}
	c := New("Block Cipher Benchmark")
	c.Width = 20
	require.NoError(t, c.Render(buf, classes))

	out := buf.String()
	assert.Contains(t, out, "Block Cipher Benchmark")
	assert.Contains(t, out, "Block Cipher 192bit")

	aes := strings.Index(out, "AES\n")
	seed := strings.Index(out, "SEED\n")
	require.True(t, aes >= 0 && seed >= 0, out)
	assert.Less(t, aes, seed)

	// AES has three bars, SEED one
	assert.Equal(t, 3, strings.Count(out[aes:seed], "bit "))
	assert.Equal(t, 1, strings.Count(out[seed:], "bit "))
	assert.Contains(t, out, strings.Repeat(barRune, 20))
	assert.Contains(t, out, "4.0000s")
}

func TestRenderEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, New("empty").Render(buf, nil))
	assert.Contains(t, buf.String(), "empty")
}

func TestScale(t *testing.T) {
	assert.Equal(t, 0, scale(0, time.Second, 40))
	assert.Equal(t, 0, scale(time.Second, 0, 40))
	assert.Equal(t, 1, scale(time.Nanosecond, time.Hour, 40))
	assert.Equal(t, 20, scale(time.Second, 2*time.Second, 40))
	assert.Equal(t, 40, scale(2*time.Second, 2*time.Second, 40))
}

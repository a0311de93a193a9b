package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLines(t *testing.T, n int) string {
	t.Helper()
	var sb strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "line %d of the benchmark corpus\n", i)
	}
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0644))
	return path
}

func TestLoadTruncates(t *testing.T) {
	tests := []struct {
		lines int
		want  int
	}{
		{5000, 100},
		{5049, 100},
		{50, 1},
		{49, 0},
		{0, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d lines", tt.lines), func(t *testing.T) {
			c, err := Load(writeLines(t, tt.lines))
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Len())
			assert.Equal(t, tt.lines, c.SourceLines())
		})
	}
}

func TestLoadKeepsOrderAndTerminators(t *testing.T) {
	c, err := Load(writeLines(t, 200))
	require.NoError(t, err)
	require.Equal(t, 4, c.Len())

	var total int64
	for i, r := range c.Records() {
		assert.Equal(t, fmt.Sprintf("line %d of the benchmark corpus\n", i), string(r))
		total += int64(len(r))
	}
	assert.Equal(t, total, c.Bytes())
}

func TestLoadLastLineWithoutNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tail.txt")
	content := strings.Repeat("x\n", 99) + "last"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100, c.SourceLines())
	assert.Equal(t, 2, c.Len())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "missing.txt")
}

package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"
	"time"
)

// FileInfo describes a file committed by an AtomicWriter.
type FileInfo struct {
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	Hash      string    `json:"hash"`
	CreatedAt time.Time `json:"created_at"`
}

// AtomicWriter writes to a temp file next to the destination and renames it
// into place on Commit, so a failed run never leaves a partial file behind.
type AtomicWriter struct {
	file      *os.File
	hash      hash.Hash
	size      int64
	finalPath string
	done      bool
}

func CreateAtomic(path string) (*AtomicWriter, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	return &AtomicWriter{
		file:      file,
		hash:      sha256.New(),
		finalPath: path,
	}, nil
}

func (w *AtomicWriter) Write(p []byte) (n int, err error) {
	n, err = w.file.Write(p)
	if err != nil {
		return n, err
	}

	w.hash.Write(p[:n])
	w.size += int64(n)
	return n, nil
}

// Commit syncs the temp file and moves it over the destination, replacing
// any existing file.
func (w *AtomicWriter) Commit() (*FileInfo, error) {
	if w.done {
		return nil, fmt.Errorf("writer for %s already closed", w.finalPath)
	}
	w.done = true
	tempPath := w.file.Name()

	if err := w.file.Sync(); err != nil {
		w.file.Close()
		os.Remove(tempPath)
		return nil, fmt.Errorf("failed to sync %s: %w", tempPath, err)
	}
	if err := w.file.Close(); err != nil {
		os.Remove(tempPath)
		return nil, err
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		os.Remove(tempPath)
		return nil, err
	}

	if err := os.Rename(tempPath, w.finalPath); err != nil {
		os.Remove(tempPath)
		return nil, fmt.Errorf("failed to move results file: %w", err)
	}

	return &FileInfo{
		Path:      w.finalPath,
		Size:      w.size,
		Hash:      hex.EncodeToString(w.hash.Sum(nil)),
		CreatedAt: time.Now(),
	}, nil
}

// Abort discards the temp file. It is a no-op after Commit.
func (w *AtomicWriter) Abort() {
	if w.done {
		return
	}
	w.done = true
	w.file.Close()
	os.Remove(w.file.Name())
}

// WriteFile writes everything produced by fn to path atomically.
func WriteFile(path string, fn func(io.Writer) error) (*FileInfo, error) {
	w, err := CreateAtomic(path)
	if err != nil {
		return nil, err
	}
	if err := fn(w); err != nil {
		w.Abort()
		return nil, err
	}
	return w.Commit()
}

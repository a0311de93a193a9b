package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const bytesPerMB = 1_000_000

// Augment doubles the contents of path, appending the file to itself, until
// it is at least thresholdMB megabytes. It returns the final size in MB.
func Augment(path string, thresholdMB float64, logger *logrus.Logger) (float64, error) {
	if thresholdMB <= 0 {
		return 0, fmt.Errorf("threshold must be positive, got %v", thresholdMB)
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	for {
		st, err := f.Stat()
		if err != nil {
			return 0, err
		}
		size := st.Size()
		sizeMB := float64(size) / bytesPerMB

		logger.WithFields(logrus.Fields{
			"path":    path,
			"size_mb": fmt.Sprintf("%.2f", sizeMB),
		}).Info("current file size")

		if sizeMB >= thresholdMB {
			return sizeMB, nil
		}
		if size == 0 {
			return sizeMB, fmt.Errorf("%s is empty and cannot grow", path)
		}

		if _, err := f.Seek(0, io.SeekEnd); err != nil {
			return 0, err
		}
		n, err := io.Copy(f, io.NewSectionReader(f, 0, size))
		if err != nil {
			return 0, fmt.Errorf("failed to append to %s: %w", path, err)
		}
		if n == 0 {
			return sizeMB, fmt.Errorf("no data appended to %s", path)
		}
	}
}

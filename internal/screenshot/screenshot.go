// Package screenshot saves frames as numbered BMP files. Each file name
// prefix keeps its own counter, starting at 0.
package screenshot

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
)

// File name prefixes.
const (
	GamePrefix     = "Omega Thunder-screenshot "
	GameOverPrefix = "Omega Thunder-game over "
)

// Writer numbers and writes screenshots into one directory.
type Writer struct {
	dir    string
	counts map[string]int
}

// NewWriter returns a writer for dir. The directory is created on the first
// save.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir, counts: make(map[string]int)}
}

// Save encodes img to the next file for prefix and returns its path. The
// counter advances even when the write fails, so a retry never overwrites.
func (w *Writer) Save(prefix string, img image.Image) (string, error) {
	n := w.counts[prefix]
	w.counts[prefix]++
	path := filepath.Join(w.dir, fmt.Sprintf("%s%d.bmp", prefix, n))

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create screenshot dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create screenshot: %w", err)
	}
	if err := bmp.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to encode screenshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write screenshot: %w", err)
	}
	return path, nil
}

// Count returns how many saves prefix has had.
func (w *Writer) Count(prefix string) int { return w.counts[prefix] }

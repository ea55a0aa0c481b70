package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Writer persists generated documents below a base directory. Existing files
// are overwritten without warning.
type Writer struct {
	fs      afero.Fs
	baseDir string
}

// NewWriter creates a writer rooted at baseDir on fs
func NewWriter(fs afero.Fs, baseDir string) *Writer {
	if baseDir == "" {
		baseDir = "."
	}
	return &Writer{fs: fs, baseDir: baseDir}
}

// Write creates the document's directory if needed, writes the content and
// returns the path that was written
func (w *Writer) Write(doc *GeneratedDocument) (string, error) {
	target := filepath.Join(w.baseDir, filepath.FromSlash(doc.Path))

	if err := w.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", target, err)
	}
	if err := afero.WriteFile(w.fs, target, []byte(doc.Content), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}

	return target, nil
}

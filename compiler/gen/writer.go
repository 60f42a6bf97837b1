package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"golang.org/x/tools/imports"
)

// WriterMetrics tracks flush performance.
type WriterMetrics struct {
	FilesWritten int
	TotalBytes   int64
	FormatTime   time.Duration
	WriteTime    time.Duration
}

// Manifest buffers generated files until the whole run has succeeded.
// It is safe for concurrent use.
type Manifest struct {
	mu      sync.Mutex
	files   map[string][]byte
	metrics WriterMetrics
}

// NewManifest returns an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{files: make(map[string][]byte)}
}

// Add records a file, replacing any previous content under the same name.
func (m *Manifest) Add(name string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[name] = content
}

// Len returns the number of files.
func (m *Manifest) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.files)
}

// Files returns the file names in sorted order.
func (m *Manifest) Files() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.files))
	for name := range m.files {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Content returns the content of a file.
func (m *Manifest) Content(name string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.files[name]
	return b, ok
}

// Metrics returns the metrics of the last flush.
func (m *Manifest) Metrics() WriterMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.metrics
}

var formatOptions = &imports.Options{
	Comments:   true,
	TabIndent:  true,
	TabWidth:   8,
	FormatOnly: true,
}

// Flush formats every file and writes it under dir.
func (m *Manifest) Flush(dir string) error {
	var metrics WriterMetrics
	for _, name := range m.Files() {
		content, _ := m.Content(name)
		fullPath := filepath.Join(dir, filepath.FromSlash(name))

		start := time.Now()
		formatted, err := imports.Process(fullPath, content, formatOptions)
		if err != nil {
			// Write unformatted file for debugging (errors intentionally ignored as we're already in error state)
			debugPath := fullPath + ".error"
			_ = os.MkdirAll(filepath.Dir(debugPath), 0o755)
			_ = os.WriteFile(debugPath, content, 0o644)
			return NewGenerationError("write", name, fmt.Sprintf("format (unformatted written to %s)", debugPath), err)
		}
		metrics.FormatTime += time.Since(start)

		start = time.Now()
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			return NewGenerationError("write", name, "create directory", err)
		}
		if err := os.WriteFile(fullPath, formatted, 0o644); err != nil {
			return NewGenerationError("write", name, "", err)
		}
		metrics.WriteTime += time.Since(start)
		metrics.FilesWritten++
		metrics.TotalBytes += int64(len(formatted))
	}
	m.mu.Lock()
	m.metrics = metrics
	m.mu.Unlock()
	return nil
}

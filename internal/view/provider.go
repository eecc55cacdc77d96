// Package view builds LineView documents: it drives the source-stack
// interpreter over directive streams, applies the mapper chains, resolves
// includes and materializes the final ordered line sequence.
package view

import (
	"io"
	"os"
)

// Provider supplies readers for absolute, filesystem-resolved paths. It
// must support repeated calls for repeated includes of the same path.
type Provider interface {
	Provide(path string) (io.ReadCloser, error)
}

// FileProvider reads sources from the local filesystem.
type FileProvider struct{}

// Provide opens the file at path.
func (FileProvider) Provide(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

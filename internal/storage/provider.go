// Package storage defines the single-file persistence abstraction.
package storage

// Provider is the interface for reading and replacing the backing file.
type Provider interface {
	// Read returns the full contents of the backing file.
	Read() ([]byte, error)
	// Write atomically replaces the backing file with content.
	Write(content []byte) error
	// Path returns the absolute path of the backing file.
	Path() string
}

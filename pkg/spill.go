// Package pkg provides utilities shared by the repattern commands.
package pkg

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// SpillDirName is the directory under os.TempDir holding spill files.
const SpillDirName = "repattern-spill"

// Spill is an append-only, disk-backed sequence of items of type T. It lets a run
// hold results for many change-sets without keeping them all in memory.
type Spill[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	AppendBatch(items []T) error
	Get(index uint64) (T, error)
	Range(f func(index uint64, item T) error) error
	// Close closes and removes the backing file.
	Close() error
}

type msgpackSpill[T any] struct {
	path    string
	file    *os.File
	encoder *msgpack.Encoder
	mu      sync.Mutex
	length  uint64
}

// NewSpill creates an empty Spill backed by a msgpack stream in a temp file.
func NewSpill[T any]() (Spill[T], error) {
	dir := filepath.Join(os.TempDir(), SpillDirName)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		slog.Error("Failed to create spill directory", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create spill directory: %w", err)
	}

	file, err := os.CreateTemp(dir, "spill-*.msgpack")
	if err != nil {
		slog.Error("Failed to create spill file", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create spill file: %w", err)
	}

	slog.Debug("Created spill", "path", file.Name())

	return &msgpackSpill[T]{
		path:    file.Name(),
		file:    file,
		encoder: msgpack.NewEncoder(file),
	}, nil
}

func (s *msgpackSpill[T]) Path() string {
	return s.path
}

func (s *msgpackSpill[T]) Len() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.length
}

func (s *msgpackSpill[T]) Append(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return fmt.Errorf("spill %s is closed", s.path)
	}

	if err := s.encoder.Encode(item); err != nil {
		slog.Error("Failed to encode spill item", "path", s.path, "index", s.length, "error", err)
		return fmt.Errorf("failed to encode item: %w", err)
	}

	s.length++

	return nil
}

func (s *msgpackSpill[T]) AppendBatch(items []T) error {
	for _, item := range items {
		if err := s.Append(item); err != nil {
			return err
		}
	}

	return nil
}

func (s *msgpackSpill[T]) Get(index uint64) (T, error) {
	var found T

	err := s.Range(func(i uint64, item T) error {
		if i == index {
			found = item
			return errStopRange
		}

		return nil
	})

	switch {
	case errors.Is(err, errStopRange):
		return found, nil
	case err != nil:
		return found, err
	default:
		return found, fmt.Errorf("index %d out of bounds (length %d)", index, s.Len())
	}
}

func (s *msgpackSpill[T]) Range(fn func(index uint64, item T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return fmt.Errorf("spill %s is closed", s.path)
	}

	file, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("failed to open spill: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("Failed to close spill reader", "path", s.path, "error", err)
		}
	}()

	decoder := msgpack.NewDecoder(file)

	for i := uint64(0); i < s.length; i++ {
		var item T
		if err := decoder.Decode(&item); err != nil {
			return fmt.Errorf("failed to decode item at index %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}

	return nil
}

func (s *msgpackSpill[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}

	err := s.file.Close()
	s.file = nil

	if removeErr := os.Remove(s.path); removeErr != nil && err == nil {
		err = removeErr
	}

	if err != nil {
		slog.Error("Failed to close spill", "path", s.path, "error", err)
		return fmt.Errorf("failed to close spill: %w", err)
	}

	slog.Debug("Closed spill", "path", s.path, "length", s.length)

	return nil
}

var errStopRange = errors.New("stop range")

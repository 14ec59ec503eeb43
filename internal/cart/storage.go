package cart

import (
	"errors"
	"os"
)

// FileStorage persists the cart snapshot to a single file, the durable
// stand-in for browser-local storage.
type FileStorage struct {
	Path string
}

func (f FileStorage) Load() ([]byte, error) {
	state, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return state, err
}

func (f FileStorage) Save(state []byte) error {
	return os.WriteFile(f.Path, state, 0o644)
}

package keysheet

import (
	"fmt"
	"os"
	"sync"

	domaintypes "enigma/internal/domain/types"
)

// FileStore reads and writes key sheets on the local filesystem.
type FileStore struct {
	mu sync.Mutex

	// scrypt cost parameters; tests lower them.
	n, r, p int
}

// NewFileStore returns a store using the default scrypt parameters.
func NewFileStore() *FileStore {
	n, r, p := scryptParamsDefault()
	return &FileStore{n: n, r: r, p: p}
}

// SaveKeySheet writes cfg to path, sealed when passphrase is non-empty.
func (s *FileStore) SaveKeySheet(path, passphrase string, cfg domaintypes.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	raw, err := Marshal(cfg)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := raw
	if passphrase != "" {
		out, err = seal(passphrase, raw, s.n, s.r, s.p)
		zero(raw)
		if err != nil {
			return err
		}
	}
	return writeFile(path, out, 0o600)
}

// LoadKeySheet reads the sheet at path. A passphrase is required only for
// sealed sheets and ignored otherwise.
func (s *FileStore) LoadKeySheet(path, passphrase string) (domaintypes.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(path)
	if err != nil {
		return domaintypes.Config{}, err
	}
	if isSealed(b) {
		if passphrase == "" {
			return domaintypes.Config{}, ErrPassphraseRequired
		}
		pt, err := open(passphrase, b)
		if err != nil {
			return domaintypes.Config{}, err
		}
		defer zero(pt)
		b = pt
	}
	cfg, err := Unmarshal(b)
	if err != nil {
		return domaintypes.Config{}, fmt.Errorf("key sheet %s: %w", path, err)
	}
	return cfg, nil
}

package keysheet

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"unicode"

	"enigma/internal/domain"
	sheets "enigma/internal/keysheet"
	"enigma/internal/machine"
	"enigma/internal/rotor"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
)

// Service manages key sheets using a backing store.
type Service struct {
	store domain.KeySheetStore
}

// New returns a key sheet service backed by the given store.
func New(s domain.KeySheetStore) *Service { return &Service{store: s} }

// Issue checks cfg, writes it to path (sealed when passphrase is set) and
// returns its fingerprint.
func (s *Service) Issue(path, passphrase string, cfg domain.Config) (domain.Fingerprint, error) {
	if passphrase != "" && !isSecurePassphrase(passphrase) {
		return "", ErrWeakPassphrase
	}
	if _, err := machine.New(cfg); err != nil {
		return "", err
	}
	if err := s.store.SaveKeySheet(path, passphrase, cfg); err != nil {
		return "", err
	}
	return sheets.Fingerprint(cfg)
}

// Load reads the sheet at path and checks that it builds a machine.
func (s *Service) Load(path, passphrase string) (domain.Config, error) {
	cfg, err := s.store.LoadKeySheet(path, passphrase)
	if err != nil {
		return domain.Config{}, err
	}
	if _, err := machine.New(cfg); err != nil {
		return domain.Config{}, fmt.Errorf("key sheet %s: %w", path, err)
	}
	return cfg, nil
}

// Fingerprint loads the sheet at path and returns its fingerprint.
func (s *Service) Fingerprint(path, passphrase string) (domain.Fingerprint, error) {
	cfg, err := s.Load(path, passphrase)
	if err != nil {
		return "", err
	}
	return sheets.Fingerprint(cfg)
}

// Generate draws a random three-rotor setting: three different rotors from
// I-V, reflector B, random rings and window letters, and ten plug leads.
func Generate() (domain.Config, error) {
	var catalog []domain.RotorName
	for _, name := range rotor.Names(rotor.KindRotor) {
		spec, err := rotor.Lookup(name)
		if err != nil {
			return domain.Config{}, err
		}
		if spec.HasNotch() {
			catalog = append(catalog, name)
		}
	}
	if err := shuffle(len(catalog), func(i, j int) { catalog[i], catalog[j] = catalog[j], catalog[i] }); err != nil {
		return domain.Config{}, err
	}

	cfg := domain.Config{Reflector: "B"}
	for _, name := range catalog[:3] {
		pos, err := randInt(26)
		if err != nil {
			return domain.Config{}, err
		}
		ring, err := randInt(26)
		if err != nil {
			return domain.Config{}, err
		}
		cfg.Rotors = append(cfg.Rotors, domain.RotorSpec{
			Name:     name,
			Position: string(rune('A' + pos)),
			Ring:     ring + 1,
		})
	}

	letters := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	if err := shuffle(len(letters), func(i, j int) { letters[i], letters[j] = letters[j], letters[i] }); err != nil {
		return domain.Config{}, err
	}
	for i := 0; i < 10; i++ {
		cfg.PlugLeads = append(cfg.PlugLeads, string(letters[2*i:2*i+2]))
	}
	return cfg, nil
}

// shuffle is a Fisher-Yates shuffle driven by crypto/rand.
func shuffle(n int, swap func(i, j int)) error {
	for i := n - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return err
		}
		swap(i, j)
	}
	return nil
}

func randInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.KeySheetService.
var _ domain.KeySheetService = (*Service)(nil)

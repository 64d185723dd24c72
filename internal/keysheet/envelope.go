package keysheet

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const (
	// The current supported version of the sealed blob format stored on disk.
	envelopeFormatVersion = 1
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// ciphertext has been modified / corrupted.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted key sheet")

	// ErrPassphraseRequired is returned when a sealed sheet is read without one.
	ErrPassphraseRequired = errors.New("key sheet is sealed; passphrase required")
)

// blob is the on-disk JSON structure holding the ciphertext and KDF parameters.
type blob struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// isSealed reports whether b looks like a sealed envelope rather than YAML.
func isSealed(b []byte) bool {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return false
	}
	return bl.V > 0 && len(bl.Cipher) > 0
}

// seal derives a key from passphrase and encrypts raw into a JSON blob.
func seal(passphrase string, raw []byte, N, r, p int) ([]byte, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt[:], N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt-bound key is fresh per seal
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	return json.Marshal(blob{
		V:      envelopeFormatVersion,
		Salt:   salt[:],
		N:      N,
		R:      r,
		P:      p,
		Cipher: ct,
	})
}

// open decrypts a JSON blob using a key derived from passphrase.
func open(passphrase string, b []byte) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, err
	}
	if bl.V > envelopeFormatVersion {
		return nil, fmt.Errorf("unsupported key sheet envelope version %d", bl.V)
	}

	key, err := scrypt.Key([]byte(passphrase), bl.Salt, bl.N, bl.R, bl.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], bl.Cipher, bl.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

// zero overwrites b with zeros in a constant-time friendly way.
func zero(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}

// Tunables for scrypt key derivation.
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }

package keysheet

import (
	"crypto/sha256"
	"encoding/hex"

	domaintypes "enigma/internal/domain/types"
)

// Fingerprint returns a short hex fingerprint of a setting, so two
// operators can confirm they hold the same sheet without reading it out.
//
// It hashes the canonical YAML with SHA-256 and truncates to 10 bytes
// (20 hex chars).
func Fingerprint(cfg domaintypes.Config) (domaintypes.Fingerprint, error) {
	raw, err := Marshal(cfg)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return domaintypes.Fingerprint(hex.EncodeToString(sum[:10])), nil
}

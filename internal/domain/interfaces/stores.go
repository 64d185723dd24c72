package interfaces

import domaintypes "enigma/internal/domain/types"

// KeySheetStore persists machine settings. An empty passphrase means the
// sheet is stored as plain YAML.
type KeySheetStore interface {
	SaveKeySheet(path, passphrase string, cfg domaintypes.Config) error
	LoadKeySheet(path, passphrase string) (domaintypes.Config, error)
}

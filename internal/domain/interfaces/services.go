package interfaces

import domaintypes "enigma/internal/domain/types"

// SessionService opens operator sessions, one machine each.
type SessionService interface {
	Open(cfg domaintypes.Config, opts domaintypes.TextOptions) (Session, error)
}

// Session is one operator at one machine.
type Session interface {
	ID() string
	Machine() Encoder
	EncodeMessage(text string) (string, error)
}

// KeySheetService issues and loads settings through a KeySheetStore.
type KeySheetService interface {
	Issue(path, passphrase string, cfg domaintypes.Config) (domaintypes.Fingerprint, error)
	Load(path, passphrase string) (domaintypes.Config, error)
	Fingerprint(path, passphrase string) (domaintypes.Fingerprint, error)
}

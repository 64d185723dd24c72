package interfaces

import domaintypes "enigma/internal/domain/types"

// Encoder is a configured machine driven one key press at a time.
type Encoder interface {
	EncodeChar(c byte) (byte, error)
	EncodeText(text string) (string, error)
	Positions() string
	Reset(cfg domaintypes.Config) error
	Config() domaintypes.Config
}

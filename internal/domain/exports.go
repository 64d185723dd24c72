package domain

import (
	interfaces "enigma/internal/domain/interfaces"
	types "enigma/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	RotorName   = types.RotorName
	RotorSpec   = types.RotorSpec
	Config      = types.Config
	TextOptions = types.TextOptions
	Fingerprint = types.Fingerprint
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Encoder         = interfaces.Encoder
	KeySheetStore   = interfaces.KeySheetStore
	KeySheetService = interfaces.KeySheetService
	SessionService  = interfaces.SessionService
	Session         = interfaces.Session
)

// Error taxonomy, re-exported for callers outside the core.
var (
	ErrInvalidConfiguration     = types.ErrInvalidConfiguration
	ErrInvalidLeadConfiguration = types.ErrInvalidLeadConfiguration
	ErrOutOfRange               = types.ErrOutOfRange
	ErrInvalidCharacter         = types.ErrInvalidCharacter
)

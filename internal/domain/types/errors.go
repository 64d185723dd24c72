package types

import (
	"errors"

	"enigma/internal/alphabet"
)

var (
	// ErrInvalidConfiguration covers a bad rotor count, an unknown rotor or
	// reflector name, and a position or ring setting out of range.
	ErrInvalidConfiguration = errors.New("invalid machine configuration")

	// ErrInvalidLeadConfiguration covers a malformed plug lead, a letter used
	// twice across leads, and more than ten leads.
	ErrInvalidLeadConfiguration = errors.New("invalid plug lead configuration")

	// ErrOutOfRange is returned when a slot outside the fitted rotors is addressed.
	ErrOutOfRange = errors.New("rotor slot out of range")

	// ErrInvalidCharacter is returned for key presses outside A-Z.
	ErrInvalidCharacter = alphabet.ErrInvalidCharacter
)

package rotor

import (
	"fmt"

	"enigma/internal/alphabet"
	domaintypes "enigma/internal/domain/types"
)

// Direction is the sense in which a rotor turns.
type Direction int

const (
	Clockwise     Direction = 1
	AntiClockwise Direction = -1
)

// Flow is the direction current takes through a wheel.
type Flow int

const (
	// Forward is right to left, from the keyboard towards the reflector.
	Forward Flow = iota
	// Reverse is left to right, from the reflector back to the lamps.
	Reverse
)

// Rotor is one fitted wheel.
type Rotor struct {
	spec     Spec
	wiring   [alphabet.Size]byte
	inverse  [alphabet.Size]byte
	ring     int
	initial  int
	position int
	slot     int
}

// New fits the named catalog rotor at the given window letter and ring setting.
func New(name domaintypes.RotorName, position byte, ring int) (*Rotor, error) {
	s, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if s.Kind != KindRotor {
		return nil, fmt.Errorf("%w: %q is a reflector, not a rotor", domaintypes.ErrInvalidConfiguration, name)
	}
	return Build(s, position, ring)
}

// NewReflector fits the named catalog reflector.
func NewReflector(name domaintypes.RotorName) (*Rotor, error) {
	s, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if s.Kind != KindReflector {
		return nil, fmt.Errorf("%w: %q is a rotor, not a reflector", domaintypes.ErrInvalidConfiguration, name)
	}
	return Build(s, 'A', 1)
}

// Build fits an arbitrary wheel. The wiring is checked, so Build also
// serves wheels from outside the catalog.
func Build(s Spec, position byte, ring int) (*Rotor, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	p, err := alphabet.ParsePosition(position)
	if err != nil {
		return nil, fmt.Errorf("%w: position %q for rotor %q", domaintypes.ErrInvalidConfiguration, position, s.Name)
	}
	if ring < 1 || ring > alphabet.Size {
		return nil, fmt.Errorf("%w: ring setting %d for rotor %q must be within 1-26", domaintypes.ErrInvalidConfiguration, ring, s.Name)
	}

	r := &Rotor{spec: s, ring: ring, initial: p, position: p, slot: 1}
	for i := 0; i < alphabet.Size; i++ {
		c := s.Wiring[i]
		r.wiring[i] = c
		r.inverse[c-'A'] = byte('A' + i)
	}
	return r, nil
}

// Name returns the catalog name.
func (r *Rotor) Name() domaintypes.RotorName { return r.spec.Name }

// Kind reports whether this is a rotor or a reflector.
func (r *Rotor) Kind() Kind { return r.spec.Kind }

// Spec returns the wheel's catalog entry.
func (r *Rotor) Spec() Spec { return r.spec }

// Ring returns the ring setting, 1-26.
func (r *Rotor) Ring() int { return r.ring }

// Position returns the current rotational offset, 1-26.
func (r *Rotor) Position() int { return r.position }

// Window returns the letter visible in the rotor window.
func (r *Rotor) Window() byte { return alphabet.Letter(r.position) }

// InitialWindow returns the letter the rotor was fitted at.
func (r *Rotor) InitialWindow() byte { return alphabet.Letter(r.initial) }

// SetPosition turns the rotor by hand to show letter c.
func (r *Rotor) SetPosition(c byte) error {
	p, err := alphabet.ParsePosition(c)
	if err != nil {
		return fmt.Errorf("%w: position %q for rotor %q", domaintypes.ErrInvalidConfiguration, c, r.spec.Name)
	}
	r.position = p
	return nil
}

// Slot is the rotor's place counted from the rightmost, fastest rotor.
func (r *Rotor) Slot() int { return r.slot }

// SetSlot records where the machine fitted the rotor.
func (r *Rotor) SetSlot(slot int) { r.slot = slot }

// AtNotch reports whether the window shows the notch letter. Wheels
// without a notch are never at notch.
func (r *Rotor) AtNotch() bool {
	return r.spec.HasNotch() && r.Window() == r.spec.Notch
}

// Rotate advances the rotor one step in direction d.
func (r *Rotor) Rotate(d Direction) {
	r.position = alphabet.NormalizePosition(r.position + int(d))
}

// Encode passes letter c through the wheel in the given flow direction.
// c must be an upper-case letter.
func (r *Rotor) Encode(c byte, flow Flow) byte {
	offset := r.position - alphabet.Position('A')
	ringOffset := r.ring - 1

	entry := alphabet.Letter(alphabet.NormalizePosition(alphabet.Position(c) + offset - ringOffset))

	var mapped byte
	if flow == Forward {
		mapped = r.EncodeRightToLeft(entry)
	} else {
		mapped = r.EncodeLeftToRight(entry)
	}

	return alphabet.Letter(alphabet.NormalizePosition(alphabet.Position(mapped) - offset + ringOffset))
}

// EncodeRightToLeft applies the raw wiring, ignoring position and ring.
func (r *Rotor) EncodeRightToLeft(c byte) byte {
	return r.wiring[alphabet.Position(c)-1]
}

// EncodeLeftToRight applies the inverse wiring, ignoring position and ring.
func (r *Rotor) EncodeLeftToRight(c byte) byte {
	return r.inverse[alphabet.Position(c)-1]
}

// Clone returns an independent copy, including the current position.
func (r *Rotor) Clone() *Rotor {
	cp := *r
	return &cp
}

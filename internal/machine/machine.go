package machine

import (
	"fmt"
	"strings"

	"enigma/internal/alphabet"
	domaintypes "enigma/internal/domain/types"
	"enigma/internal/plugboard"
	"enigma/internal/rotor"
)

// Machine is a configured cipher machine.
type Machine struct {
	cfg       domaintypes.Config
	rotors    []*rotor.Rotor // slot order: rotors[0] is slot 1, the rightmost
	reflector *rotor.Rotor
	plugboard *plugboard.Plugboard
}

// State is a snapshot of rotor positions, taken with Snapshot.
type State struct {
	positions []int
}

// String renders the snapshot left to right, as read in the windows.
func (s State) String() string {
	var b strings.Builder
	for i := len(s.positions) - 1; i >= 0; i-- {
		b.WriteByte(alphabet.Letter(s.positions[i]))
	}
	return b.String()
}

// New builds a machine from a complete configuration. Nothing is returned
// unless every part is valid.
func New(cfg domaintypes.Config) (*Machine, error) {
	m := &Machine{}
	if err := m.Reset(cfg); err != nil {
		return nil, err
	}
	return m, nil
}

// Reset replaces rotors, reflector and plugboard with a fresh build of cfg.
// On error the machine is left exactly as it was.
func (m *Machine) Reset(cfg domaintypes.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	n := len(cfg.Rotors)
	rotors := make([]*rotor.Rotor, n)
	for i, spec := range cfg.Rotors {
		r, err := rotor.New(spec.Name, spec.Position[0], spec.Ring)
		if err != nil {
			return err
		}
		// Configured left to right; slot 1 is the rightmost.
		slot := n - i
		r.SetSlot(slot)
		rotors[slot-1] = r
	}

	reflector, err := rotor.NewReflector(cfg.Reflector)
	if err != nil {
		return err
	}

	pb, err := plugboard.New(cfg.PlugLeads)
	if err != nil {
		return err
	}

	m.cfg = cfg.Clone()
	m.rotors = rotors
	m.reflector = reflector
	m.plugboard = pb
	return nil
}

// Config returns a copy of the configuration the machine was built from.
// Positions are the initial ones, not the current ones.
func (m *Machine) Config() domaintypes.Config { return m.cfg.Clone() }

// NumRotors returns the number of fitted rotors, excluding the reflector.
func (m *Machine) NumRotors() int { return len(m.rotors) }

// Positions returns the current window letters, left to right.
func (m *Machine) Positions() string { return m.Snapshot().String() }

// RingSettings returns the ring settings, left to right.
func (m *Machine) RingSettings() []int {
	out := make([]int, 0, len(m.rotors))
	for i := len(m.rotors) - 1; i >= 0; i-- {
		out = append(out, m.rotors[i].Ring())
	}
	return out
}

// Snapshot captures the current rotor positions.
func (m *Machine) Snapshot() State {
	s := State{positions: make([]int, len(m.rotors))}
	for i, r := range m.rotors {
		s.positions[i] = r.Position()
	}
	return s
}

// Restore puts the rotors back to a snapshot taken from a machine with the
// same number of rotors.
func (m *Machine) Restore(s State) error {
	if len(s.positions) != len(m.rotors) {
		return fmt.Errorf("%w: snapshot has %d rotors, machine has %d", domaintypes.ErrOutOfRange, len(s.positions), len(m.rotors))
	}
	for i, r := range m.rotors {
		if err := r.SetPosition(alphabet.Letter(s.positions[i])); err != nil {
			return err
		}
	}
	return nil
}

// SetPosition turns the rotor in slot (1 = rightmost) to show letter c.
func (m *Machine) SetPosition(slot int, c byte) error {
	r, err := m.rotorAt(slot)
	if err != nil {
		return err
	}
	return r.SetPosition(c)
}

// Rotate turns the rotor in slot one step by hand, without carrying.
func (m *Machine) Rotate(slot int, d rotor.Direction) error {
	r, err := m.rotorAt(slot)
	if err != nil {
		return err
	}
	r.Rotate(d)
	return nil
}

func (m *Machine) rotorAt(slot int) (*rotor.Rotor, error) {
	if slot < 1 || slot > len(m.rotors) {
		return nil, fmt.Errorf("%w: the machine only supports %d rotors, got slot %d", domaintypes.ErrOutOfRange, len(m.rotors), slot)
	}
	return m.rotors[slot-1], nil
}

// EncodeChar presses one key and returns the lamp that lights. Lower-case
// letters are accepted; anything else is rejected before the rotors move.
func (m *Machine) EncodeChar(c byte) (byte, error) {
	if !alphabet.IsLetter(c) {
		return 0, fmt.Errorf("%w: %q", domaintypes.ErrInvalidCharacter, c)
	}
	return m.press(alphabet.Upper(c)), nil
}

// EncodeText presses each key of text in turn. The whole text is checked
// first, so an invalid character leaves the machine untouched.
func (m *Machine) EncodeText(text string) (string, error) {
	for i := 0; i < len(text); i++ {
		if !alphabet.IsLetter(text[i]) {
			return "", fmt.Errorf("%w: %q at offset %d", domaintypes.ErrInvalidCharacter, text[i], i)
		}
	}
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		out[i] = m.press(alphabet.Upper(text[i]))
	}
	return string(out), nil
}

// press steps the rotors, then runs c through the signal path.
func (m *Machine) press(c byte) byte {
	m.step()

	c = m.plugboard.Encode(c)
	for _, r := range m.rotors {
		c = r.Encode(c, rotor.Forward)
	}
	c = m.reflector.Encode(c, rotor.Forward)
	for i := len(m.rotors) - 1; i >= 0; i-- {
		c = m.rotors[i].Encode(c, rotor.Reverse)
	}
	return m.plugboard.Encode(c)
}

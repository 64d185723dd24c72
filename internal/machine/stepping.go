package machine

import "enigma/internal/rotor"

// step advances the rotors for one key press.
func (m *Machine) step() {
	turnover := false
	for _, r := range m.rotors {
		// Notch is read before this rotor moves.
		atNotch := r.AtNotch()

		switch {
		case r.Slot() == 1:
			r.Rotate(rotor.Clockwise)
		case turnover:
			r.Rotate(rotor.Clockwise)
		case atNotch && r.Slot() == 2:
			// Middle rotor double step.
			r.Rotate(rotor.Clockwise)
		}

		turnover = atNotch && r.Slot() < 3
	}
}

package rotor

import (
	"fmt"

	domaintypes "enigma/internal/domain/types"
)

// Kind separates stepping rotors from reflectors.
type Kind int

const (
	KindRotor Kind = iota
	KindReflector
)

// String returns "rotor" or "reflector".
func (k Kind) String() string {
	if k == KindReflector {
		return "reflector"
	}
	return "rotor"
}

// Spec is one catalog entry. Notch is 0 for wheels that never carry.
type Spec struct {
	Name   domaintypes.RotorName
	Kind   Kind
	Wiring string
	Notch  byte
}

// HasNotch reports whether the wheel carries the next rotor.
func (s Spec) HasNotch() bool { return s.Notch != 0 }

// Historical wheel tables. Wiring[i] is where contact A+i leads when
// current flows right to left.
var catalog = []Spec{
	{Name: "I", Kind: KindRotor, Wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", Notch: 'Q'},
	{Name: "II", Kind: KindRotor, Wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE", Notch: 'E'},
	{Name: "III", Kind: KindRotor, Wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO", Notch: 'V'},
	{Name: "IV", Kind: KindRotor, Wiring: "ESOVPZJAYQUIRHXLNFTGKDCMWB", Notch: 'J'},
	{Name: "V", Kind: KindRotor, Wiring: "VZBRGITYUPSDNHLXAWMJQOFECK", Notch: 'Z'},
	{Name: "Beta", Kind: KindRotor, Wiring: "LEYJVCNIXWPBQMDRTAKZGFUHOS"},
	{Name: "Gamma", Kind: KindRotor, Wiring: "FSOKANUERHMBTIYCWLQPZXVGJD"},
	{Name: "A", Kind: KindReflector, Wiring: "EJMZALYXVBWFCRQUONTSPIKHGD"},
	{Name: "B", Kind: KindReflector, Wiring: "YRUHQSLDPXNGOKMIEBFZCWVJAT"},
	{Name: "C", Kind: KindReflector, Wiring: "FVPJIAOYEDRZXWGCTKUQSBNMHL"},
}

var byName = func() map[domaintypes.RotorName]Spec {
	m := make(map[domaintypes.RotorName]Spec, len(catalog))
	for _, s := range catalog {
		if err := s.check(); err != nil {
			panic(err)
		}
		m[s.Name] = s
	}
	return m
}()

// Lookup returns the catalog entry for name.
func Lookup(name domaintypes.RotorName) (Spec, error) {
	s, ok := byName[name]
	if !ok {
		return Spec{}, fmt.Errorf("%w: there is no rotor named %q", domaintypes.ErrInvalidConfiguration, name)
	}
	return s, nil
}

// Names lists the catalog in a stable order, optionally filtered by kind.
func Names(kinds ...Kind) []domaintypes.RotorName {
	out := make([]domaintypes.RotorName, 0, len(catalog))
	for _, s := range catalog {
		if len(kinds) > 0 && !hasKind(kinds, s.Kind) {
			continue
		}
		out = append(out, s.Name)
	}
	return out
}

// Catalog returns a copy of every entry.
func Catalog() []Spec {
	return append([]Spec(nil), catalog...)
}

func hasKind(kinds []Kind, k Kind) bool {
	for _, want := range kinds {
		if want == k {
			return true
		}
	}
	return false
}

// check enforces the wiring invariants: a permutation of A-Z, and for
// reflectors an involution without fixed points.
func (s Spec) check() error {
	if len(s.Wiring) != 26 {
		return fmt.Errorf("%w: wiring for %q has %d contacts", domaintypes.ErrInvalidConfiguration, s.Name, len(s.Wiring))
	}
	var seen [26]bool
	for i := 0; i < len(s.Wiring); i++ {
		c := s.Wiring[i]
		if c < 'A' || c > 'Z' || seen[c-'A'] {
			return fmt.Errorf("%w: wiring for %q is not a permutation", domaintypes.ErrInvalidConfiguration, s.Name)
		}
		seen[c-'A'] = true
	}
	if s.Notch != 0 && (s.Notch < 'A' || s.Notch > 'Z') {
		return fmt.Errorf("%w: notch %q for %q", domaintypes.ErrInvalidConfiguration, s.Notch, s.Name)
	}
	if s.Kind == KindReflector {
		if s.Notch != 0 {
			return fmt.Errorf("%w: reflector %q cannot have a notch", domaintypes.ErrInvalidConfiguration, s.Name)
		}
		for i := 0; i < len(s.Wiring); i++ {
			j := int(s.Wiring[i] - 'A')
			if j == i || int(s.Wiring[j]-'A') != i {
				return fmt.Errorf("%w: reflector %q is not a fixed-point-free involution", domaintypes.ErrInvalidConfiguration, s.Name)
			}
		}
	}
	return nil
}

package rotor_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	domaintypes "enigma/internal/domain/types"
	"enigma/internal/rotor"
)

func rotorNames() []interface{} {
	var out []interface{}
	for _, n := range rotor.Names(rotor.KindRotor) {
		out = append(out, n.String())
	}
	return out
}

// TestRotorInvariants checks properties that hold for every wheel at every
// setting.
func TestRotorInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("reverse undoes forward at a fixed setting", prop.ForAll(
		func(name string, pos, ring, letter int) bool {
			r, err := rotor.New(domaintypes.RotorName(name), byte('A'+pos), ring)
			if err != nil {
				return false
			}
			c := byte('A' + letter)
			return r.Encode(r.Encode(c, rotor.Forward), rotor.Reverse) == c
		},
		gen.OneConstOf(rotorNames()...),
		gen.IntRange(0, 25),
		gen.IntRange(1, 26),
		gen.IntRange(0, 25),
	))

	properties.Property("forward is a permutation", prop.ForAll(
		func(name string, pos, ring int) bool {
			r, err := rotor.New(domaintypes.RotorName(name), byte('A'+pos), ring)
			if err != nil {
				return false
			}
			seen := make(map[byte]bool, 26)
			for c := byte('A'); c <= 'Z'; c++ {
				seen[r.Encode(c, rotor.Forward)] = true
			}
			return len(seen) == 26
		},
		gen.OneConstOf(rotorNames()...),
		gen.IntRange(0, 25),
		gen.IntRange(1, 26),
	))

	properties.Property("26 steps return to the start", prop.ForAll(
		func(name string, pos int) bool {
			r, err := rotor.New(domaintypes.RotorName(name), byte('A'+pos), 1)
			if err != nil {
				return false
			}
			start := r.Window()
			for i := 0; i < 26; i++ {
				r.Rotate(rotor.Clockwise)
			}
			return r.Window() == start
		},
		gen.OneConstOf(rotorNames()...),
		gen.IntRange(0, 25),
	))

	properties.TestingRun(t)
}

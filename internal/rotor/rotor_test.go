package rotor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domaintypes "enigma/internal/domain/types"
	"enigma/internal/rotor"
)

func mustRotor(t *testing.T, name domaintypes.RotorName, pos byte, ring int) *rotor.Rotor {
	t.Helper()
	r, err := rotor.New(name, pos, ring)
	require.NoError(t, err)
	return r
}

func TestRotorI_KnownAnswer(t *testing.T) {
	r := mustRotor(t, "I", 'A', 1)
	assert.Equal(t, byte('E'), r.EncodeRightToLeft('A'))
	assert.Equal(t, byte('U'), r.EncodeLeftToRight('A'))
	assert.Equal(t, byte('E'), r.Encode('A', rotor.Forward))
	assert.Equal(t, byte('U'), r.Encode('A', rotor.Reverse))
}

func TestEncode_RingSettingShiftsContacts(t *testing.T) {
	r := mustRotor(t, "I", 'A', 2)
	assert.Equal(t, byte('K'), r.Encode('A', rotor.Forward))
	assert.Equal(t, byte('K'), r.Encode('A', rotor.Reverse))

	r = mustRotor(t, "III", 'C', 5)
	assert.Equal(t, byte('U'), r.Encode('Z', rotor.Forward))
}

func TestEncode_PositionShiftsContacts(t *testing.T) {
	// III at B: A enters at B, wires to D, leaves at C.
	r := mustRotor(t, "III", 'B', 1)
	assert.Equal(t, byte('C'), r.Encode('A', rotor.Forward))
}

func TestRotate_WrapsBothWays(t *testing.T) {
	r := mustRotor(t, "II", 'Z', 1)
	r.Rotate(rotor.Clockwise)
	assert.Equal(t, byte('A'), r.Window())
	assert.Equal(t, 1, r.Position())

	r.Rotate(rotor.AntiClockwise)
	assert.Equal(t, byte('Z'), r.Window())
	r.Rotate(rotor.AntiClockwise)
	assert.Equal(t, byte('Y'), r.Window())
	assert.Equal(t, byte('Z'), r.InitialWindow())
}

func TestAtNotch(t *testing.T) {
	r := mustRotor(t, "I", 'P', 1)
	assert.False(t, r.AtNotch())
	r.Rotate(rotor.Clockwise)
	assert.True(t, r.AtNotch(), "I carries at Q")
	r.Rotate(rotor.Clockwise)
	assert.False(t, r.AtNotch())

	beta := mustRotor(t, "Beta", 'A', 1)
	for i := 0; i < 26; i++ {
		assert.False(t, beta.AtNotch(), "Beta at %c", beta.Window())
		beta.Rotate(rotor.Clockwise)
	}
}

func TestNew_RejectsBadSettings(t *testing.T) {
	_, err := rotor.New("VI", 'A', 1)
	assert.ErrorIs(t, err, domaintypes.ErrInvalidConfiguration)

	_, err = rotor.New("I", '3', 1)
	assert.ErrorIs(t, err, domaintypes.ErrInvalidConfiguration)

	_, err = rotor.New("I", 'A', 0)
	assert.ErrorIs(t, err, domaintypes.ErrInvalidConfiguration)

	_, err = rotor.New("I", 'A', 27)
	assert.ErrorIs(t, err, domaintypes.ErrInvalidConfiguration)

	_, err = rotor.New("B", 'A', 1)
	assert.ErrorIs(t, err, domaintypes.ErrInvalidConfiguration, "reflector in a rotor slot")

	_, err = rotor.NewReflector("III")
	assert.ErrorIs(t, err, domaintypes.ErrInvalidConfiguration, "rotor as reflector")
}

func TestNew_LowerCasePosition(t *testing.T) {
	r := mustRotor(t, "IV", 'j', 1)
	assert.Equal(t, byte('J'), r.Window())
	assert.True(t, r.AtNotch())
}

func TestBuild_RejectsNonPermutation(t *testing.T) {
	_, err := rotor.Build(rotor.Spec{Name: "X", Wiring: "AACDEFGHIJKLMNOPQRSTUVWXYZ"}, 'A', 1)
	assert.ErrorIs(t, err, domaintypes.ErrInvalidConfiguration)

	_, err = rotor.Build(rotor.Spec{Name: "X", Wiring: "ABC"}, 'A', 1)
	assert.ErrorIs(t, err, domaintypes.ErrInvalidConfiguration)

	// Identity wiring is a permutation, but not a valid reflector.
	_, err = rotor.Build(rotor.Spec{Name: "X", Kind: rotor.KindReflector, Wiring: "ABCDEFGHIJKLMNOPQRSTUVWXYZ"}, 'A', 1)
	assert.ErrorIs(t, err, domaintypes.ErrInvalidConfiguration)
}

func TestReflector_IsFixed(t *testing.T) {
	refl, err := rotor.NewReflector("B")
	require.NoError(t, err)
	assert.Equal(t, rotor.KindReflector, refl.Kind())
	assert.Equal(t, byte('A'), refl.Window())
	assert.Equal(t, 1, refl.Ring())
	assert.False(t, refl.AtNotch())
	assert.Equal(t, byte('Y'), refl.Encode('A', rotor.Forward))
	assert.Equal(t, byte('A'), refl.Encode('Y', rotor.Forward))
}

func TestClone_IsIndependent(t *testing.T) {
	r := mustRotor(t, "V", 'A', 3)
	cp := r.Clone()
	r.Rotate(rotor.Clockwise)
	assert.Equal(t, byte('B'), r.Window())
	assert.Equal(t, byte('A'), cp.Window())
	assert.Equal(t, 3, cp.Ring())
}

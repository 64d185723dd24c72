package machine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepping_DoubleStep(t *testing.T) {
	m := mustMachine(t, setting("I II III", "B", "ADU", []int{1, 1, 1}))
	for _, want := range []string{"ADV", "AEW", "BFX", "BFY"} {
		_, err := m.EncodeChar('A')
		require.NoError(t, err)
		assert.Equal(t, want, m.Positions())
	}
}

func TestStepping_AllNotchesAtOnce(t *testing.T) {
	// Slot 1 is rotor I at its notch Q, slot 2 is II at its notch E,
	// slot 3 is III at V. Slot 1 steps, slot 2 double-steps, and slot 2's
	// carry turns slot 3.
	m := mustMachine(t, setting("III II I", "B", "VEQ", []int{1, 1, 1}))
	_, err := m.EncodeChar('A')
	require.NoError(t, err)
	assert.Equal(t, "WFR", m.Positions())
}

func TestStepping_SlowRotorOnlyCarriedByMiddle(t *testing.T) {
	// III is at its notch in slot 3, but slot 3 never carries and is
	// not subject to the double step.
	m := mustMachine(t, setting("I II III", "B", "VAA", []int{1, 1, 1}))
	_, err := m.EncodeText("AAAAA")
	require.NoError(t, err)
	assert.Equal(t, "VAF", m.Positions())
}

func TestStepping_FastRotorEveryPress(t *testing.T) {
	m := mustMachine(t, setting("I II III", "B", "AAA", []int{1, 1, 1}))
	_, err := m.EncodeText("AAAAAAAAAAAAAAAAAAAAAA") // 22 presses: A -> W
	require.NoError(t, err)
	assert.Equal(t, "ABW", m.Positions(), "III carried once passing V")
}

func TestStepping_RingSettingDoesNotMoveNotch(t *testing.T) {
	// The notch follows the window letter, not the wiring.
	m := mustMachine(t, setting("I II III", "B", "ADU", []int{5, 12, 20}))
	_, err := m.EncodeText("AA")
	require.NoError(t, err)
	assert.Equal(t, "AEW", m.Positions())
}

func TestStepping_FourthRotorNeverTurns(t *testing.T) {
	m := mustMachine(t, setting("Beta I II III", "B", "AQEV", []int{1, 1, 1, 1}))
	for i := 0; i < 26*26*26+5; i++ {
		_, err := m.EncodeChar('X')
		require.NoError(t, err)
		require.Equal(t, byte('A'), m.Positions()[0], "press %d", i)
	}
}

func TestStepping_FourthRotorNotTurnedByNotch(t *testing.T) {
	// A notched rotor in slot 4 stays put even at its notch.
	m := mustMachine(t, setting("I II III IV", "B", "QEVJ", []int{1, 1, 1, 1}))
	_, err := m.EncodeChar('A')
	require.NoError(t, err)
	assert.Equal(t, "QFWK", m.Positions())
}

func TestStepping_Period(t *testing.T) {
	// 26 * 25 * 26 distinct states with the double step.
	m := mustMachine(t, setting("I II III", "B", "AAA", []int{1, 1, 1}))
	start := m.Positions()
	const period = 26 * 25 * 26
	for i := 1; i <= period; i++ {
		_, err := m.EncodeChar('A')
		require.NoError(t, err)
		if i < period {
			require.NotEqual(t, start, m.Positions(), "returned early after %d presses", i)
		}
	}
	assert.Equal(t, start, m.Positions())
}

// Package tui is the interactive lampboard.
//
// Each letter typed is one key press on the machine: the rotors step, the
// rotor windows update and the lamp that lights is shown on the board.
// The typed text and the lamp tape are kept in five-letter groups.
package tui

// Package plugboard implements the Steckerbrett: up to ten leads, each
// swapping a pair of letters on the way into and out of the rotor stack.
package plugboard

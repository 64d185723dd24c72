// Package machine assembles rotors, a reflector and a plugboard into a
// working cipher machine.
//
// Every key press first steps the rotors, then sends the letter through
// plugboard, rotors right to left, reflector, rotors left to right, and
// plugboard again. Because the reflector is a fixed-point-free involution,
// the whole path is self-inverse: a letter encoded from state S decodes
// from the same state S, and no letter ever encodes to itself.
//
// # Stepping
//
// The rightmost rotor (slot 1) steps on every key press. A rotor in any
// other slot steps when the rotor to its right was at its notch before
// this key press, and the slot 2 rotor additionally steps when it is
// itself at its notch. That second rule is the double step of the middle
// rotor. Only slots 1 and 2 carry, so a fourth rotor never turns.
//
// Concurrency: a Machine is NOT safe for concurrent use. Use one Machine
// per operator session.
package machine

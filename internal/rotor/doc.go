// Package rotor models the wired wheels of the machine.
//
// A Rotor couples a fixed wiring permutation with a ring setting and a
// mutable position. Reflectors are modelled as rotors that never turn and
// sit at position A with ring setting 1.
//
// The catalog (Lookup, Names) is closed: every wheel type differs only in
// its wiring table and optional notch letter, so there is a single Rotor
// type rather than one type per wheel.
//
// # Signal translation
//
// The wiring is fixed to the wheel, but the contact a given letter meets
// shifts with rotation and the ring setting. Encode therefore moves the
// incoming letter into wheel-relative coordinates, applies the wiring (or
// its inverse on the return path), and moves the result back into machine
// coordinates. For a fixed position, Reverse undoes Forward.
//
// Concurrency: a Rotor is NOT safe for concurrent use.
package rotor

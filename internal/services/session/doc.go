// Package session gives each operator a machine of their own.
//
// A session owns one Machine built from a key sheet setting, prepares
// messages (upper-casing, optionally dropping non-letters), encodes them,
// and formats the result in letter groups. By default every message starts
// from the sheet's window letters, the way an operator re-sets the rotors
// before each message; Continuous keeps the positions instead.
//
// Concurrency: a Session is NOT safe for concurrent use. Open one per
// operator.
package session

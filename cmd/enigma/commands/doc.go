// Package commands defines the enigma CLI and wires dependencies for subcommands.
//
// Commands
//
//   - encode         Encipher or decipher text from arguments or stdin
//   - interactive    Type on the lampboard one key at a time
//   - catalog        List the rotors and reflectors that can be fitted
//   - keysheet       Write, seal and show key sheet files
//   - fingerprint    Print the fingerprint of a setting
//
// # Settings
//
// A machine setting comes either from a key sheet (--keysheet, with -p for
// sealed sheets) or from the setting flags:
//
//	enigma encode --rotors "I II III" --reflector B --positions "A A Z" \
//	        --rings "1 1 1" --plugs "AB CD" HELLO
//
// Rotors are given left to right. Positions default to A and rings to 1.
//
// # Implementation
//
// The root command builds the logger, the key sheet store and the services
// before any subcommand runs, so handlers share one app wire.
package commands

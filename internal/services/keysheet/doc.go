// Package keysheet issues, loads and fingerprints key sheets.
//
// It enforces the passphrase policy for sealed sheets, checks that every
// sheet actually builds a working machine before it is written or handed
// out, and can draw a fresh random setting the way a monthly key list
// would be compiled.
package keysheet

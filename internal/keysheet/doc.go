// Package keysheet reads and writes machine settings ("key sheets").
//
// A key sheet is a YAML document holding the rotor order, window letters,
// ring settings, reflector and plug leads. It may be stored as plain YAML
// or sealed under a passphrase: the YAML is then encrypted with
// ChaCha20-Poly1305 under a scrypt-derived key and wrapped in a small JSON
// envelope that records the KDF parameters.
//
// Files are replaced atomically (temp file, then rename). FileStore
// methods are concurrency-safe via internal locking.
package keysheet

package crypto

import "errors"

// ErrBadKeyMaterial is returned when key derivation is handed unusable
// inputs, typically a salt that is not valid base64 of the expected length.
// Callers should match with [errors.Is] and abort the sync operation rather
// than continue with a partially-derived key.
var ErrBadKeyMaterial = errors.New("bad key material")

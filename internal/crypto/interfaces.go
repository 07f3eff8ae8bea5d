package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns all client-side cryptography of the zero-knowledge
// sync scheme. It knows nothing about the network, the database, or the
// journal itself; its only job is deriving and applying keys.
//
// Derivation scheme, from the single user-held sync id:
//
//	AuthToken = SHA-256("auth:" + syncID)                    (network credential)
//	Key       = PBKDF2(SHA-256("crypto:" + syncID), salt)    (256-bit AEAD key)
//
// The two derivations are domain-separated: the server only ever sees the
// auth token and cannot compute the encryption key from it, and vice versa.
type KeyChainService interface {
	// AuthToken returns the deterministic one-way network credential derived
	// from the sync id. It must never be derivable back into the sync id.
	AuthToken(syncID string) string

	// DeriveKey derives the 256-bit AEAD key from the sync id and the
	// server-supplied base64 salt. Returns [ErrBadKeyMaterial] if the salt is
	// not valid base64 of the expected length; callers must not proceed to
	// encrypt or decrypt with a partially-derived key.
	DeriveKey(syncID, saltB64 string) ([]byte, error)

	// GenerateSalt produces a fresh random key-derivation salt (16 bytes).
	// The salt is not a secret; the server stores it in the clear.
	GenerateSalt() ([]byte, error)

	// Seal encrypts plaintext with AES-256-GCM under key. The output is a
	// Base64 (standard encoding) string of the blob: nonce (12 bytes) ‖
	// ciphertext.
	Seal(key, plaintext []byte) (string, error)

	// Open reverses Seal: it Base64-decodes blobB64, splits out the nonce,
	// and decrypts the ciphertext with key. Returns an error if the blob is
	// malformed, the key is wrong, or the ciphertext is corrupted
	// (authentication-tag mismatch).
	Open(key []byte, blobB64 string) ([]byte, error)
}

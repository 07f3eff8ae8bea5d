package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// saltLen is the length of the key-derivation salt in bytes.
	saltLen = 16

	// keyLen is the AEAD key length: 32 bytes (256 bits).
	keyLen = 32

	// pbkdf2Iterations is the PBKDF2 iteration count. Lowering it weakens
	// every key ever derived; raising it invalidates nothing and only costs
	// CPU on connect.
	pbkdf2Iterations = 100_000

	// Domain-separation prefixes. The auth token and the encryption key are
	// derived from the same secret; the prefixes guarantee the two digests
	// share no structure.
	authPrefix   = "auth:"
	cryptoPrefix = "crypto:"
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct{}

// NewKeyChainService constructs a [KeyChainService] using SHA-256 for the
// auth token, PBKDF2-SHA256 (100,000 iterations) for key derivation, and
// AES-256-GCM for payload encryption.
func NewKeyChainService() KeyChainService {
	return &keyChainService{}
}

// AuthToken implements [KeyChainService]. It returns
// hex(SHA-256("auth:" + syncID)), the sole bearer credential presented to
// the sync server. The digest is one-way: the server cannot recover the
// sync id, and the token shares no derivable structure with the encryption
// key.
func (k *keyChainService) AuthToken(syncID string) string {
	sum := sha256.Sum256([]byte(authPrefix + syncID))
	return hex.EncodeToString(sum[:])
}

// DeriveKey implements [KeyChainService]. It derives a second
// domain-separated seed, SHA-256("crypto:" + syncID), distinct from the auth
// token, then runs PBKDF2-SHA256 over that seed with the given salt to
// produce the 256-bit AEAD key. Returns [ErrBadKeyMaterial] if saltB64 is
// not valid base64 of the expected length.
func (k *keyChainService) DeriveKey(syncID, saltB64 string) ([]byte, error) {
	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return nil, fmt.Errorf("%w: decode salt: %v", ErrBadKeyMaterial, err)
	}
	if len(salt) != saltLen {
		return nil, fmt.Errorf("%w: salt length %d, want %d", ErrBadKeyMaterial, len(salt), saltLen)
	}

	seed := sha256.Sum256([]byte(cryptoPrefix + syncID))
	return pbkdf2.Key(seed[:], salt, pbkdf2Iterations, keyLen, sha256.New), nil
}

// GenerateSalt implements [KeyChainService]. It reads 16 random bytes from
// the OS CSPRNG and returns them as the key-derivation salt. Returns an
// error if the random read fails.
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// EncodeSalt renders a raw salt in the base64 form carried on the wire and
// stored in the sync config.
func EncodeSalt(salt []byte) string {
	return base64.StdEncoding.EncodeToString(salt)
}

// Seal implements [KeyChainService]. It encrypts plaintext with key using
// AES-256-GCM. A random 12-byte nonce is prepended to the ciphertext so that
// Open can locate it: blob = nonce ‖ ciphertext. Returns an error if cipher
// creation or the random nonce read fails.
func (k *keyChainService) Seal(key, plaintext []byte) (string, error) {
	if len(key) != keyLen {
		return "", fmt.Errorf("%w: key length %d, want %d", ErrBadKeyMaterial, len(key), keyLen)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [KeyChainService]. It Base64-decodes blobB64, splits the
// blob into nonce and ciphertext, and decrypts with key via AES-256-GCM.
// An authentication error here almost always means the envelope was
// encrypted under a different key (stale config on this device).
func (k *keyChainService) Open(key []byte, blobB64 string) ([]byte, error) {
	if len(key) != keyLen {
		return nil, fmt.Errorf("%w: key length %d, want %d", ErrBadKeyMaterial, len(key), keyLen)
	}

	blob, err := base64.StdEncoding.DecodeString(blobB64)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt data: %w", err)
	}

	return plaintext, nil
}

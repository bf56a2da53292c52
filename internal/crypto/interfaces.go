package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/blob_cipher_mock.go -package=mock

// BlobCipher seals note trees under a caller-supplied key. The key travels
// with each request and is never stored, so the server holding the blobs
// cannot read them.
type BlobCipher interface {
	// Encrypt seals plaintext under key in the configured format.
	Encrypt(plaintext []byte, key string) ([]byte, error)

	// Decrypt opens a blob written in any supported format. Every failure,
	// including a wrong key, is reported as [ErrInvalidKey].
	Decrypt(blob []byte, key string) ([]byte, error)

	// EncryptJSON marshals v and seals the result.
	EncryptJSON(v any, key string) ([]byte, error)

	// DecryptJSON opens blob and unmarshals it into target. A blob that
	// decrypts to something other than valid JSON is treated as a wrong key.
	DecryptJSON(blob []byte, key string, target any) error
}

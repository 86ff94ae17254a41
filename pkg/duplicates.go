package pkg

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"
)

// CalculateFileHash calculates the SHA-256 hash of a file's full content.
func CalculateFileHash(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file %s for hashing: %w", filePath, err)
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to copy file content to hasher for %s: %w", filePath, err)
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

// Signature is the duplicate-detection key: capture timestamp plus content
// hash. Two files agreeing on both are the same shot.
type Signature struct {
	Taken time.Time
	Hash  string
}

func (s Signature) key() string {
	return s.Taken.UTC().Format(time.RFC3339) + "|" + s.Hash
}

// SignatureRegistry is the run-scoped duplicate table. It maps each signature
// to the destination path registered for the first file seen with it.
// Construct at run start, discard at run end; nothing is ever persisted.
type SignatureRegistry struct {
	seen map[string]string
}

// NewSignatureRegistry returns an empty registry.
func NewSignatureRegistry() *SignatureRegistry {
	return &SignatureRegistry{seen: make(map[string]string)}
}

// Lookup returns the destination registered for sig, if any.
func (r *SignatureRegistry) Lookup(sig Signature) (string, bool) {
	dest, ok := r.seen[sig.key()]
	return dest, ok
}

// Register records destination as the keeper for sig. Callers Lookup before
// Register, so first-seen-wins falls out of enumeration order.
func (r *SignatureRegistry) Register(sig Signature, destination string) {
	r.seen[sig.key()] = destination
}

// Len reports how many distinct signatures were seen this run.
func (r *SignatureRegistry) Len() int {
	return len(r.seen)
}

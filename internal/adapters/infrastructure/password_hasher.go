package infrastructure

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/sync/semaphore"
	"newsletter.app/pkg/errors"
)

// Argon2Params are the argon2id cost parameters
type Argon2Params struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2Params matches the PHC strings already stored for existing users
var DefaultArgon2Params = Argon2Params{
	Memory:      15000,
	Iterations:  2,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

// Argon2PasswordHasher implements the PasswordHasher port with argon2id PHC
// strings. Work runs on at most `workers` goroutines at a time.
type Argon2PasswordHasher struct {
	params Argon2Params
	pool   *semaphore.Weighted
}

// NewArgon2PasswordHasher creates a hasher; workers <= 0 means GOMAXPROCS
func NewArgon2PasswordHasher(params Argon2Params, workers int) *Argon2PasswordHasher {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Argon2PasswordHasher{
		params: params,
		pool:   semaphore.NewWeighted(int64(workers)),
	}
}

// Hash derives a fresh salted hash and returns it in PHC format
func (h *Argon2PasswordHasher) Hash(ctx context.Context, password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.NewUnexpectedError("failed to generate salt", err)
	}

	var key []byte
	err := h.run(ctx, func() {
		key = argon2.IDKey([]byte(password), salt, h.params.Iterations, h.params.Memory, h.params.Parallelism, h.params.KeyLength)
	})
	if err != nil {
		return "", err
	}

	return encodePHC(h.params, salt, key), nil
}

// Verify recomputes the hash with the parameters stored in encodedHash
func (h *Argon2PasswordHasher) Verify(ctx context.Context, encodedHash, candidate string) error {
	params, salt, expected, err := decodePHC(encodedHash)
	if err != nil {
		return errors.NewUnexpectedError("failed to parse stored password hash", err)
	}

	var actual []byte
	err = h.run(ctx, func() {
		actual = argon2.IDKey([]byte(candidate), salt, params.Iterations, params.Memory, params.Parallelism, uint32(len(expected)))
	})
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare(actual, expected) != 1 {
		return errors.NewAuthError("invalid password", nil)
	}
	return nil
}

// run executes fn on a pool slot. If ctx ends first the caller returns
// immediately while fn finishes in the background and frees its slot.
func (h *Argon2PasswordHasher) run(ctx context.Context, fn func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := h.pool.Acquire(ctx, 1); err != nil {
		return err
	}

	done := make(chan struct{})
	go func() {
		defer h.pool.Release(1)
		defer close(done)
		fn()
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func encodePHC(p Argon2Params, salt, key []byte) string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Iterations, p.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key))
}

func decodePHC(encoded string) (Argon2Params, []byte, []byte, error) {
	var p Argon2Params

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return p, nil, nil, fmt.Errorf("unexpected number of PHC segments")
	}
	if parts[1] != "argon2id" {
		return p, nil, nil, fmt.Errorf("unsupported algorithm %q", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, fmt.Errorf("parse version: %w", err)
	}
	if version != argon2.Version {
		return p, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Iterations, &p.Parallelism); err != nil {
		return p, nil, nil, fmt.Errorf("parse parameters: %w", err)
	}
	if p.Memory == 0 || p.Iterations == 0 || p.Parallelism == 0 {
		return p, nil, nil, fmt.Errorf("argon2 parameters must be positive")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("decode salt: %w", err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return p, nil, nil, fmt.Errorf("decode hash: %w", err)
	}
	if len(key) == 0 {
		return p, nil, nil, fmt.Errorf("empty hash")
	}
	p.SaltLength = uint32(len(salt))
	p.KeyLength = uint32(len(key))

	return p, salt, key, nil
}

package ports

import "context"

// PasswordHasher hashes and verifies passwords. Implementations run the
// CPU-bound work off the calling goroutine and honour ctx cancellation.
//
// Verify returns an AuthError when the candidate does not match and an
// UnexpectedError when the stored hash cannot be parsed.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, encodedHash, candidate string) error
}

package infrastructure

import (
	"context"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"newsletter.app/pkg/errors"
)

const knownDummyHash = "$argon2id$v=19$m=15000,t=2,p=1$gZiV/M1gPc22ElAH/Jh1Hw$CWOrkoo7oJBQ/iyh7uJ0LO2aLEfrHwTWllSAxT0zRno"

var phcPattern = regexp.MustCompile(`^\$argon2id\$v=19\$m=15000,t=2,p=1\$[A-Za-z0-9+/]{22}\$[A-Za-z0-9+/]{43}$`)

func TestArgon2PasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewArgon2PasswordHasher(DefaultArgon2Params, 2)
	ctx := context.Background()

	hash, err := hasher.Hash(ctx, "correct horse battery staple")
	require.NoError(t, err)
	assert.Regexp(t, phcPattern, hash)

	assert.NoError(t, hasher.Verify(ctx, hash, "correct horse battery staple"))

	err = hasher.Verify(ctx, hash, "wrong password")
	assert.True(t, errors.IsAuthError(err))
}

func TestArgon2PasswordHasher_SaltsDiffer(t *testing.T) {
	hasher := NewArgon2PasswordHasher(DefaultArgon2Params, 0)
	ctx := context.Background()

	first, err := hasher.Hash(ctx, "same password!")
	require.NoError(t, err)
	second, err := hasher.Hash(ctx, "same password!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestArgon2PasswordHasher_ParsesStoredParameters(t *testing.T) {
	cheap := Argon2Params{Memory: 64, Iterations: 1, Parallelism: 1, SaltLength: 8, KeyLength: 16}
	hash, err := NewArgon2PasswordHasher(cheap, 1).Hash(context.Background(), "password")
	require.NoError(t, err)

	verifier := NewArgon2PasswordHasher(DefaultArgon2Params, 1)
	assert.NoError(t, verifier.Verify(context.Background(), hash, "password"))
}

func TestArgon2PasswordHasher_DummyHashIsWellFormed(t *testing.T) {
	hasher := NewArgon2PasswordHasher(DefaultArgon2Params, 1)

	err := hasher.Verify(context.Background(), knownDummyHash, "anything")

	assert.True(t, errors.IsAuthError(err))
}

func TestArgon2PasswordHasher_MalformedHash(t *testing.T) {
	hasher := NewArgon2PasswordHasher(DefaultArgon2Params, 1)

	for _, encoded := range []string{
		"",
		"plaintext",
		"$argon2i$v=19$m=15000,t=2,p=1$gZiV/M1gPc22ElAH/Jh1Hw$CWOrkoo7oJBQ/iyh7uJ0LO2aLEfrHwTWllSAxT0zRno",
		"$argon2id$v=16$m=15000,t=2,p=1$gZiV/M1gPc22ElAH/Jh1Hw$CWOrkoo7oJBQ/iyh7uJ0LO2aLEfrHwTWllSAxT0zRno",
		"$argon2id$v=19$m=0,t=2,p=1$gZiV/M1gPc22ElAH/Jh1Hw$CWOrkoo7oJBQ/iyh7uJ0LO2aLEfrHwTWllSAxT0zRno",
		"$argon2id$v=19$m=15000,t=2,p=1$!!!$CWOrkoo7oJBQ/iyh7uJ0LO2aLEfrHwTWllSAxT0zRno",
	} {
		err := hasher.Verify(context.Background(), encoded, "anything")
		assert.Equal(t, errors.UnexpectedError, errors.TypeOf(err), encoded)
	}
}

func TestArgon2PasswordHasher_CancelledContext(t *testing.T) {
	hasher := NewArgon2PasswordHasher(DefaultArgon2Params, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := hasher.Hash(ctx, "password")
	assert.ErrorIs(t, err, context.Canceled)

	err = hasher.Verify(ctx, knownDummyHash, "password")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestArgon2PasswordHasher_ConcurrentUse(t *testing.T) {
	hasher := NewArgon2PasswordHasher(DefaultArgon2Params, 2)
	hash, err := hasher.Hash(context.Background(), "shared password")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 6)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = hasher.Verify(context.Background(), hash, "shared password")
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}

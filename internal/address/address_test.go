package address

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveIsDeterministic(t *testing.T) {
	a := Squad("alice")
	b := Squad("alice")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, Squad("bob"))
}

func TestDeriveSeparatesDomainsAndSeeds(t *testing.T) {
	sq := Squad("alice")
	assert.NotEqual(t, sq, Vault("alice"), "domain must separate squad from vault")
	assert.NotEqual(t, Derive("d", []byte("ab"), []byte("c")), Derive("d", []byte("a"), []byte("bc")))
	assert.NotEqual(t, Stream("alice", 1), Stream("alice", 2))
	assert.NotEqual(t, Proposal(sq, 1), Proposal(Vault(sq), 1))
}

func TestNonceLittleEndian(t *testing.T) {
	assert.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0}, Nonce(1))
	assert.Equal(t, []byte{0, 1, 0, 0, 0, 0, 0, 0}, Nonce(256))
}

func TestCheck(t *testing.T) {
	sq := Squad("alice")
	require.NoError(t, Check(Vault(sq), DomainVault, []byte(sq)))

	err := Check(Vault("other"), DomainVault, []byte(sq))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMismatch))
}

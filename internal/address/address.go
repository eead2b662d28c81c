// Package address derives deterministic record identifiers from stable
// inputs, so callers can compute where a squad, vault, stream or proposal
// lives without a lookup round-trip.
//
// An address is SHA256(domain || 0x00 || len(seed1) || seed1 || ...) in hex.
// Seeds are length-prefixed so ("ab","c") and ("a","bc") never collide.
package address

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/mmynk/rally/internal/fault"
)

// Domains for each record kind. The version suffix leaves room for a
// future derivation change.
const (
	DomainSquad       = "rally/squad/v1"
	DomainVault       = "rally/vault/v1"
	DomainStream      = "rally/stream/v1"
	DomainStreamVault = "rally/stream_vault/v1"
	DomainProposal    = "rally/proposal/v1"
)

// ErrMismatch is returned when a record's stored address does not match
// the one derived from its inputs.
var ErrMismatch = fault.New(fault.KindInvalid, "AddressMismatch", "address does not match its derivation inputs")

// Derive computes the address for domain and seeds.
func Derive(domain string, seeds ...[]byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	var lenBuf [binary.MaxVarintLen64]byte
	for _, seed := range seeds {
		n := binary.PutUvarint(lenBuf[:], uint64(len(seed)))
		h.Write(lenBuf[:n])
		h.Write(seed)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Nonce encodes a numeric discriminator as 8 little-endian bytes.
func Nonce(id uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, id)
	return b
}

// Squad is the address of the squad owned by authority.
func Squad(authority string) string {
	return Derive(DomainSquad, []byte(authority))
}

// Vault is the balance holder of a squad.
func Vault(squad string) string {
	return Derive(DomainVault, []byte(squad))
}

// Stream is the address of sender's stream number streamID.
func Stream(sender string, streamID uint64) string {
	return Derive(DomainStream, []byte(sender), Nonce(streamID))
}

// StreamVault is the balance holder of a stream.
func StreamVault(stream string) string {
	return Derive(DomainStreamVault, []byte(stream))
}

// Proposal is the address of proposal number proposalID within squad.
func Proposal(squad string, proposalID uint64) string {
	return Derive(DomainProposal, []byte(squad), Nonce(proposalID))
}

// Check verifies that got equals the derivation of domain and seeds.
func Check(got, domain string, seeds ...[]byte) error {
	if want := Derive(domain, seeds...); got != want {
		return fmt.Errorf("%w: %s", ErrMismatch, domain)
	}
	return nil
}

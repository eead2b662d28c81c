package layout

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/mmynk/rally/internal/models"
)

func id(prefix string, i int) string {
	s := fmt.Sprintf("%s%d", prefix, i)
	return s + strings.Repeat("0", MaxIdentityLen-len(s))
}

func fullSquad() *models.Squad {
	members := make([]string, MaxSquadMembers)
	for i := range members {
		members[i] = id("m", i)
	}
	return &models.Squad{
		Address:        id("sq", 0),
		Authority:      members[0],
		Name:           strings.Repeat("n", MaxSquadNameLen),
		Members:        members,
		Vault:          id("v", 0),
		SpendThreshold: 1<<64 - 1,
		TotalDeposited: 1<<64 - 1,
		CreatedAt:      -1 << 63,
	}
}

func TestSquadFitsInSpace(t *testing.T) {
	sq := fullSquad()
	b, err := EncodeSquad(sq)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(b), MaxSquadSize)

	got, err := DecodeSquad(b)
	require.NoError(t, err)
	assert.Equal(t, sq, got)
}

func TestStreamFitsInSpace(t *testing.T) {
	s := &models.PaymentStream{
		Address:         id("st", 0),
		Sender:          id("s", 0),
		Recipient:       id("r", 0),
		StreamID:        1<<64 - 1,
		AmountPerSecond: 1<<64 - 1,
		StartTime:       -1 << 63,
		EndTime:         1<<63 - 1,
		TotalDeposited:  1<<64 - 1,
		TotalWithdrawn:  1<<64 - 1,
		IsCancelled:     true,
		Vault:           id("v", 0),
		CreatedAt:       1<<63 - 1,
	}
	b, err := EncodeStream(s)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(b), MaxStreamSize)

	got, err := DecodeStream(b)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestProposalFitsInSpace(t *testing.T) {
	voters := make([]string, MaxVoters)
	for i := range voters {
		voters[i] = id("voter", i)
	}
	p := &models.Proposal{
		Address:        id("p", 0),
		Squad:          id("sq", 0),
		Proposer:       voters[0],
		ProposalID:     1<<64 - 1,
		Title:          strings.Repeat("t", MaxTitleLen),
		Description:    strings.Repeat("d", MaxDescriptionLen),
		Amount:         1<<64 - 1,
		Recipient:      id("r", 0),
		YesVotes:       6,
		NoVotes:        4,
		Voters:         voters,
		VotingDeadline: 1<<63 - 1,
		IsExecuted:     true,
		CreatedAt:      -1 << 63,
	}
	b, err := EncodeProposal(p)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(b), MaxProposalSize)

	got, err := DecodeProposal(b)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestEncodeRejectsOversizedFields(t *testing.T) {
	sq := fullSquad()
	sq.Members = append(sq.Members, "one-too-many")
	_, err := EncodeSquad(sq)
	assert.ErrorIs(t, err, ErrBounds)
	assert.Contains(t, err.Error(), "members")

	sq = fullSquad()
	sq.Name += "x"
	_, err = EncodeSquad(sq)
	assert.ErrorIs(t, err, ErrBounds)

	_, err = EncodeProposal(&models.Proposal{Description: strings.Repeat("d", MaxDescriptionLen+1)})
	assert.ErrorIs(t, err, ErrBounds)
	assert.Contains(t, err.Error(), "description")

	_, err = EncodeStream(&models.PaymentStream{Sender: strings.Repeat("s", MaxIdentityLen+1)})
	assert.ErrorIs(t, err, ErrBounds)
}

func TestDecodeRejectsTooManyVoters(t *testing.T) {
	var b []byte
	for i := 0; i <= MaxVoters; i++ {
		b = appendString(b, 11, fmt.Sprintf("v%d", i))
	}
	_, err := DecodeProposal(b)
	assert.ErrorIs(t, err, ErrBounds)
}

func TestDecodeSkipsUnknownFields(t *testing.T) {
	b, err := EncodeStream(&models.PaymentStream{Sender: "alice", StreamID: 3})
	require.NoError(t, err)
	b = protowire.AppendTag(b, 99, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, 7)
	b = appendString(b, 98, "later")

	s, err := DecodeStream(b)
	require.NoError(t, err)
	assert.Equal(t, "alice", s.Sender)
	assert.Equal(t, uint64(3), s.StreamID)
}

func TestDecodeMalformed(t *testing.T) {
	b := appendString(nil, 1, "address")
	_, err := DecodeSquad(b[:len(b)-2])
	assert.ErrorIs(t, err, ErrMalformed)
}

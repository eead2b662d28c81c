// Package layout encodes custody records into the compact binary form kept
// in the accounts table. Records use protobuf wire tags so fields can be added
// later; decoders skip tags they do not know.
//
// Every variable-length field has a fixed bound, so each record kind has a
// worst-case encoded size (its space). Encode and Decode both reject records
// outside those bounds.
package layout

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/mmynk/rally/internal/models"
)

const (
	MaxIdentityLen    = 64
	MaxSquadNameLen   = 32
	MaxSquadMembers   = 10
	MaxTitleLen       = 64
	MaxDescriptionLen = 256
	MaxVoters         = 10
)

var (
	// ErrBounds is returned when a field exceeds its fixed capacity.
	ErrBounds = errors.New("record field out of bounds")
	// ErrMalformed is returned for bytes that are not a valid record.
	ErrMalformed = errors.New("malformed record")
)

// worst-case sizes of a single tagged field with a tag number below 16
var (
	varintField = 1 + protowire.SizeVarint(1<<64-1)
	boolField   = 1 + 1
)

func stringField(max int) int {
	return 1 + protowire.SizeBytes(max)
}

var (
	MaxSquadSize = stringField(MaxIdentityLen)*3 + // address, authority, vault
		stringField(MaxSquadNameLen) +
		stringField(MaxIdentityLen)*MaxSquadMembers +
		varintField*3 // threshold, total deposited, created at

	MaxStreamSize = stringField(MaxIdentityLen)*4 + // address, sender, recipient, vault
		varintField*7 + // id, rate, start, end, deposited, withdrawn, created at
		boolField

	MaxProposalSize = stringField(MaxIdentityLen)*4 + // address, squad, proposer, recipient
		stringField(MaxTitleLen) +
		stringField(MaxDescriptionLen) +
		stringField(MaxIdentityLen)*MaxVoters +
		varintField*6 + // id, amount, yes, no, deadline, created at
		boolField
)

func checkLen(field, value string, max int) error {
	if len(value) > max {
		return fmt.Errorf("%w: %s is %d bytes, max %d", ErrBounds, field, len(value), max)
	}
	return nil
}

func checkList(field string, values []string, maxItems, maxLen int) error {
	if len(values) > maxItems {
		return fmt.Errorf("%w: %s has %d entries, max %d", ErrBounds, field, len(values), maxItems)
	}
	for _, v := range values {
		if err := checkLen(field, v, maxLen); err != nil {
			return err
		}
	}
	return nil
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendUint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendInt(b []byte, num protowire.Number, v int64) []byte {
	return appendUint(b, num, protowire.EncodeZigZag(v))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	return appendUint(b, num, protowire.EncodeBool(v))
}

// decoder walks the varint and length-delimited fields of a record.
type decoder struct {
	buf []byte
}

type field struct {
	num protowire.Number
	typ protowire.Type
	str string
	u   uint64
}

func (f field) int() int64 { return protowire.DecodeZigZag(f.u) }
func (f field) bool() bool { return protowire.DecodeBool(f.u) }

func (d *decoder) each(fn func(f field) error) error {
	for len(d.buf) > 0 {
		num, typ, n := protowire.ConsumeTag(d.buf)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		d.buf = d.buf[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(d.buf)
			if n < 0 {
				return fmt.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(n))
			}
			f.u = v
			d.buf = d.buf[n:]
		case protowire.BytesType:
			v, n := protowire.ConsumeString(d.buf)
			if n < 0 {
				return fmt.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(n))
			}
			f.str = v
			d.buf = d.buf[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, d.buf)
			if n < 0 {
				return fmt.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(n))
			}
			d.buf = d.buf[n:]
			continue
		}
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

func checkSize(kind string, b []byte, max int) error {
	if len(b) > max {
		return fmt.Errorf("%w: %s record is %d bytes, max %d", ErrBounds, kind, len(b), max)
	}
	return nil
}

// EncodeSquad serializes sq.
func EncodeSquad(sq *models.Squad) ([]byte, error) {
	for _, c := range []struct {
		name, value string
		max         int
	}{
		{"address", sq.Address, MaxIdentityLen},
		{"authority", sq.Authority, MaxIdentityLen},
		{"name", sq.Name, MaxSquadNameLen},
		{"vault", sq.Vault, MaxIdentityLen},
	} {
		if err := checkLen(c.name, c.value, c.max); err != nil {
			return nil, err
		}
	}
	if err := checkList("members", sq.Members, MaxSquadMembers, MaxIdentityLen); err != nil {
		return nil, err
	}

	b := make([]byte, 0, MaxSquadSize)
	b = appendString(b, 1, sq.Address)
	b = appendString(b, 2, sq.Authority)
	b = appendString(b, 3, sq.Name)
	for _, m := range sq.Members {
		b = appendString(b, 4, m)
	}
	b = appendString(b, 5, sq.Vault)
	b = appendUint(b, 6, sq.SpendThreshold)
	b = appendUint(b, 7, sq.TotalDeposited)
	b = appendInt(b, 8, sq.CreatedAt)
	return b, nil
}

// DecodeSquad parses a record written by EncodeSquad.
func DecodeSquad(b []byte) (*models.Squad, error) {
	if err := checkSize("squad", b, MaxSquadSize); err != nil {
		return nil, err
	}
	sq := &models.Squad{Members: []string{}}
	d := decoder{buf: b}
	err := d.each(func(f field) error {
		switch f.num {
		case 1:
			sq.Address = f.str
		case 2:
			sq.Authority = f.str
		case 3:
			sq.Name = f.str
		case 4:
			sq.Members = append(sq.Members, f.str)
		case 5:
			sq.Vault = f.str
		case 6:
			sq.SpendThreshold = f.u
		case 7:
			sq.TotalDeposited = f.u
		case 8:
			sq.CreatedAt = f.int()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := checkLen("name", sq.Name, MaxSquadNameLen); err != nil {
		return nil, err
	}
	if err := checkList("members", sq.Members, MaxSquadMembers, MaxIdentityLen); err != nil {
		return nil, err
	}
	return sq, nil
}

// EncodeStream serializes s.
func EncodeStream(s *models.PaymentStream) ([]byte, error) {
	for _, c := range []struct{ name, value string }{
		{"address", s.Address},
		{"sender", s.Sender},
		{"recipient", s.Recipient},
		{"vault", s.Vault},
	} {
		if err := checkLen(c.name, c.value, MaxIdentityLen); err != nil {
			return nil, err
		}
	}

	b := make([]byte, 0, MaxStreamSize)
	b = appendString(b, 1, s.Address)
	b = appendString(b, 2, s.Sender)
	b = appendString(b, 3, s.Recipient)
	b = appendUint(b, 4, s.StreamID)
	b = appendUint(b, 5, s.AmountPerSecond)
	b = appendInt(b, 6, s.StartTime)
	b = appendInt(b, 7, s.EndTime)
	b = appendUint(b, 8, s.TotalDeposited)
	b = appendUint(b, 9, s.TotalWithdrawn)
	b = appendBool(b, 10, s.IsCancelled)
	b = appendString(b, 11, s.Vault)
	b = appendInt(b, 12, s.CreatedAt)
	return b, nil
}

// DecodeStream parses a record written by EncodeStream.
func DecodeStream(b []byte) (*models.PaymentStream, error) {
	if err := checkSize("stream", b, MaxStreamSize); err != nil {
		return nil, err
	}
	s := &models.PaymentStream{}
	d := decoder{buf: b}
	err := d.each(func(f field) error {
		switch f.num {
		case 1:
			s.Address = f.str
		case 2:
			s.Sender = f.str
		case 3:
			s.Recipient = f.str
		case 4:
			s.StreamID = f.u
		case 5:
			s.AmountPerSecond = f.u
		case 6:
			s.StartTime = f.int()
		case 7:
			s.EndTime = f.int()
		case 8:
			s.TotalDeposited = f.u
		case 9:
			s.TotalWithdrawn = f.u
		case 10:
			s.IsCancelled = f.bool()
		case 11:
			s.Vault = f.str
		case 12:
			s.CreatedAt = f.int()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// EncodeProposal serializes p.
func EncodeProposal(p *models.Proposal) ([]byte, error) {
	for _, c := range []struct {
		name, value string
		max         int
	}{
		{"address", p.Address, MaxIdentityLen},
		{"squad", p.Squad, MaxIdentityLen},
		{"proposer", p.Proposer, MaxIdentityLen},
		{"title", p.Title, MaxTitleLen},
		{"description", p.Description, MaxDescriptionLen},
		{"recipient", p.Recipient, MaxIdentityLen},
	} {
		if err := checkLen(c.name, c.value, c.max); err != nil {
			return nil, err
		}
	}
	if err := checkList("voters", p.Voters, MaxVoters, MaxIdentityLen); err != nil {
		return nil, err
	}

	b := make([]byte, 0, MaxProposalSize)
	b = appendString(b, 1, p.Address)
	b = appendString(b, 2, p.Squad)
	b = appendString(b, 3, p.Proposer)
	b = appendUint(b, 4, p.ProposalID)
	b = appendString(b, 5, p.Title)
	b = appendString(b, 6, p.Description)
	b = appendUint(b, 7, p.Amount)
	b = appendString(b, 8, p.Recipient)
	b = appendUint(b, 9, uint64(p.YesVotes))
	b = appendUint(b, 10, uint64(p.NoVotes))
	for _, v := range p.Voters {
		b = appendString(b, 11, v)
	}
	b = appendInt(b, 12, p.VotingDeadline)
	b = appendBool(b, 13, p.IsExecuted)
	b = appendInt(b, 14, p.CreatedAt)
	return b, nil
}

// DecodeProposal parses a record written by EncodeProposal.
func DecodeProposal(b []byte) (*models.Proposal, error) {
	if err := checkSize("proposal", b, MaxProposalSize); err != nil {
		return nil, err
	}
	p := &models.Proposal{Voters: []string{}}
	d := decoder{buf: b}
	err := d.each(func(f field) error {
		switch f.num {
		case 1:
			p.Address = f.str
		case 2:
			p.Squad = f.str
		case 3:
			p.Proposer = f.str
		case 4:
			p.ProposalID = f.u
		case 5:
			p.Title = f.str
		case 6:
			p.Description = f.str
		case 7:
			p.Amount = f.u
		case 8:
			p.Recipient = f.str
		case 9:
			if f.u > 1<<32-1 {
				return fmt.Errorf("%w: yes_votes", ErrBounds)
			}
			p.YesVotes = uint32(f.u)
		case 10:
			if f.u > 1<<32-1 {
				return fmt.Errorf("%w: no_votes", ErrBounds)
			}
			p.NoVotes = uint32(f.u)
		case 11:
			p.Voters = append(p.Voters, f.str)
		case 12:
			p.VotingDeadline = f.int()
		case 13:
			p.IsExecuted = f.bool()
		case 14:
			p.CreatedAt = f.int()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := checkLen("title", p.Title, MaxTitleLen); err != nil {
		return nil, err
	}
	if err := checkLen("description", p.Description, MaxDescriptionLen); err != nil {
		return nil, err
	}
	if err := checkList("voters", p.Voters, MaxVoters, MaxIdentityLen); err != nil {
		return nil, err
	}
	return p, nil
}

package models

// ProposalStatus is the lazily computed state of a proposal.
type ProposalStatus string

const (
	ProposalOpen     ProposalStatus = "open"
	ProposalPassed   ProposalStatus = "passed"
	ProposalRejected ProposalStatus = "rejected"
	ProposalExecuted ProposalStatus = "executed"
)

// Proposal is a spending decision put to a squad vote.
//
// Executing a proposal only flips IsExecuted. It does not move funds and
// is not consulted by squad withdrawals.
type Proposal struct {
	// Address is the derived identifier, see address.Proposal.
	Address string

	// Squad is the address of the squad the proposal belongs to. It is
	// recorded as given and not verified.
	Squad string

	Proposer   string
	ProposalID uint64

	// Title is at most 64 bytes, Description at most 256 bytes.
	Title       string
	Description string

	Amount    uint64
	Recipient string

	YesVotes uint32
	NoVotes  uint32

	// Voters lists every identity that voted, at most 10, no duplicates.
	// YesVotes + NoVotes always equals len(Voters).
	Voters []string

	VotingDeadline int64

	// IsExecuted is terminal.
	IsExecuted bool

	CreatedAt int64
}

// HasVoted reports whether identity already voted.
func (p *Proposal) HasVoted(identity string) bool {
	for _, v := range p.Voters {
		if v == identity {
			return true
		}
	}
	return false
}

package models

// Squad is a group wallet: a set of members pooling funds in a vault that
// any member can spend from below SpendThreshold.
type Squad struct {
	// Address is the derived identifier of the squad, see address.Squad.
	Address string

	// Authority created the squad and is the only identity allowed to
	// change membership. Authority is always one of Members.
	Authority string

	// Name is the display name, at most 32 bytes.
	Name string

	// Members holds unique identities, at most 10.
	Members []string

	// Vault is the derived balance holder, see address.Vault.
	// Its balance lives in the ledger, not on this record.
	Vault string

	// SpendThreshold is the largest withdrawal, in smallest units, that
	// does not require a passed vote.
	SpendThreshold uint64

	// TotalDeposited counts every deposit ever made. Withdrawals do not
	// decrease it.
	TotalDeposited uint64

	// CreatedAt is the Unix timestamp when the squad was initialized.
	CreatedAt int64
}

// IsMember reports whether identity belongs to the squad.
func (s *Squad) IsMember(identity string) bool {
	for _, m := range s.Members {
		if m == identity {
			return true
		}
	}
	return false
}

package models

// Transfer is one journal entry of the ledger: Amount moved from From to To.
type Transfer struct {
	// ID is the unique identifier for the transfer (UUID format).
	ID string

	From   string
	To     string
	Amount uint64

	// Memo names the operation that caused the transfer, e.g. "squad.deposit".
	Memo string

	// CreatedAt is the Unix timestamp when the transfer was committed.
	CreatedAt int64
}

package models

// PaymentStream pays Recipient AmountPerSecond from StartTime until EndTime.
// The whole entitlement is deposited into Vault when the stream is created.
type PaymentStream struct {
	// Address is the derived identifier, see address.Stream.
	Address string

	Sender    string
	Recipient string

	// StreamID disambiguates streams of the same sender.
	StreamID uint64

	AmountPerSecond uint64
	StartTime       int64
	EndTime         int64

	// TotalDeposited is AmountPerSecond × (EndTime − StartTime).
	TotalDeposited uint64

	// TotalWithdrawn is the high-water mark of everything paid to Recipient.
	TotalWithdrawn uint64

	// IsCancelled is terminal: a cancelled stream accepts no operation.
	IsCancelled bool

	// Vault is the derived balance holder, see address.StreamVault.
	Vault string

	// CreatedAt is the Unix timestamp when the stream was created.
	CreatedAt int64
}

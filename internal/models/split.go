package models

// Split statuses. A split is settled once every item is.
const (
	SplitPending = "pending"
	SplitSettled = "settled"
)

// Split is an expense one member paid for and others owe back.
type Split struct {
	// ID is the unique identifier for the split (UUID format).
	ID string

	// Creator paid the expense and is owed every unsettled item.
	Creator string

	// Description is what the expense was for, 1 to 256 bytes.
	Description string

	// TotalAmount is the whole expense in smallest units. It equals the sum
	// of the items.
	TotalAmount uint64

	// Squad is the squad the expense belongs to, or empty.
	Squad string

	// Status is SplitPending or SplitSettled.
	Status string

	// Items holds one entry per debtor, in creation order.
	Items []SplitItem

	// CreatedAt is the Unix timestamp when the split was created.
	CreatedAt int64
}

// SplitItem is what one debtor owes the creator.
type SplitItem struct {
	Debtor string
	Amount uint64

	// Settled is set once the debtor has paid. The creator's own item is
	// settled when the split is created.
	Settled   bool
	SettledAt int64
}

// Item returns the item owed by debtor, or nil.
func (s *Split) Item(debtor string) *SplitItem {
	for i := range s.Items {
		if s.Items[i].Debtor == debtor {
			return &s.Items[i]
		}
	}
	return nil
}

// Unsettled counts the items still owed.
func (s *Split) Unsettled() int {
	n := 0
	for _, item := range s.Items {
		if !item.Settled {
			n++
		}
	}
	return n
}

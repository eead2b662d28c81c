package calculator

import (
	"errors"
	"math"
	"testing"
)

func TestCalculateSplit(t *testing.T) {
	tests := []struct {
		name         string
		items        []Item
		total        uint64
		participants []string
		wantErr      error
		want         []Share
	}{
		{
			name: "simple two-person split with tax",
			items: []Item{
				{Description: "Pizza", Amount: 2000, AssignedTo: []string{"alice", "bob"}},
				{Description: "Salad", Amount: 1000, AssignedTo: []string{"alice"}},
			},
			total:        3300,
			participants: []string{"alice", "bob"},
			// alice: 1000 + 1000 = 2000, tax 2000 * 300/3000 = 200
			// bob: 1000, tax 100
			want: []Share{
				{Participant: "alice", Subtotal: 2000, Extra: 200, Total: 2200},
				{Participant: "bob", Subtotal: 1000, Extra: 100, Total: 1100},
			},
		},
		{
			name:         "no items - split equally among participants",
			total:        3300,
			participants: []string{"alice", "bob"},
			want: []Share{
				{Participant: "alice", Subtotal: 1650, Total: 1650},
				{Participant: "bob", Subtotal: 1650, Total: 1650},
			},
		},
		{
			name:         "no items - remainder goes to the first participants",
			total:        10,
			participants: []string{"alice", "bob", "carol"},
			want: []Share{
				{Participant: "alice", Subtotal: 4, Total: 4},
				{Participant: "bob", Subtotal: 3, Total: 3},
				{Participant: "carol", Subtotal: 3, Total: 3},
			},
		},
		{
			name: "odd item and odd tax stay whole",
			items: []Item{
				{Description: "Fries", Amount: 7, AssignedTo: []string{"alice", "bob", "carol"}},
			},
			total:        9,
			participants: []string{"alice", "bob", "carol"},
			// subtotals 3, 2, 2; extra 2 rounds down to 0 each, remainders 6/7, 4/7, 4/7
			want: []Share{
				{Participant: "alice", Subtotal: 3, Extra: 1, Total: 4},
				{Participant: "bob", Subtotal: 2, Extra: 1, Total: 3},
				{Participant: "carol", Subtotal: 2, Extra: 0, Total: 2},
			},
		},
		{
			name: "participant without items owes nothing",
			items: []Item{
				{Description: "Steak", Amount: 5000, AssignedTo: []string{"bob"}},
			},
			total:        5500,
			participants: []string{"alice", "bob"},
			want: []Share{
				{Participant: "alice"},
				{Participant: "bob", Subtotal: 5000, Extra: 500, Total: 5500},
			},
		},
		{
			name: "large amounts do not overflow the proportion",
			items: []Item{
				{Description: "Boat", Amount: math.MaxUint64 / 2, AssignedTo: []string{"alice"}},
				{Description: "Fuel", Amount: math.MaxUint64 / 4, AssignedTo: []string{"bob"}},
			},
			total:        math.MaxUint64/2 + math.MaxUint64/4 + 3,
			participants: []string{"alice", "bob"},
			want: []Share{
				{Participant: "alice", Subtotal: math.MaxUint64 / 2, Extra: 2, Total: math.MaxUint64/2 + 2},
				{Participant: "bob", Subtotal: math.MaxUint64 / 4, Extra: 1, Total: math.MaxUint64/4 + 1},
			},
		},
		{
			name:         "no participants should error",
			items:        []Item{{Description: "Item", Amount: 10, AssignedTo: []string{"alice"}}},
			total:        10,
			participants: []string{},
			wantErr:      ErrNoParticipants,
		},
		{
			name:         "total below items should error",
			items:        []Item{{Description: "Item", Amount: 10, AssignedTo: []string{"alice"}}},
			total:        9,
			participants: []string{"alice"},
			wantErr:      ErrTotalBelowItems,
		},
		{
			name:         "unassigned item should error",
			items:        []Item{{Description: "Item", Amount: 10}},
			total:        10,
			participants: []string{"alice"},
			wantErr:      ErrUnassignedItem,
		},
		{
			name:         "unknown participant should error",
			items:        []Item{{Description: "Item", Amount: 10, AssignedTo: []string{"mallory"}}},
			total:        10,
			participants: []string{"alice"},
			wantErr:      ErrUnknownParticipant,
		},
		{
			name:         "zero item should error",
			items:        []Item{{Description: "Item", AssignedTo: []string{"alice"}}},
			total:        10,
			participants: []string{"alice"},
			wantErr:      ErrZeroItem,
		},
		{
			name: "item sum overflow should error",
			items: []Item{
				{Description: "A", Amount: math.MaxUint64, AssignedTo: []string{"alice"}},
				{Description: "B", Amount: 1, AssignedTo: []string{"alice"}},
			},
			total:        math.MaxUint64,
			participants: []string{"alice"},
			wantErr:      ErrOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateSplit(tt.items, tt.total, tt.participants)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d shares, want %d", len(got), len(tt.want))
			}
			var sum uint64
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("share %d = %+v, want %+v", i, got[i], tt.want[i])
				}
				sum += got[i].Total
			}
			if sum != tt.total {
				t.Errorf("shares sum to %d, want %d", sum, tt.total)
			}
		})
	}
}

func TestCalculateSplitDuplicateParticipant(t *testing.T) {
	_, err := CalculateSplit(nil, 10, []string{"alice", "alice"})
	if !errors.Is(err, ErrDuplicateParticipant) {
		t.Fatalf("expected ErrDuplicateParticipant, got %v", err)
	}
}

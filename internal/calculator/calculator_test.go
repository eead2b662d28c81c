package calculator

import (
	"errors"
	"math"
	"testing"
)

func TestCheckedArithmetic(t *testing.T) {
	tests := []struct {
		name    string
		op      func() (uint64, error)
		want    uint64
		wantErr bool
	}{
		{name: "add", op: func() (uint64, error) { return Add[uint64](2, 3) }, want: 5},
		{name: "add wraps", op: func() (uint64, error) { return Add[uint64](math.MaxUint64, 1) }, wantErr: true},
		{name: "add at max", op: func() (uint64, error) { return Add[uint64](math.MaxUint64-1, 1) }, want: math.MaxUint64},
		{name: "sub", op: func() (uint64, error) { return Sub[uint64](10, 4) }, want: 6},
		{name: "sub underflow", op: func() (uint64, error) { return Sub[uint64](4, 10) }, wantErr: true},
		{name: "mul", op: func() (uint64, error) { return Mul[uint64](1000, 3600) }, want: 3_600_000},
		{name: "mul by zero", op: func() (uint64, error) { return Mul[uint64](0, math.MaxUint64) }, want: 0},
		{name: "mul wraps", op: func() (uint64, error) { return Mul[uint64](math.MaxUint64/2+1, 2) }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op()
			if tt.wantErr {
				if !errors.Is(err, ErrOverflow) {
					t.Fatalf("expected ErrOverflow, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCheckedArithmeticUint32(t *testing.T) {
	if _, err := Add[uint32](math.MaxUint32, 1); !errors.Is(err, ErrOverflow) {
		t.Errorf("expected uint32 overflow, got %v", err)
	}
	if got := SaturatingSub[uint64](3, 5); got != 0 {
		t.Errorf("SaturatingSub(3, 5) = %d, want 0", got)
	}
	if got := SaturatingSub[uint64](5, 3); got != 2 {
		t.Errorf("SaturatingSub(5, 3) = %d, want 2", got)
	}
}

func TestEarned(t *testing.T) {
	const start, end int64 = 1_000, 1_100

	tests := []struct {
		name string
		now  int64
		want uint64
	}{
		{name: "before start", now: 900, want: 0},
		{name: "at start", now: start, want: 0},
		{name: "midway", now: 1_040, want: 400},
		{name: "at end", now: end, want: 1_000},
		{name: "clamped after end", now: 5_000, want: 1_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Earned(10, start, end, tt.now)
			if err != nil {
				t.Fatalf("Earned() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Earned() = %d, want %d", got, tt.want)
			}
		})
	}

	// Monotonic over the whole window.
	var prev uint64
	for now := start - 10; now <= end+10; now++ {
		got, err := Earned(7, start, end, now)
		if err != nil {
			t.Fatalf("Earned() error = %v", err)
		}
		if got < prev {
			t.Fatalf("Earned() decreased at %d: %d < %d", now, got, prev)
		}
		prev = got
	}
}

func TestEntitlementOverflow(t *testing.T) {
	if _, err := Entitlement(math.MaxUint64, 0, 2); !errors.Is(err, ErrOverflow) {
		t.Errorf("expected overflow, got %v", err)
	}
	got, err := Entitlement(5, 10, 20)
	if err != nil || got != 50 {
		t.Errorf("Entitlement() = %d, %v; want 50, nil", got, err)
	}
}

func TestQuorum(t *testing.T) {
	tests := []struct {
		members uint32
		want    uint32
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 2},
		{7, 4},
		{10, 6},
	}
	for _, tt := range tests {
		if got := Quorum(tt.members); got != tt.want {
			t.Errorf("Quorum(%d) = %d, want %d", tt.members, got, tt.want)
		}
	}
}

func TestSOLConversion(t *testing.T) {
	if got := FormatSOL(1_500_000_000); got != "1.5" {
		t.Errorf("FormatSOL() = %q, want 1.5", got)
	}
	if got := FormatSOL(1); got != "0.000000001" {
		t.Errorf("FormatSOL(1) = %q", got)
	}

	units, err := ParseSOL("2.25")
	if err != nil || units != 2_250_000_000 {
		t.Errorf("ParseSOL(2.25) = %d, %v", units, err)
	}
	for _, bad := range []string{"-1", "0.0000000001", "abc", "100000000000"} {
		if _, err := ParseSOL(bad); err == nil {
			t.Errorf("ParseSOL(%q) expected error", bad)
		}
	}
}

package calculator

// Elapsed returns clamp(now, start, end) - start in whole seconds.
// It is never negative.
func Elapsed(start, end, now int64) uint64 {
	effective := now
	if effective > end {
		effective = end
	}
	if effective <= start {
		return 0
	}
	return uint64(effective - start)
}

// Earned computes the entitlement rate × elapsed at time now.
func Earned(rate uint64, start, end, now int64) (uint64, error) {
	return Mul(rate, Elapsed(start, end, now))
}

// Entitlement is the full amount a stream pays out over [start, end].
func Entitlement(rate uint64, start, end int64) (uint64, error) {
	if end <= start {
		return 0, nil
	}
	return Mul(rate, uint64(end-start))
}

// Quorum is the minimum number of yes votes for a group of totalMembers:
// floor(totalMembers/2) + 1.
func Quorum(totalMembers uint32) uint32 {
	return totalMembers/2 + 1
}

package ingest

import "fmt"

// ValidateBuffers checks the length and monotonicity invariants of the
// flat-buffer contract. It is an optional pre-flight for callers assembling
// buffers by hand; the core never calls it and assumes validated input.
//
// Checks, in order:
//  1. NumUnits ≥ 0 (ErrNegativeUnits).
//  2. len(ListOffsets) == NumUnits+1, starting at 0, non-decreasing
//     (ErrOffsetsLength / ErrOffsetsOrder).
//  3. len(Rewards) == len(Costs) == T, where T = ListOffsets[NumUnits]
//     (ErrLengthMismatch).
//  4. len(StrOffsets) == T+1, starting at 0, non-decreasing, terminating at
//     len(StrData) (ErrOffsetsLength / ErrOffsetsOrder / ErrLengthMismatch).
//
// UTF-8 conformance of StrData is not checked: identifiers are compared
// byte-wise throughout, so non-UTF-8 bytes round-trip unharmed.
func ValidateBuffers(b *Buffers) error {
	// 1) Unit count must be representable as a slice length.
	if b.NumUnits < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeUnits, b.NumUnits)
	}
	u := int(b.NumUnits)

	// 2) ListOffsets shape: U+1 entries, 0-anchored, monotone.
	if len(b.ListOffsets) != u+1 {
		return fmt.Errorf("%w: ListOffsets has %d entries, want %d", ErrOffsetsLength, len(b.ListOffsets), u+1)
	}
	if b.ListOffsets[0] != 0 {
		return fmt.Errorf("%w: ListOffsets[0] = %d", ErrOffsetsOrder, b.ListOffsets[0])
	}
	var i int
	for i = 1; i <= u; i++ {
		if b.ListOffsets[i] < b.ListOffsets[i-1] {
			return fmt.Errorf("%w: ListOffsets[%d] = %d < %d", ErrOffsetsOrder, i, b.ListOffsets[i], b.ListOffsets[i-1])
		}
	}

	// 3) Parallel value buffers must cover exactly the flat length T.
	t := int(b.ListOffsets[u])
	if len(b.Rewards) != t {
		return fmt.Errorf("%w: Rewards has %d entries, want %d", ErrLengthMismatch, len(b.Rewards), t)
	}
	if len(b.Costs) != t {
		return fmt.Errorf("%w: Costs has %d entries, want %d", ErrLengthMismatch, len(b.Costs), t)
	}

	// 4) StrOffsets shape: T+1 entries, 0-anchored, monotone, closing at the
	//    end of StrData.
	if len(b.StrOffsets) != t+1 {
		return fmt.Errorf("%w: StrOffsets has %d entries, want %d", ErrOffsetsLength, len(b.StrOffsets), t+1)
	}
	if b.StrOffsets[0] != 0 {
		return fmt.Errorf("%w: StrOffsets[0] = %d", ErrOffsetsOrder, b.StrOffsets[0])
	}
	for i = 1; i <= t; i++ {
		if b.StrOffsets[i] < b.StrOffsets[i-1] {
			return fmt.Errorf("%w: StrOffsets[%d] = %d < %d", ErrOffsetsOrder, i, b.StrOffsets[i], b.StrOffsets[i-1])
		}
	}
	if int(b.StrOffsets[t]) != len(b.StrData) {
		return fmt.Errorf("%w: StrOffsets[%d] = %d, want len(StrData) = %d", ErrLengthMismatch, t, b.StrOffsets[t], len(b.StrData))
	}

	return nil
}

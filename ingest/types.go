package ingest

import "errors"

// Sentinel errors returned by ValidateBuffers.
var (
	// ErrNegativeUnits indicates NumUnits < 0.
	ErrNegativeUnits = errors.New("ingest: NumUnits must be non-negative")

	// ErrOffsetsLength indicates ListOffsets does not hold exactly NumUnits+1
	// entries, or StrOffsets does not hold exactly T+1 entries.
	ErrOffsetsLength = errors.New("ingest: offsets slice has wrong length")

	// ErrOffsetsOrder indicates an offsets slice is not monotone
	// non-decreasing, or does not start at 0.
	ErrOffsetsOrder = errors.New("ingest: offsets must start at 0 and be non-decreasing")

	// ErrLengthMismatch indicates Rewards or Costs do not hold exactly T
	// entries, or StrOffsets does not terminate at len(StrData).
	ErrLengthMismatch = errors.New("ingest: parallel buffer lengths disagree")
)

// Buffers is the flat, owned input of a solve: three logically parallel
// ragged arrays over NumUnits units, flattened into six buffers.
//
// Layout contract (see also ValidateBuffers):
//
//   - ListOffsets has NumUnits+1 entries; unit i's options occupy the flat
//     index range [ListOffsets[i], ListOffsets[i+1]). ListOffsets[0] == 0
//     and ListOffsets[NumUnits] == T, the flat length.
//   - Rewards and Costs have T entries each.
//   - StrOffsets has T+1 entries; option j's identifier is the byte range
//     StrData[StrOffsets[j]:StrOffsets[j+1]]. StrOffsets[T] == len(StrData).
//   - StrData is concatenated UTF-8 with no separators.
//
// Offsets are signed 32-bit by contract with columnar producers. Ownership
// transfers on first use: after Preprocess the caller must not touch any
// slice, and every slice field is nil.
type Buffers struct {
	NumUnits    int64
	ListOffsets []int32
	Rewards     []float64
	Costs       []float64
	StrOffsets  []int32
	StrData     []byte
}

// release drops every buffer so the backing arrays can be collected while
// later pipeline stages run. Peak memory matters more than the buffers do:
// inputs are multi-GB and the pruned data is orders of magnitude smaller.
func (b *Buffers) release() {
	b.ListOffsets = nil
	b.Rewards = nil
	b.Costs = nil
	b.StrOffsets = nil
	b.StrData = nil
}

package intern

import (
	"github.com/cespare/xxhash/v2"
)

// minSlots is the smallest slot-array size; must be a power of two.
const minSlots = 16

// maxLoadNum/maxLoadDen express the 0.75 load factor beyond which the
// slot array doubles.
const (
	maxLoadNum = 3
	maxLoadDen = 4
)

// slot is one open-addressing bucket. ref == 0 marks an empty slot;
// otherwise the stored dense id is ref-1.
type slot struct {
	hash uint64
	ref  uint32
}

// Table interns byte strings into dense ids assigned in first-seen order.
// The zero value is not ready for use; construct with New.
type Table struct {
	strs  []string // id → identifier, insertion order
	slots []slot   // open-addressing buckets, len is a power of two
	mask  uint64   // len(slots) - 1
}

// New returns a Table sized so that hint distinct identifiers fit without
// rehashing. A hint ≤ 0 yields the minimum size.
func New(hint int) *Table {
	if hint < 0 {
		hint = 0
	}

	// 1) Round the slot count up to the first power of two that keeps the
	//    load factor below the rehash threshold at `hint` entries.
	n := minSlots
	for n*maxLoadNum < hint*maxLoadDen {
		n <<= 1
	}

	return &Table{
		strs:  make([]string, 0, hint),
		slots: make([]slot, n),
		mask:  uint64(n - 1),
	}
}

// Intern returns the dense id for the identifier b, assigning the next id
// and copying the bytes if b has not been seen before. The argument is
// borrowed: the table never retains b itself.
func (t *Table) Intern(b []byte) uint32 {
	// 1) Hash the borrowed bytes; no allocation.
	h := xxhash.Sum64(b)

	// 2) Linear probe from the home slot.
	i := h & t.mask
	for {
		s := t.slots[i]
		if s.ref == 0 {
			// 3) Miss: assign the next dense id, copying b exactly once.
			return t.insert(i, h, string(b))
		}
		if s.hash == h && bytesEqualString(b, t.strs[s.ref-1]) {
			// 4) Hit: reuse the previously assigned id.
			return s.ref - 1
		}
		i = (i + 1) & t.mask
	}
}

// InternString is Intern for callers that already hold an owned string.
// It allocates nothing on hit and retains s (no copy) on miss.
func (t *Table) InternString(s string) uint32 {
	h := xxhash.Sum64String(s)

	i := h & t.mask
	for {
		sl := t.slots[i]
		if sl.ref == 0 {
			return t.insert(i, h, s)
		}
		if sl.hash == h && t.strs[sl.ref-1] == s {
			return sl.ref - 1
		}
		i = (i + 1) & t.mask
	}
}

// Len reports the number of distinct identifiers interned so far.
func (t *Table) Len() int { return len(t.strs) }

// Strings surrenders the id→identifier table by move. The slice is the
// table's own backing store: the Table must not be used after Strings.
func (t *Table) Strings() []string {
	out := t.strs
	t.strs = nil
	t.slots = nil

	return out
}

// insert stores s at the empty slot i with hash h, growing first if the
// insertion would push the load factor past the threshold (in which case
// the home slot is recomputed against the new mask).
func (t *Table) insert(i uint64, h uint64, s string) uint32 {
	if (len(t.strs)+1)*maxLoadDen > len(t.slots)*maxLoadNum {
		t.grow()
		// Re-probe: the doubling moved every slot.
		i = h & t.mask
		for t.slots[i].ref != 0 {
			i = (i + 1) & t.mask
		}
	}

	t.strs = append(t.strs, s)
	id := uint32(len(t.strs) - 1)
	t.slots[i] = slot{hash: h, ref: id + 1}

	return id
}

// grow doubles the slot array and reinserts every occupied slot. Stored
// hashes are reused, so identifiers are not re-hashed.
func (t *Table) grow() {
	old := t.slots
	t.slots = make([]slot, len(old)*2)
	t.mask = uint64(len(t.slots) - 1)

	var j uint64
	for _, s := range old {
		if s.ref == 0 {
			continue
		}
		j = s.hash & t.mask
		for t.slots[j].ref != 0 {
			j = (j + 1) & t.mask
		}
		t.slots[j] = s
	}
}

// bytesEqualString reports b == s without converting either operand.
func bytesEqualString(b []byte, s string) bool {
	if len(b) != len(s) {
		return false
	}
	for i := 0; i < len(b); i++ {
		if b[i] != s[i] {
			return false
		}
	}

	return true
}

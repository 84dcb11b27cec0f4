// Package ordering implements the move-and-renumber algorithm shared by the
// section list of a document and the row list of a section.
package ordering

// Entry is an element addressable by a stable identifier. Identifiers never
// change; list positions do.
type Entry interface {
	EntryID() string
}

// Positioned is an Entry that carries an explicit position value, like the
// sections of a document. AtPosition returns a copy of the entry at the given
// position; the receiver is left alone.
type Positioned[T any] interface {
	Entry
	AtPosition(pos int) T
}

// Move relocates the entry with movedID to the index currently held by
// targetID, shifting everything in between by one. The second return reports
// whether the sequence changed.
//
// Unknown ids and same-index moves are no-ops: drag end events can fire after
// the underlying list already changed, and most drags end without crossing
// another entry. A no-op returns the input slice untouched so callers can
// skip the write-back entirely.
func Move[T Entry](seq []T, movedID, targetID string) ([]T, bool) {
	source := indexOf(seq, movedID)
	target := indexOf(seq, targetID)
	if source < 0 || target < 0 || source == target {
		return seq, false
	}

	out := make([]T, 0, len(seq))
	out = append(out, seq[:source]...)
	out = append(out, seq[source+1:]...)

	tail := make([]T, len(out[target:]))
	copy(tail, out[target:])
	out = append(out[:target], seq[source])
	out = append(out, tail...)
	return out, true
}

// Reorder is Move followed by the dense renumbering pass: every entry in the
// resulting sequence is assigned position == index, 0-based. A no-op move
// performs no renumbering and returns the input slice untouched.
func Reorder[T Positioned[T]](seq []T, movedID, targetID string) ([]T, bool) {
	moved, changed := Move(seq, movedID, targetID)
	if !changed {
		return seq, false
	}
	return Renumber(moved), true
}

// Renumber returns a copy of seq with dense 0-based positions assigned in
// list order.
func Renumber[T Positioned[T]](seq []T) []T {
	out := make([]T, len(seq))
	for i, e := range seq {
		out[i] = e.AtPosition(i)
	}
	return out
}

func indexOf[T Entry](seq []T, id string) int {
	for i, e := range seq {
		if e.EntryID() == id {
			return i
		}
	}
	return -1
}

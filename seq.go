package clite

// Seq is the growable-sequence collaborator spec.md §6 describes only
// as a contract ("amortised O(1) push and cheap length/end queries,
// used for transient parse buffers and for the interner, keyword
// list, and arena block list"). A Go slice already provides amortised
// O(1) append, so Seq is deliberately thin: it exists to give parser
// code one vocabulary for "accumulate during a production, then
// freeze into the arena" (see allocCopy in arena_ast.go, called with
// Seq.Slice()) rather than having every call site hand-roll append
// plus a manual arena copy.
//
// The zero value is an empty, usable sequence.
type Seq[T any] struct {
	items []T
}

// Push appends v, growing the backing slice as needed.
func (s *Seq[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Len returns the number of pushed elements.
func (s *Seq[T]) Len() int { return len(s.items) }

// Slice exposes the accumulated elements. The returned slice aliases
// Seq's internal storage and must be treated as read-only by callers
// that intend to keep pushing.
func (s *Seq[T]) Slice() []T { return s.items }

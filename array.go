package arrfile

import (
	"fmt"
	"sort"
)

// Array is the mutable host-document view of a decoded sequence.
// Entries are addressed purely by position; order is the only identity
// an entry has. Methods are not safe for concurrent use.
type Array struct {
	entries []Entry
}

// New returns an empty array.
func New() *Array { return &Array{} }

// FromBytes decodes data into a fresh array.
func FromBytes(data []byte) (*Array, error) {
	entries, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return &Array{entries: entries}, nil
}

// Bytes encodes the current sequence. The returned buffer is an
// independent copy; later mutations do not affect it.
func (a *Array) Bytes() []byte { return Encode(a.entries) }

// Len returns the number of entries.
func (a *Array) Len() int { return len(a.entries) }

// At returns the entry at index i.
func (a *Array) At(i int) Entry { return a.entries[i] }

// Entries returns a copy of the sequence.
func (a *Array) Entries() []Entry { return append([]Entry(nil), a.entries...) }

// --------------------------------------------------------------------

// Add appends a zero entry of the given type.
func (a *Array) Add(t Type) (*Change, error) {
	if !t.isValid() {
		return nil, fmt.Errorf("%w %d", ErrInvalidType, uint32(t))
	}

	chg := &Change{op: OpAdd, indices: []int{len(a.entries)}, after: []Entry{zeroOf(t)}}
	chg.Apply(a)
	return chg, nil
}

// SetType converts the entry at index i to the given type in place,
// per the coercion rules of Convert.
func (a *Array) SetType(i int, t Type) (*Change, error) {
	if err := a.check(i); err != nil {
		return nil, err
	}
	after, err := Convert(a.entries[i], t)
	if err != nil {
		return nil, err
	}

	chg := &Change{op: OpSet, indices: []int{i}, before: []Entry{a.entries[i]}, after: []Entry{after}}
	chg.Apply(a)
	return chg, nil
}

// SetValue re-parses text as the current type of the entry at index i.
// Unparseable numeric text is not an error, the value becomes zero.
func (a *Array) SetValue(i int, text string) (*Change, error) {
	if err := a.check(i); err != nil {
		return nil, err
	}
	after, err := FromText(text, a.entries[i].typ)
	if err != nil {
		return nil, err
	}

	chg := &Change{op: OpSet, indices: []int{i}, before: []Entry{a.entries[i]}, after: []Entry{after}}
	chg.Apply(a)
	return chg, nil
}

// Remove deletes the entries at the given positions. Duplicates are
// ignored; positions refer to the sequence before the call.
func (a *Array) Remove(indices ...int) (*Change, error) {
	sorted := append([]int(nil), indices...)
	sort.Ints(sorted)

	var uniq []int
	prev := -1
	for _, i := range sorted {
		if i == prev {
			continue
		}
		if err := a.check(i); err != nil {
			return nil, err
		}
		uniq = append(uniq, i)
		prev = i
	}

	before := make([]Entry, len(uniq))
	for n, i := range uniq {
		before[n] = a.entries[i]
	}

	chg := &Change{op: OpRemove, indices: uniq, before: before}
	chg.Apply(a)
	return chg, nil
}

// Clear removes all entries.
func (a *Array) Clear() *Change {
	indices := make([]int, len(a.entries))
	for i := range indices {
		indices[i] = i
	}

	chg := &Change{op: OpClear, indices: indices, before: append([]Entry(nil), a.entries...)}
	chg.Apply(a)
	return chg
}

func (a *Array) check(i int) error {
	if i < 0 || i >= len(a.entries) {
		return fmt.Errorf("arrfile: index %d out of range [0:%d)", i, len(a.entries))
	}
	return nil
}

func (a *Array) insert(i int, e Entry) {
	a.entries = append(a.entries, Entry{})
	copy(a.entries[i+1:], a.entries[i:])
	a.entries[i] = e
}

// removeAt deletes the given ascending positions.
func (a *Array) removeAt(indices []int) {
	for n := len(indices) - 1; n >= 0; n-- {
		i := indices[n]
		a.entries = append(a.entries[:i], a.entries[i+1:]...)
	}
}

func zeroOf(t Type) Entry {
	switch t {
	case TypeString:
		return String("")
	case TypeBoolean:
		return Boolean(false)
	case TypeDouble:
		return Double(0)
	default:
		return Integer(0)
	}
}

// --------------------------------------------------------------------

// Op identifies the kind of mutation a Change describes.
type Op int

// Known ops.
const (
	OpAdd Op = iota + 1
	OpSet
	OpRemove
	OpClear
)

func (v Op) String() string {
	switch v {
	case OpAdd:
		return "add"
	case OpSet:
		return "set"
	case OpRemove:
		return "remove"
	case OpClear:
		return "clear"
	default:
		return fmt.Sprintf("invalid op %d", int(v))
	}
}

// Change is an invertible description of one mutation: enough captured
// state to reapply it with Apply or to restore the prior sequence with
// Revert. Host editors keep these on an undo stack, see History.
type Change struct {
	op      Op
	indices []int   // affected positions, ascending
	before  []Entry // entries at those positions prior to the change
	after   []Entry // entries at those positions after the change
}

// Op returns the kind of mutation.
func (c *Change) Op() Op { return c.op }

// Apply reapplies the change to a (redo). The array must be in the
// state the change was produced from, or reverted to by Revert.
func (c *Change) Apply(a *Array) {
	switch c.op {
	case OpAdd:
		a.insert(c.indices[0], c.after[0])
	case OpSet:
		a.entries[c.indices[0]] = c.after[0]
	case OpRemove, OpClear:
		a.removeAt(c.indices)
	}
}

// Revert undoes the change on a, restoring the prior sequence and its
// order exactly.
func (c *Change) Revert(a *Array) {
	switch c.op {
	case OpAdd:
		a.removeAt(c.indices)
	case OpSet:
		a.entries[c.indices[0]] = c.before[0]
	case OpRemove, OpClear:
		for n, i := range c.indices {
			a.insert(i, c.before[n])
		}
	}
}

// --------------------------------------------------------------------

// History is a minimal undo/redo stack over changes. Recording a new
// change discards the redo tail.
type History struct {
	undo []*Change
	redo []*Change
}

// Record pushes a freshly applied change.
func (h *History) Record(chg *Change) {
	h.undo = append(h.undo, chg)
	h.redo = h.redo[:0]
}

// CanUndo reports whether an undo step is available.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Undo reverts the most recent change on a.
func (h *History) Undo(a *Array) bool {
	if len(h.undo) == 0 {
		return false
	}

	chg := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	chg.Revert(a)
	h.redo = append(h.redo, chg)
	return true
}

// Redo reapplies the most recently undone change on a.
func (h *History) Redo(a *Array) bool {
	if len(h.redo) == 0 {
		return false
	}

	chg := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	chg.Apply(a)
	h.undo = append(h.undo, chg)
	return true
}

package nclist

import "golang.org/x/exp/constraints"

// Index is the integer type used both for array positions within an Nclist
// and for the subject ids it emits. Callers pick a width (uint32, uint64,
// ...) sized to comfortably address their subject count.
type Index interface {
	constraints.Unsigned
}

// Position is the numeric type used for interval bounds. It may be signed,
// unsigned, or floating-point; subtraction in max_gap/min_overlap arithmetic
// saturates at zero for unsigned types rather than wrapping (see
// saturatingSub and absDiffExceeds in utils.go).
type Position interface {
	constraints.Integer | constraints.Float
}

// Node is one entry of an Nclist: the interval it represents, the slice of
// Nodes that are its direct children, and the slice of Duplicates that
// collapse into it. ChildrenStart/ChildrenEnd and DuplicatesStart/
// DuplicatesEnd are half-open ranges into the owning Nclist's Nodes and
// Duplicates slices respectively.
type Node[I Index] struct {
	ID              I
	ChildrenStart   I
	ChildrenEnd     I
	DuplicatesStart I
	DuplicatesEnd   I
}

// Nclist is an immutable index over a set of subject intervals, built by
// Build, BuildSubset, or BuildCustom. The zero value is an empty index.
//
// Nodes[0:RootChildren] are the root-level nodes ("children of an implicit
// virtual root"). For any node, its children occupy nodes[ChildrenStart:
// ChildrenEnd], a contiguous slice that appears strictly after the node
// itself. Within any child slice, Starts is non-decreasing, and entries
// sharing a start have strictly decreasing Ends.
type Nclist[I Index, P Position] struct {
	RootChildren I
	Nodes        []Node[I]
	Starts       []P
	Ends         []P
	Duplicates   []I
}

// Len returns the number of subjects represented by the index, i.e. the
// number of intervals originally passed to Build/BuildSubset/BuildCustom.
func (n *Nclist[I, P]) Len() int {
	return len(n.Nodes) + len(n.Duplicates)
}

// PositionAccessor lets the builder pull start/end coordinates from an
// arbitrary indexable source instead of a contiguous slice, per the
// "custom arrays" build form: a column extracted lazily from a larger
// record, a memory-mapped array, or anything else addressable by an Index.
type PositionAccessor[I Index, P Position] interface {
	At(i I) P
}

// positionSlice adapts a plain []P to PositionAccessor, so Build and
// BuildSubset can be implemented as thin wrappers around BuildCustom.
type positionSlice[I Index, P Position] []P

func (s positionSlice[I, P]) At(i I) P {
	return s[i]
}

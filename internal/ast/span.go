package ast

// Span is a half-open byte range [Start, End) into the original source text.
// All positions in the AST are expressed this way instead of line/column so
// that re-slicing source text for a node never requires re-scanning from the
// start of the file.
type Span struct {
	Start uint32
	End   uint32
}

// NewSpan builds a Span that keeps the usual start <= end invariant: an end
// before start is clamped up to start. Callers that need the raw values
// (recovered error nodes) should build the struct literal directly instead.
func NewSpan(start, end uint32) Span {
	if end < start {
		end = start
	}
	return Span{Start: start, End: end}
}

// Overlaps reports whether a and b share at least one byte. Touching spans
// (a.End == b.Start) are not overlapping under this definition.
func (a Span) Overlaps(b Span) bool {
	return a.Start < b.End && b.Start < a.End
}

// OverlapsOrTouches is the conservative variant used when merging lint
// fixes: touching spans are treated as a conflict so fix application stays
// deterministic across re-runs.
func (a Span) OverlapsOrTouches(b Span) bool {
	return a.Start <= b.End && b.Start <= a.End
}

// Contains reports whether b is entirely inside a.
func (a Span) Contains(b Span) bool {
	return a.Start <= b.Start && b.End <= a.End
}

// Len returns the byte length of the span.
func (a Span) Len() uint32 { return a.End - a.Start }

// Slice returns the substring of src covered by the span.
func (a Span) Slice(src string) string {
	if int(a.End) > len(src) {
		return ""
	}
	return src[a.Start:a.End]
}

// NodeId is a dense index assigned to every AST node during the semantic
// pass. It is the address-stable handle lint rules and the semantic tables
// use instead of raw pointers.
type NodeId uint32

// InvalidNodeId marks a NodeId that has not been assigned yet.
const InvalidNodeId NodeId = 1<<32 - 1

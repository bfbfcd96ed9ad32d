// Package arena provides bump allocation for values that share the lifetime
// of a single compilation unit. It gives the AST, the scope tree, and the
// symbol table a single place to grow append-only, dense-indexed storage
// instead of scattering individually heap-allocated nodes across the GC.
//
// Values are allocated in fixed-size chunks so existing pointers never move
// when the arena grows; this is what lets the parser keep a *T across a
// later Alloc call. Dropping an Arena is a no-op: its chunks simply become
// garbage once nothing references them anymore.
package arena

// chunkSize is the number of T values per backing chunk. Chosen so most
// single-file ASTs need only one or two chunks per node kind.
const chunkSize = 1024

// Arena bump-allocates values of type T. The zero value is ready to use.
type Arena[T any] struct {
	chunks [][]T
	len    int
}

// Alloc returns a pointer to a new zero-valued T owned by the arena. The
// pointer remains valid for the lifetime of the arena.
func (a *Arena[T]) Alloc() *T {
	chunk := a.currentChunk()
	idx := a.len % chunkSize
	a.len++
	return &chunk[idx]
}

// AllocVal is like Alloc but initializes the slot to v.
func (a *Arena[T]) AllocVal(v T) *T {
	p := a.Alloc()
	*p = v
	return p
}

// Len reports how many values have been allocated so far.
func (a *Arena[T]) Len() int { return a.len }

func (a *Arena[T]) currentChunk() []T {
	if a.len == 0 || a.len%chunkSize == 0 {
		if a.len/chunkSize < len(a.chunks) {
			return a.chunks[a.len/chunkSize]
		}
		chunk := make([]T, chunkSize)
		a.chunks = append(a.chunks, chunk)
		return chunk
	}
	return a.chunks[a.len/chunkSize]
}

// Vec is an arena-backed, append-only dense vector keyed by a small integer
// id, used for side-tables (scopes, symbols, references) that are filled
// once during a single pass and never shrink.
type Vec[T any] struct {
	items []T
}

// Push appends v and returns its dense index.
func (v *Vec[T]) Push(item T) uint32 {
	id := uint32(len(v.items))
	v.items = append(v.items, item)
	return id
}

// Get returns a pointer to the item at id. The pointer is only stable until
// the next Push forces a reallocation, so callers that need a durable
// pointer should re-resolve it by id rather than holding the pointer across
// a Push.
func (v *Vec[T]) Get(id uint32) *T { return &v.items[id] }

// Len reports the number of items pushed so far.
func (v *Vec[T]) Len() int { return len(v.items) }

// All returns the underlying slice for read-only iteration.
func (v *Vec[T]) All() []T { return v.items }

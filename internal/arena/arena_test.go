package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocReturnsDistinctZeroedSlots(t *testing.T) {
	var a Arena[int]
	p1 := a.Alloc()
	p2 := a.Alloc()
	assert.NotSame(t, p1, p2)
	assert.Equal(t, 0, *p1)
	assert.Equal(t, 2, a.Len())
}

func TestAllocValInitializes(t *testing.T) {
	var a Arena[string]
	p := a.AllocVal("hello")
	assert.Equal(t, "hello", *p)
}

func TestPointersSurviveChunkGrowth(t *testing.T) {
	// chunkSize is 1024; allocate enough to force a second chunk and verify
	// earlier pointers still read back their original values, which is the
	// whole point of fixed-size chunked growth (package doc: "existing
	// pointers never move when the arena grows").
	var a Arena[int]
	var ptrs []*int
	for i := 0; i < chunkSize*2+5; i++ {
		p := a.AllocVal(i)
		ptrs = append(ptrs, p)
	}
	for i, p := range ptrs {
		require.Equal(t, i, *p, "pointer at index %d must still read back its original value", i)
	}
}

func TestVecPushAndGet(t *testing.T) {
	var v Vec[string]
	id0 := v.Push("a")
	id1 := v.Push("b")
	assert.Equal(t, uint32(0), id0)
	assert.Equal(t, uint32(1), id1)
	assert.Equal(t, "a", *v.Get(id0))
	assert.Equal(t, "b", *v.Get(id1))
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, []string{"a", "b"}, v.All())
}

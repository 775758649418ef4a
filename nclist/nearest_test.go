package nclist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearestEmpty(t *testing.T) {
	out := buildUint32(t, nil, nil)
	var ws NearestWorkspace[uint32]
	var matches []uint32
	Nearest(&out, 100, 200, NearestParams{}, &ws, &matches)
	assert.Empty(t, matches)
}

func TestNearestSimpleDisjoint(t *testing.T) {
	starts := []int32{200, 300, 100, 500}
	ends := []int32{280, 320, 170, 510}
	out := buildUint32(t, starts, ends)
	var ws NearestWorkspace[uint32]
	var matches []uint32

	Nearest(&out, 50, 80, NearestParams{}, &ws, &matches)
	assert.Equal(t, []uint32{2}, idsOf(&out, matches))

	Nearest(&out, 520, 600, NearestParams{}, &ws, &matches)
	assert.Equal(t, []uint32{3}, idsOf(&out, matches))

	// Equidistant from subject 0 ([200,280)) and subject 2 ([100,170)).
	Nearest(&out, 180, 190, NearestParams{}, &ws, &matches)
	assert.Equal(t, []uint32{0, 2}, idsOf(&out, matches))

	// Overlapping queries should report the overlap, not a gap-based pick.
	Nearest(&out, 150, 200, NearestParams{}, &ws, &matches)
	assert.Equal(t, []uint32{2}, idsOf(&out, matches))

	Nearest(&out, 150, 300, NearestParams{}, &ws, &matches)
	assert.Equal(t, []uint32{0, 2}, idsOf(&out, matches))

	Nearest(&out, 90, 600, NearestParams{}, &ws, &matches)
	assert.Equal(t, []uint32{0, 1, 2, 3}, idsOf(&out, matches))
}

func TestNearestAdjacentEqualsOverlap(t *testing.T) {
	starts := []int32{0, 10}
	ends := []int32{5, 15}
	out := buildUint32(t, starts, ends)
	var ws NearestWorkspace[uint32]
	var matches []uint32

	// Query [5, 10) is contiguous with both subjects but overlaps neither.
	Nearest(&out, 5, 10, NearestParams{}, &ws, &matches)
	assert.Equal(t, []uint32{0, 1}, idsOf(&out, matches))

	Nearest(&out, 5, 10, NearestParams{AdjacentEqualsOverlap: true}, &ws, &matches)
	assert.Equal(t, []uint32{0, 1}, idsOf(&out, matches))
}

func TestNearestQuitOnFirst(t *testing.T) {
	starts := []int32{0, 10, 20}
	ends := []int32{5, 15, 25}
	out := buildUint32(t, starts, ends)
	var ws NearestWorkspace[uint32]
	var matches []uint32
	Nearest(&out, 6, 9, NearestParams{QuitOnFirst: true}, &ws, &matches)
	assert.Len(t, matches, 1)
}

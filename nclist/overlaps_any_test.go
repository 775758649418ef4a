package nclist

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnyEmpty(t *testing.T) {
	out := buildUint32(t, nil, nil)
	var ws AnyWorkspace[uint32]
	var matches []uint32
	Any(&out, 100, 200, AnyParams[int32]{}, &ws, &matches)
	assert.Empty(t, matches)
}

func idsOf(out *Nclist[uint32, int32], matches []uint32) []uint32 {
	_ = out
	sorted := append([]uint32(nil), matches...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}

func TestAnySimpleDisjoint(t *testing.T) {
	starts := []int32{200, 300, 100, 500}
	ends := []int32{280, 320, 170, 510}
	out := buildUint32(t, starts, ends)
	var ws AnyWorkspace[uint32]
	var matches []uint32

	Any(&out, 150, 200, AnyParams[int32]{}, &ws, &matches)
	assert.Equal(t, []uint32{2}, idsOf(&out, matches))

	Any(&out, 150, 300, AnyParams[int32]{}, &ws, &matches)
	assert.Equal(t, []uint32{0, 2}, idsOf(&out, matches))

	Any(&out, 210, 310, AnyParams[int32]{}, &ws, &matches)
	assert.Equal(t, []uint32{0, 1}, idsOf(&out, matches))

	Any(&out, 90, 600, AnyParams[int32]{}, &ws, &matches)
	assert.Equal(t, []uint32{0, 1, 2, 3}, idsOf(&out, matches))
}

func TestAnySimpleOverlaps(t *testing.T) {
	starts := []int32{200, 300, 100, 500}
	ends := []int32{600, 720, 510, 1000}
	out := buildUint32(t, starts, ends)
	var ws AnyWorkspace[uint32]
	var matches []uint32

	Any(&out, 150, 200, AnyParams[int32]{}, &ws, &matches)
	assert.Equal(t, []uint32{2}, idsOf(&out, matches))

	Any(&out, 50, 400, AnyParams[int32]{}, &ws, &matches)
	assert.Equal(t, []uint32{0, 1, 2}, idsOf(&out, matches))

	Any(&out, 700, 1000, AnyParams[int32]{}, &ws, &matches)
	assert.Equal(t, []uint32{1, 3}, idsOf(&out, matches))

	Any(&out, 500, 600, AnyParams[int32]{}, &ws, &matches)
	assert.Equal(t, []uint32{0, 1, 2, 3}, idsOf(&out, matches))
}

func TestAnySimpleNested(t *testing.T) {
	starts := []int32{0, 20, 20, 40, 70, 90}
	ends := []int32{100, 60, 30, 50, 95, 95}
	out := buildUint32(t, starts, ends)
	var ws AnyWorkspace[uint32]
	var matches []uint32

	Any(&out, 0, 10, AnyParams[int32]{}, &ws, &matches)
	assert.Equal(t, []uint32{0}, idsOf(&out, matches))

	Any(&out, 42, 45, AnyParams[int32]{}, &ws, &matches)
	assert.Equal(t, []uint32{0, 1, 3}, idsOf(&out, matches))
}

func TestAnyQuitOnFirst(t *testing.T) {
	starts := []int32{0, 10, 20}
	ends := []int32{5, 15, 25}
	out := buildUint32(t, starts, ends)
	var ws AnyWorkspace[uint32]
	var matches []uint32
	Any(&out, 0, 100, AnyParams[int32]{QuitOnFirst: true}, &ws, &matches)
	assert.Len(t, matches, 1)
}

func TestAnyMinOverlap(t *testing.T) {
	starts := []int32{0, 10}
	ends := []int32{20, 30}
	out := buildUint32(t, starts, ends)
	var ws AnyWorkspace[uint32]
	var matches []uint32

	// Query [18, 22): overlaps subject 0 by 2 and subject 1 by 4.
	Any(&out, 18, 22, AnyParams[int32]{MinOverlap: 3}, &ws, &matches)
	assert.Equal(t, []uint32{1}, idsOf(&out, matches))
}

func TestAnyMaxGap(t *testing.T) {
	starts := []int32{0, 100}
	ends := []int32{10, 110}
	out := buildUint32(t, starts, ends)
	var ws AnyWorkspace[uint32]
	var matches []uint32

	// Query [10, 10) is contiguous with subject 0 and 90 away from subject 1.
	Any(&out, 10, 10, AnyParams[int32]{MaxGap: 0, HasMaxGap: true}, &ws, &matches)
	assert.Equal(t, []uint32{0}, idsOf(&out, matches))

	Any(&out, 10, 10, AnyParams[int32]{MaxGap: 95, HasMaxGap: true}, &ws, &matches)
	assert.Equal(t, []uint32{0, 1}, idsOf(&out, matches))
}

func TestAnyDuplicates(t *testing.T) {
	starts := []int32{5, 5, 5}
	ends := []int32{10, 10, 10}
	out := buildUint32(t, starts, ends)
	var ws AnyWorkspace[uint32]
	var matches []uint32
	Any(&out, 0, 100, AnyParams[int32]{}, &ws, &matches)
	assert.Equal(t, []uint32{0, 1, 2}, idsOf(&out, matches))
}

package nclist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtendBasic(t *testing.T) {
	starts := []int32{10, 40}
	ends := []int32{20, 50}
	out := buildUint32(t, starts, ends)
	var ws ExtendWorkspace[uint32]
	var matches []uint32

	Extend(&out, 0, 100, ExtendParams[int32]{}, &ws, &matches)
	assert.Equal(t, []uint32{0, 1}, idsOf(&out, matches))

	Extend(&out, 15, 20, ExtendParams[int32]{}, &ws, &matches)
	assert.Empty(t, matches)
}

func TestExtendMinOverlap(t *testing.T) {
	starts := []int32{0}
	ends := []int32{5}
	out := buildUint32(t, starts, ends)
	var ws ExtendWorkspace[uint32]
	var matches []uint32

	Extend(&out, 0, 10, ExtendParams[int32]{MinOverlap: 5}, &ws, &matches)
	assert.Equal(t, []uint32{0}, idsOf(&out, matches))

	Extend(&out, 0, 10, ExtendParams[int32]{MinOverlap: 6}, &ws, &matches)
	assert.Empty(t, matches)
}

package nclist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualBasic(t *testing.T) {
	starts := []int32{0, 10, 10}
	ends := []int32{5, 20, 15}
	out := buildUint32(t, starts, ends)
	var ws EqualWorkspace[uint32]
	var matches []uint32

	Equal(&out, 10, 20, EqualParams[int32]{}, &ws, &matches)
	assert.Equal(t, []uint32{1}, idsOf(&out, matches))

	Equal(&out, 10, 15, EqualParams[int32]{}, &ws, &matches)
	assert.Equal(t, []uint32{2}, idsOf(&out, matches))

	Equal(&out, 99, 100, EqualParams[int32]{}, &ws, &matches)
	assert.Empty(t, matches)
}

func TestEqualMaxGap(t *testing.T) {
	starts := []int32{10}
	ends := []int32{20}
	out := buildUint32(t, starts, ends)
	var ws EqualWorkspace[uint32]
	var matches []uint32

	Equal(&out, 12, 22, EqualParams[int32]{MaxGap: 3}, &ws, &matches)
	assert.Equal(t, []uint32{0}, idsOf(&out, matches))

	Equal(&out, 12, 22, EqualParams[int32]{MaxGap: 1}, &ws, &matches)
	assert.Empty(t, matches)
}

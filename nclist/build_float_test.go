package nclist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildAndAnyFloatPosition(t *testing.T) {
	starts := []float64{0.5, 10.25, 10.25}
	ends := []float64{5.0, 20.0, 15.0}
	out, err := Build[uint16](starts, ends)
	assert.NoError(t, err)
	assert.Equal(t, 3, out.Len())

	var ws AnyWorkspace[uint16]
	var matches []uint16
	Any(&out, 12.0, 13.0, AnyParams[float64]{}, &ws, &matches)
	assert.Len(t, matches, 2)
}

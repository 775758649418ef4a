package bedregion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grailbio/nclist/nclist"
)

func TestLoadBasic(t *testing.T) {
	input := "chr1\t10\t20\nchr1\t15\t25\nchr2\t0\t5\n"
	col, err := Load(strings.NewReader(input), LoadOpts{})
	assert.NoError(t, err)

	chr1, ok := col.ByName("chr1")
	assert.True(t, ok)
	assert.Equal(t, 2, chr1.Len())

	chr2, ok := col.ByName("chr2")
	assert.True(t, ok)
	assert.Equal(t, 1, chr2.Len())

	_, ok = col.ByName("chr3")
	assert.False(t, ok)

	var ws nclist.AnyWorkspace[uint32]
	var matches []uint32
	nclist.Any(&chr1, 18, 22, nclist.AnyParams[PosType]{}, &ws, &matches)
	assert.Len(t, matches, 2)
}

func TestLoadWithNames(t *testing.T) {
	input := "chr1\t10\t20\tfoo\nchr1\t15\t25\tbar\n"
	col, err := Load(strings.NewReader(input), LoadOpts{})
	assert.NoError(t, err)

	names := map[string]bool{
		col.SubjectName("chr1", 0): true,
		col.SubjectName("chr1", 1): true,
	}
	assert.True(t, names["foo"])
	assert.True(t, names["bar"])
}

func TestLoadOneBasedInput(t *testing.T) {
	input := "chr1\t1\t10\n"
	col, err := Load(strings.NewReader(input), LoadOpts{OneBasedInput: true})
	assert.NoError(t, err)
	chr1, ok := col.ByName("chr1")
	assert.True(t, ok)
	assert.Equal(t, PosType(0), chr1.Starts[0])
	assert.Equal(t, PosType(10), chr1.Ends[0])
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(strings.NewReader("chr1\t10\n"), LoadOpts{})
	assert.Error(t, err)

	_, err = Load(strings.NewReader("chr1\tabc\t20\n"), LoadOpts{})
	assert.Error(t, err)

	_, err = Load(strings.NewReader("chr1\t20\t10\n"), LoadOpts{})
	assert.Error(t, err)
}

func TestLoadEmptyAndBlankLines(t *testing.T) {
	input := "\nchr1\t10\t20\n\n"
	col, err := Load(strings.NewReader(input), LoadOpts{})
	assert.NoError(t, err)
	chr1, ok := col.ByName("chr1")
	assert.True(t, ok)
	assert.Equal(t, 1, chr1.Len())
}

func TestParseRegionStringChromOnly(t *testing.T) {
	e, err := ParseRegionString("chr1")
	assert.NoError(t, err)
	assert.Equal(t, "chr1", e.ChrName)
	assert.Equal(t, PosType(0), e.Start0)
	assert.Equal(t, PosTypeMax-1, e.End)
}

func TestParseRegionStringSinglePos(t *testing.T) {
	e, err := ParseRegionString("chr1:100")
	assert.NoError(t, err)
	assert.Equal(t, "chr1", e.ChrName)
	assert.Equal(t, PosType(99), e.Start0)
	assert.Equal(t, PosType(100), e.End)
}

func TestParseRegionStringRange(t *testing.T) {
	e, err := ParseRegionString("chr2:100-200")
	assert.NoError(t, err)
	assert.Equal(t, "chr2", e.ChrName)
	assert.Equal(t, PosType(99), e.Start0)
	assert.Equal(t, PosType(200), e.End)
}

func TestParseRegionStringInvalid(t *testing.T) {
	cases := []string{"", ":100", "chr1:0", "chr1:200-100", "chr1:abc"}
	for _, c := range cases {
		_, err := ParseRegionString(c)
		assert.Error(t, err, c)
	}
}

package bedregion

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/hts/sam"
	"github.com/grailbio/nclist/nclist"
	"github.com/klauspost/compress/gzip"
)

// PosType is this package's coordinate type, matching the 32-bit space BAM
// itself is limited to.
type PosType = int32

// PosTypeMax is the maximum value representable by PosType.
const PosTypeMax PosType = math.MaxInt32

// Entry represents a single BED region, with 0-based coordinates.
type Entry struct {
	ChrName string
	Start0  PosType
	End     PosType
	Name    string // empty if the input had no fourth column
}

// getTokens identifies up to the first len(tokens) tokens from curLine,
// returning the number of tokens saved. Any (group of) characters <= ' ' is
// treated as a delimiter.
func getTokens(tokens [][]byte, curLine []byte) int {
	posEnd := 0
	lineLen := len(curLine)
	for tokenIdx := range tokens {
		pos := posEnd
		for ; pos != lineLen; pos++ {
			if curLine[pos] > ' ' {
				break
			}
		}
		if pos == lineLen {
			return tokenIdx
		}
		posEnd = pos
		for ; posEnd != lineLen; posEnd++ {
			if curLine[posEnd] <= ' ' {
				break
			}
		}
		tokens[tokenIdx] = curLine[pos:posEnd]
	}
	return len(tokens)
}

// LoadOpts configures Load/LoadFromPath.
type LoadOpts struct {
	// SAMHeader enables ID-based lookup via (*Collection).ByID once Load
	// returns. Equivalent to calling AttachHeader afterwards.
	SAMHeader *sam.Header
	// OneBasedInput interprets the BED interval boundaries as one-based
	// [start, end] instead of the usual zero-based [start, end).
	OneBasedInput bool
}

// Collection holds one Nclist per chromosome, built from a region file.
// Unlike a merged interval-union, every input row survives as its own
// subject, and subject IDs can be mapped back to names via SubjectName.
type Collection struct {
	byName map[string]nclist.Nclist[uint32, PosType]
	byID   []nclist.Nclist[uint32, PosType]
	names  map[string][]string // chrName -> subject id -> name, only populated if any row carried a name
	order  []string            // chromosome names in first-encountered order
}

func newCollection() Collection {
	return Collection{byName: make(map[string]nclist.Nclist[uint32, PosType])}
}

// ByName returns the chromosome's index, and whether one was found.
func (c *Collection) ByName(chrName string) (nclist.Nclist[uint32, PosType], bool) {
	idx, ok := c.byName[chrName]
	return idx, ok
}

// ByID returns the chromosome's index by sam.Header reference ID, and
// whether one was found. It panics if AttachHeader was never called.
func (c *Collection) ByID(refID int) (nclist.Nclist[uint32, PosType], bool) {
	if c.byID == nil {
		panic("bedregion: ByID called before AttachHeader")
	}
	if refID < 0 || refID >= len(c.byID) {
		return nclist.Nclist[uint32, PosType]{}, false
	}
	idx := c.byID[refID]
	return idx, len(idx.Starts) != 0
}

// ChrNames returns every chromosome name present in the loaded region file,
// in the order each was first encountered.
func (c *Collection) ChrNames() []string {
	return c.order
}

// SubjectName returns the BED name column for a chromosome's subject ID, or
// "" if the input had no fourth column.
func (c *Collection) SubjectName(chrName string, subjectID uint32) string {
	names := c.names[chrName]
	if int(subjectID) >= len(names) {
		return ""
	}
	return names[subjectID]
}

// AttachHeader builds the ID-keyed index slice from a SAM/BAM header's
// reference list, for callers that only obtain the header after Load has
// already run.
func (c *Collection) AttachHeader(header *sam.Header) error {
	refs := header.Refs()
	c.byID = make([]nclist.Nclist[uint32, PosType], len(refs))
	for refID, ref := range refs {
		if refID != ref.ID() {
			return errors.E(fmt.Sprintf("bedregion.AttachHeader: ref.ID() %d does not match array position %d", ref.ID(), refID))
		}
		if idx, ok := c.byName[ref.Name()]; ok {
			c.byID[refID] = idx
		}
	}
	return nil
}

type chrAccum struct {
	starts  []PosType
	ends    []PosType
	names   []string
	anyName bool
}

// Load reads a BED3(+name) file from r and builds one nclist.Nclist per
// chromosome encountered. Input need not be sorted, by chromosome or by
// position: nclist.Build sorts each chromosome's rows internally.
func Load(r io.Reader, opts LoadOpts) (col Collection, err error) {
	col = newCollection()
	col.names = make(map[string][]string)

	startSubtract := PosType(0)
	if opts.OneBasedInput {
		startSubtract = 1
	}

	accum := make(map[string]*chrAccum)
	var order []string

	scanner := bufio.NewScanner(r)
	lineIdx := 0
	var tokens [4][]byte
	for scanner.Scan() {
		lineIdx++
		curLine := scanner.Bytes()
		nToken := getTokens(tokens[:], curLine)
		if nToken < 3 {
			if nToken == 0 {
				continue
			}
			return Collection{}, errors.E(fmt.Sprintf("bedregion.Load: line %d has fewer tokens than expected", lineIdx))
		}

		chrName := string(tokens[0])
		parsedStart, serr := strconv.Atoi(string(tokens[1]))
		if serr != nil {
			return Collection{}, errors.E(serr, fmt.Sprintf("line %d", lineIdx))
		}
		start := PosType(parsedStart) - startSubtract
		if start < 0 {
			return Collection{}, errors.E(fmt.Sprintf("bedregion.Load: negative start coordinate on line %d", lineIdx))
		}

		parsedEnd, eerr := strconv.Atoi(string(tokens[2]))
		if eerr != nil {
			return Collection{}, errors.E(eerr, fmt.Sprintf("line %d", lineIdx))
		}
		end := PosType(parsedEnd)
		if end < start || end >= PosTypeMax {
			return Collection{}, errors.E(fmt.Sprintf("bedregion.Load: invalid coordinate pair on line %d", lineIdx))
		}

		a, ok := accum[chrName]
		if !ok {
			a = &chrAccum{}
			accum[chrName] = a
			order = append(order, chrName)
		}
		a.starts = append(a.starts, start)
		a.ends = append(a.ends, end)
		if nToken >= 4 {
			a.names = append(a.names, string(tokens[3]))
			a.anyName = true
		} else {
			a.names = append(a.names, "")
		}
	}
	if serr := scanner.Err(); serr != nil {
		return Collection{}, errors.E(serr, "bedregion.Load")
	}

	totBases := 0
	nRegions := 0
	for _, chrName := range order {
		a := accum[chrName]
		idx, berr := nclist.Build[uint32](a.starts, a.ends)
		if berr != nil {
			return Collection{}, errors.E(berr, "bedregion.Load", fmt.Sprintf("chromosome %v", chrName))
		}
		col.byName[chrName] = idx
		col.order = append(col.order, chrName)
		if a.anyName {
			col.names[chrName] = a.names
		}
		for i := range a.starts {
			totBases += int(a.ends[i] - a.starts[i])
		}
		nRegions += len(a.starts)
	}
	log.Printf("bedregion: loaded %d region(s) across %d chromosome(s), %d base(s) covered.\n", nRegions, len(order), totBases)

	if opts.SAMHeader != nil {
		if herr := col.AttachHeader(opts.SAMHeader); herr != nil {
			return Collection{}, herr
		}
	}
	return col, nil
}

// LoadFromPath is a wrapper for Load that takes a path instead of an
// io.Reader, transparently gzip-decompressing when the path's extension
// indicates a gzip file.
func LoadFromPath(path string, opts LoadOpts) (col Collection, err error) {
	ctx := vcontext.Background()
	var infile file.File
	if infile, err = file.Open(ctx, path); err != nil {
		err = errors.E(err, path)
		return
	}
	defer func() {
		if cerr := infile.Close(ctx); cerr != nil && err == nil {
			err = errors.E(cerr, path)
		}
	}()
	reader := io.Reader(infile.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		if reader, err = gzip.NewReader(reader); err != nil {
			err = errors.E(err, path)
			return
		}
	}
	col, err = Load(reader, opts)
	if err != nil {
		err = errors.E(err, path)
	}
	return
}

// ParseRegionString parses a region string of one of the forms
//
//	[contig ID]:[1-based first pos]-[last pos]
//	[contig ID]:[1-based pos]
//	[contig ID]
//
// returning a contig ID and 0-based interval boundaries. The interval
// [0, PosTypeMax - 1] is returned if there is no positional restriction.
func ParseRegionString(region string) (result Entry, err error) {
	if len(region) == 0 {
		err = fmt.Errorf("bedregion.ParseRegionString: empty region string")
		return
	}
	colonPos := strings.IndexByte(region, ':')
	if colonPos == -1 {
		result = Entry{ChrName: region, Start0: 0, End: PosTypeMax - 1}
		return
	}
	if colonPos == 0 {
		err = fmt.Errorf("bedregion.ParseRegionString: empty contig ID")
		return
	}
	result.ChrName = region[:colonPos]
	rangeStr := region[colonPos+1:]
	dashPos := strings.IndexByte(rangeStr, '-')
	if dashPos == -1 {
		pos1, perr := strconv.ParseInt(rangeStr, 10, 32)
		if perr != nil {
			err = perr
			return
		}
		if pos1 <= 0 {
			err = fmt.Errorf("bedregion.ParseRegionString: position %v in region string out of range", rangeStr)
			return
		}
		result.Start0 = PosType(pos1 - 1)
		result.End = PosType(pos1)
		return
	}

	start1Str := rangeStr[:dashPos]
	endStr := rangeStr[dashPos+1:]
	start1, serr := strconv.Atoi(start1Str)
	if serr != nil {
		err = serr
		return
	}
	if start1 <= 0 {
		err = fmt.Errorf("bedregion.ParseRegionString: position %v in region string out of range", start1Str)
		return
	}
	end0, eerr := strconv.Atoi(endStr)
	if eerr != nil {
		err = eerr
		return
	}
	if end0 <= start1 || PosType(end0) >= PosTypeMax {
		err = fmt.Errorf("bedregion.ParseRegionString: invalid range string %v", rangeStr)
		return
	}
	result.Start0 = PosType(start1 - 1)
	result.End = PosType(end0)
	return
}

package main

// See doc.go for documentation
import (
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"

	"github.com/grailbio/nclist/bedregion"
	"github.com/grailbio/nclist/nclist"
)

var (
	regionPath            = flag.String("region", "", "BED-style region file to load (required)")
	chrFlag               = flag.String("chr", "", "query this chromosome instead of the one named in --query; if empty, query the --query chromosome, or every chromosome in --region when --query names only a chromosome")
	kind                  = flag.String("kind", "any", "query kind: any, start, end, equal, within, extend, nearest")
	query                 = flag.String("query", "", "query region, e.g. chr1:1000-2000 (required)")
	minOverlap            = flag.Int("min-overlap", 0, "minimum overlap length required for a match (any, start, end, equal, within, extend)")
	maxGap                = flag.Int("max-gap", -1, "maximum gap tolerated for a match; negative means unset (any, start, end, equal, within, extend)")
	quitOnFirst           = flag.Bool("quit-on-first", false, "stop after the first match")
	adjacentEqualsOverlap = flag.Bool("adjacent-equals-overlap", false, "nearest: treat a zero-gap adjacent subject as if it overlapped")
)

func main() {
	shutdown := grail.Init()
	defer shutdown()

	if *regionPath == "" || *query == "" {
		log.Fatalf("nclist-query: --region and --query are required")
	}

	col, err := bedregion.LoadFromPath(*regionPath, bedregion.LoadOpts{})
	if err != nil {
		log.Fatalf("nclist-query: loading %v: %v", *regionPath, err)
	}

	parsed, err := bedregion.ParseRegionString(*query)
	if err != nil {
		log.Fatalf("nclist-query: parsing --query=%v: %v", *query, err)
	}

	chrNames := []string{parsed.ChrName}
	switch {
	case *chrFlag != "":
		chrNames = []string{*chrFlag}
	case *query == parsed.ChrName:
		// --query named only a chromosome, no position: sweep every
		// chromosome in the file with the full-range bounds that
		// ParseRegionString filled in.
		chrNames = col.ChrNames()
	}

	w := os.Stdout
	multi := len(chrNames) > 1
	for _, chrName := range chrNames {
		idx, ok := col.ByName(chrName)
		if !ok {
			continue
		}
		matches := runQuery(&idx, parsed.Start0, parsed.End, *kind)
		for _, m := range matches {
			name := col.SubjectName(chrName, m)
			if multi {
				fmt.Fprintf(w, "%s\t%d", chrName, m)
			} else {
				fmt.Fprintf(w, "%d", m)
			}
			if name != "" {
				fmt.Fprintf(w, "\t%s", name)
			}
			fmt.Fprintln(w)
		}
	}
}

func runQuery(idx *nclist.Nclist[uint32, bedregion.PosType], start, end bedregion.PosType, kind string) []uint32 {
	var matches []uint32
	maxGapVal := bedregion.PosType(*maxGap)
	hasMaxGap := *maxGap >= 0
	// Start, End and Equal have no HasMaxGap field: a zero MaxGap is their
	// unset (exact-match) value.
	exactMaxGapVal := maxGapVal
	if !hasMaxGap {
		exactMaxGapVal = 0
	}
	minOverlapVal := bedregion.PosType(*minOverlap)

	switch kind {
	case "any":
		var ws nclist.AnyWorkspace[uint32]
		nclist.Any(idx, start, end, nclist.AnyParams[bedregion.PosType]{
			MaxGap: maxGapVal, HasMaxGap: hasMaxGap, MinOverlap: minOverlapVal, QuitOnFirst: *quitOnFirst,
		}, &ws, &matches)
	case "start":
		var ws nclist.StartWorkspace[uint32]
		nclist.Start(idx, start, end, nclist.StartParams[bedregion.PosType]{
			MaxGap: exactMaxGapVal, MinOverlap: minOverlapVal, QuitOnFirst: *quitOnFirst,
		}, &ws, &matches)
	case "end":
		var ws nclist.EndWorkspace[uint32]
		nclist.End(idx, start, end, nclist.EndParams[bedregion.PosType]{
			MaxGap: exactMaxGapVal, MinOverlap: minOverlapVal, QuitOnFirst: *quitOnFirst,
		}, &ws, &matches)
	case "equal":
		var ws nclist.EqualWorkspace[uint32]
		nclist.Equal(idx, start, end, nclist.EqualParams[bedregion.PosType]{
			MaxGap: exactMaxGapVal, MinOverlap: minOverlapVal, QuitOnFirst: *quitOnFirst,
		}, &ws, &matches)
	case "within":
		var ws nclist.WithinWorkspace[uint32]
		nclist.Within(idx, start, end, nclist.WithinParams[bedregion.PosType]{
			MaxGap: maxGapVal, HasMaxGap: hasMaxGap, MinOverlap: minOverlapVal, QuitOnFirst: *quitOnFirst,
		}, &ws, &matches)
	case "extend":
		var ws nclist.ExtendWorkspace[uint32]
		nclist.Extend(idx, start, end, nclist.ExtendParams[bedregion.PosType]{
			MaxGap: maxGapVal, HasMaxGap: hasMaxGap, MinOverlap: minOverlapVal, QuitOnFirst: *quitOnFirst,
		}, &ws, &matches)
	case "nearest":
		var ws nclist.NearestWorkspace[uint32]
		nclist.Nearest(idx, start, end, nclist.NearestParams{
			QuitOnFirst: *quitOnFirst, AdjacentEqualsOverlap: *adjacentEqualsOverlap,
		}, &ws, &matches)
	default:
		log.Fatalf("nclist-query: unknown --kind=%v", kind)
	}
	return matches
}

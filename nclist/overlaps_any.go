package nclist

// AnyWorkspace holds the traversal stack reused across calls to Any. The
// zero value is ready to use.
type AnyWorkspace[I Index] struct {
	history []anyState[I]
}

type anyState[I Index] struct {
	childAt, childEnd I
	skipSearch        bool
}

// AnyParams configures Any. MinOverlap and MaxGap are mutually exclusive:
// when MinOverlap > 0, MaxGap is ignored.
type AnyParams[P Position] struct {
	// MaxGap extends the query by MaxGap on both sides before testing for
	// overlap, so a subject contiguous with the (unextended) query matches
	// when MaxGap is zero. Leave HasMaxGap false for a plain overlap test.
	MaxGap    P
	HasMaxGap bool

	// MinOverlap requires the overlapping subinterval to be at least this
	// long. Mutually exclusive with MaxGap.
	MinOverlap P

	// QuitOnFirst stops the walk after the first match.
	QuitOnFirst bool
}

// Any finds subject intervals that overlap the query interval [queryStart,
// queryEnd), i.e. subjectStart < queryEnd && queryStart < subjectEnd, subject
// to the MaxGap/MinOverlap adjustments in AnyParams. matches is cleared and
// then filled; order is unspecified.
func Any[I Index, P Position](subject *Nclist[I, P], queryStart, queryEnd P, params AnyParams[P], ws *AnyWorkspace[I], matches *[]I) {
	*matches = (*matches)[:0]
	if subject.RootChildren == 0 {
		return
	}

	const (
		modeBasic = iota
		modeMinOverlap
		modeMaxGap
	)
	mode := modeBasic
	if params.MinOverlap > 0 {
		mode = modeMinOverlap
	} else if params.HasMaxGap {
		mode = modeMaxGap
	}

	if mode == modeMinOverlap {
		if queryEnd-queryStart < params.MinOverlap {
			return
		}
	}

	var effectiveQueryStart P
	switch mode {
	case modeMaxGap:
		effectiveQueryStart = saturatingSub(queryStart, params.MaxGap)
	case modeMinOverlap:
		if addOverflows(queryStart, params.MinOverlap) {
			return
		}
		effectiveQueryStart = queryStart + params.MinOverlap
	}

	findFirstChild := func(childrenStart, childrenEnd I) I {
		if mode == modeBasic {
			return upperBound(subject.Ends, childrenStart, childrenEnd, queryStart)
		}
		return lowerBound(subject.Ends, childrenStart, childrenEnd, effectiveQueryStart)
	}

	canSkipSearch := func(subjectStart P) bool {
		if mode == modeBasic {
			return subjectStart > queryStart
		}
		return subjectStart >= effectiveQueryStart
	}

	isFinished := func(subjectStart P) bool {
		switch mode {
		case modeBasic:
			return subjectStart >= queryEnd
		case modeMaxGap:
			if subjectStart < queryEnd {
				return false
			}
			return subjectStart-queryEnd > params.MaxGap
		default: // modeMinOverlap
			if subjectStart >= queryEnd {
				return true
			}
			return queryEnd-subjectStart < params.MinOverlap
		}
	}

	rootChildAt := I(0)
	rootSkipSearch := canSkipSearch(subject.Starts[0])
	if !rootSkipSearch {
		rootChildAt = findFirstChild(0, subject.RootChildren)
	}

	ws.history = ws.history[:0]
	for {
		var current I
		var skipSearch bool
		if len(ws.history) == 0 {
			if rootChildAt == subject.RootChildren || isFinished(subject.Starts[rootChildAt]) {
				break
			}
			current = rootChildAt
			skipSearch = rootSkipSearch
			rootChildAt++
		} else {
			top := &ws.history[len(ws.history)-1]
			if top.childAt == top.childEnd || isFinished(subject.Starts[top.childAt]) {
				ws.history = ws.history[:len(ws.history)-1]
				continue
			}
			current = top.childAt
			skipSearch = top.skipSearch
			top.childAt++
		}

		node := &subject.Nodes[current]
		if mode == modeMinOverlap {
			overlap := min(queryEnd, subject.Ends[current]) - max(queryStart, subject.Starts[current])
			if overlap < params.MinOverlap {
				continue
			}
		}

		*matches = append(*matches, node.ID)
		if params.QuitOnFirst {
			return
		}
		if node.DuplicatesStart != node.DuplicatesEnd {
			*matches = append(*matches, subject.Duplicates[node.DuplicatesStart:node.DuplicatesEnd]...)
		}

		if node.ChildrenStart != node.ChildrenEnd {
			if skipSearch {
				ws.history = append(ws.history, anyState[I]{node.ChildrenStart, node.ChildrenEnd, true})
			} else {
				start := findFirstChild(node.ChildrenStart, node.ChildrenEnd)
				if start != node.ChildrenEnd {
					ws.history = append(ws.history, anyState[I]{start, node.ChildrenEnd, canSkipSearch(subject.Starts[start])})
				}
			}
		}
	}
}

package nclist

// StartWorkspace holds the traversal stack reused across calls to Start.
// The zero value is ready to use.
type StartWorkspace[I Index] struct {
	history []anyState[I]
}

// StartParams configures Start.
type StartParams[P Position] struct {
	// MaxGap is the maximum gap between query and subject start positions
	// that still counts as a match.
	MaxGap P

	// MinOverlap requires the overlapping subinterval to be at least this
	// long, in addition to the start positions matching within MaxGap.
	MinOverlap P

	// QuitOnFirst stops the walk after the first match.
	QuitOnFirst bool
}

// Start finds subject intervals whose start position equals the query's
// start position (subject to MaxGap/MinOverlap adjustments in StartParams).
// matches is cleared and then filled; order is unspecified.
func Start[I Index, P Position](subject *Nclist[I, P], queryStart, queryEnd P, params StartParams[P], ws *StartWorkspace[I], matches *[]I) {
	*matches = (*matches)[:0]
	if subject.RootChildren == 0 {
		return
	}

	if params.MinOverlap > 0 && queryEnd-queryStart < params.MinOverlap {
		return
	}

	effectiveQueryStart := queryStart
	isSimple := true
	if params.MinOverlap > 0 {
		if addOverflows(queryStart, params.MinOverlap) {
			return
		}
		effectiveQueryStart = queryStart + params.MinOverlap
		isSimple = false
	} else if params.MaxGap > 0 {
		effectiveQueryStart = saturatingSub(queryStart, params.MaxGap)
		isSimple = false
	}

	findFirstChild := func(childrenStart, childrenEnd I) I {
		return lowerBound(subject.Ends, childrenStart, childrenEnd, effectiveQueryStart)
	}
	skipBinarySearch := func(subjectStart P) bool {
		return subjectStart >= effectiveQueryStart
	}
	isFinished := func(subjectStart P) bool {
		if subjectStart > queryStart {
			if params.MaxGap == 0 {
				return true
			}
			if subjectStart-queryStart > params.MaxGap {
				return true
			}
			if params.MinOverlap > 0 {
				if subjectStart >= queryEnd || queryEnd-subjectStart < params.MinOverlap {
					return true
				}
			}
		} else if params.MinOverlap > 0 {
			if queryEnd-subjectStart < params.MinOverlap {
				return true
			}
		}
		return false
	}

	rootChildAt := I(0)
	rootSkipSearch := skipBinarySearch(subject.Starts[0])
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
		subjectStart := subject.Starts[current]
		subjectEnd := subject.Ends[current]

		var okay bool
		if isSimple {
			okay = subjectStart == queryStart
		} else {
			if params.MinOverlap > 0 {
				commonEnd := min(subjectEnd, queryEnd)
				commonStart := max(subjectStart, queryStart)
				if commonEnd <= commonStart || commonEnd-commonStart < params.MinOverlap {
					continue
				}
			}
			if params.MaxGap > 0 {
				okay = !absDiffExceeds(queryStart, subjectStart, params.MaxGap)
			} else {
				okay = subjectStart == queryStart
			}
		}

		if okay {
			*matches = append(*matches, node.ID)
			if params.QuitOnFirst {
				return
			}
			if node.DuplicatesStart != node.DuplicatesEnd {
				*matches = append(*matches, subject.Duplicates[node.DuplicatesStart:node.DuplicatesEnd]...)
			}
		}

		if node.ChildrenStart != node.ChildrenEnd {
			if skipSearch {
				ws.history = append(ws.history, anyState[I]{node.ChildrenStart, node.ChildrenEnd, true})
			} else {
				start := findFirstChild(node.ChildrenStart, node.ChildrenEnd)
				if start != node.ChildrenEnd {
					ws.history = append(ws.history, anyState[I]{start, node.ChildrenEnd, skipBinarySearch(subject.Starts[start])})
				}
			}
		}
	}
}

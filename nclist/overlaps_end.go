package nclist

// noSkipState is the traversal stack entry shared by query kinds that have
// no skip-search optimization (End, Equal, Within, Extend): unlike Any,
// Start, and Nearest, a node's end-position relationship to the query
// doesn't say anything about its descendants', so there is no lineage-wide
// shortcut to track.
type noSkipState[I Index] struct {
	childAt, childEnd I
}

// EndWorkspace holds the traversal stack reused across calls to End. The
// zero value is ready to use.
type EndWorkspace[I Index] struct {
	history []noSkipState[I]
}

// EndParams configures End.
type EndParams[P Position] struct {
	// MaxGap is the maximum gap between query and subject end positions
	// that still counts as a match.
	MaxGap P

	// MinOverlap requires the overlapping subinterval to be at least this
	// long, in addition to the end positions matching within MaxGap.
	MinOverlap P

	// QuitOnFirst stops the walk after the first match.
	QuitOnFirst bool
}

// End finds subject intervals whose end position equals the query's end
// position (subject to MaxGap/MinOverlap adjustments in EndParams). matches
// is cleared and then filled; order is unspecified.
func End[I Index, P Position](subject *Nclist[I, P], queryStart, queryEnd P, params EndParams[P], ws *EndWorkspace[I], matches *[]I) {
	*matches = (*matches)[:0]
	if subject.RootChildren == 0 {
		return
	}

	if params.MinOverlap > 0 && queryEnd-queryStart < params.MinOverlap {
		return
	}

	effectiveQueryEnd := queryEnd
	if params.MaxGap > 0 {
		effectiveQueryEnd = saturatingSub(queryEnd, params.MaxGap)
	}

	findFirstChild := func(childrenStart, childrenEnd I) I {
		return lowerBound(subject.Ends, childrenStart, childrenEnd, effectiveQueryEnd)
	}
	isFinished := func(subjectStart P) bool {
		if subjectStart > queryEnd {
			if params.MaxGap == 0 {
				return true
			}
			if params.MinOverlap > 0 {
				return true
			}
			if subjectStart-queryEnd > params.MaxGap {
				return true
			}
		} else if params.MinOverlap > 0 {
			if queryEnd-subjectStart < params.MinOverlap {
				return true
			}
		}
		return false
	}

	rootChildAt := findFirstChild(0, subject.RootChildren)

	ws.history = ws.history[:0]
	for {
		var current I
		if len(ws.history) == 0 {
			if rootChildAt == subject.RootChildren || isFinished(subject.Starts[rootChildAt]) {
				break
			}
			current = rootChildAt
			rootChildAt++
		} else {
			top := &ws.history[len(ws.history)-1]
			if top.childAt == top.childEnd || isFinished(subject.Starts[top.childAt]) {
				ws.history = ws.history[:len(ws.history)-1]
				continue
			}
			current = top.childAt
			top.childAt++
		}

		node := &subject.Nodes[current]
		subjectStart := subject.Starts[current]
		subjectEnd := subject.Ends[current]

		if params.MinOverlap > 0 {
			commonEnd := min(subjectEnd, queryEnd)
			commonStart := max(subjectStart, queryStart)
			if commonEnd <= commonStart || commonEnd-commonStart < params.MinOverlap {
				continue
			}
		}

		var okay bool
		if params.MaxGap == 0 {
			okay = subjectEnd == queryEnd
		} else {
			okay = !absDiffExceeds(queryEnd, subjectEnd, params.MaxGap)
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
			start := findFirstChild(node.ChildrenStart, node.ChildrenEnd)
			if start != node.ChildrenEnd {
				ws.history = append(ws.history, noSkipState[I]{start, node.ChildrenEnd})
			}
		}
	}
}

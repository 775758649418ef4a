package nclist

// EqualWorkspace holds the traversal stack reused across calls to Equal.
// The zero value is ready to use.
type EqualWorkspace[I Index] struct {
	history []noSkipState[I]
}

// EqualParams configures Equal.
type EqualParams[P Position] struct {
	// MaxGap is the maximum gap allowed between both the query/subject
	// starts and the query/subject ends for a match.
	MaxGap P

	// MinOverlap requires the overlapping subinterval to be at least this
	// long.
	MinOverlap P

	// QuitOnFirst stops the walk after the first match.
	QuitOnFirst bool
}

// Equal finds subject intervals with the same start and end positions as
// the query interval (subject to MaxGap/MinOverlap adjustments in
// EqualParams). matches is cleared and then filled; order is unspecified.
func Equal[I Index, P Position](subject *Nclist[I, P], queryStart, queryEnd P, params EqualParams[P], ws *EqualWorkspace[I], matches *[]I) {
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
		if subjectStart > queryStart {
			if params.MaxGap > 0 {
				if subjectStart-queryStart > params.MaxGap {
					return true
				}
			} else {
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
		if params.MaxGap > 0 {
			okay = !absDiffExceeds(queryStart, subjectStart, params.MaxGap) && !absDiffExceeds(queryEnd, subjectEnd, params.MaxGap)
		} else {
			okay = subjectStart == queryStart && subjectEnd == queryEnd
		}

		if okay {
			*matches = append(*matches, node.ID)
			if params.QuitOnFirst {
				return
			}
			if node.DuplicatesStart != node.DuplicatesEnd {
				*matches = append(*matches, subject.Duplicates[node.DuplicatesStart:node.DuplicatesEnd]...)
			}
			if params.MaxGap == 0 {
				// Exactly one node can hold all duplicates of an exact
				// start/end pair, so there's nothing left to find.
				return
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

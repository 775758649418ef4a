package nclist

// NearestWorkspace holds the traversal stack reused across calls to
// Nearest. The zero value is ready to use.
type NearestWorkspace[I Index] struct {
	history []anyState[I]
}

// NearestParams configures Nearest.
type NearestParams struct {
	// QuitOnFirst stops the walk after the first match.
	QuitOnFirst bool

	// AdjacentEqualsOverlap treats a subject immediately adjacent to the
	// query (gap of zero) as equally "nearest" as an overlapping subject,
	// matching the behavior of IRanges::nearest() in R/Bioconductor. When
	// false, adjacent subjects are only reported if no subject overlaps.
	AdjacentEqualsOverlap bool
}

// nearestBefore walks down the last child of rootIndex's lineage for as
// long as each child's end still equals endPosition, reporting every node
// visited along the way.
func nearestBefore[I Index, P Position](subject *Nclist[I, P], rootIndex I, endPosition P, quitOnFirst bool, matches *[]I) {
	current := rootIndex
	for {
		node := &subject.Nodes[current]
		*matches = append(*matches, node.ID)
		if quitOnFirst {
			return
		}
		if node.DuplicatesStart != node.DuplicatesEnd {
			*matches = append(*matches, subject.Duplicates[node.DuplicatesStart:node.DuplicatesEnd]...)
		}
		if node.ChildrenStart == node.ChildrenEnd {
			return
		}
		current = node.ChildrenEnd - 1
		if subject.Ends[current] != endPosition {
			return
		}
	}
}

// nearestAfter walks down the first child of rootIndex's lineage for as
// long as each child's start still equals startPosition, reporting every
// node visited along the way.
func nearestAfter[I Index, P Position](subject *Nclist[I, P], rootIndex I, startPosition P, quitOnFirst bool, matches *[]I) {
	current := rootIndex
	for {
		node := &subject.Nodes[current]
		*matches = append(*matches, node.ID)
		if quitOnFirst {
			return
		}
		if node.DuplicatesStart != node.DuplicatesEnd {
			*matches = append(*matches, subject.Duplicates[node.DuplicatesStart:node.DuplicatesEnd]...)
		}
		if node.ChildrenStart == node.ChildrenEnd {
			return
		}
		current = node.ChildrenStart
		if subject.Starts[current] != startPosition {
			return
		}
	}
}

// nearestOverlaps is the overlaps_any() walk augmented to also pick up
// subjects immediately adjacent to the query when adjacentEqualsOverlap is
// set. It returns the root-level index that would begin the "intervals
// starting after the query" region, for use by Nearest's no-overlap
// fallback.
func nearestOverlaps[I Index, P Position](subject *Nclist[I, P], queryStart, queryEnd P, quitOnFirst, adjacentEqualsOverlap bool, ws *NearestWorkspace[I], matches *[]I) I {
	findFirstChild := func(childrenStart, childrenEnd I) I {
		return upperBound(subject.Ends, childrenStart, childrenEnd, queryStart)
	}
	canSkipSearch := func(subjectStart P) bool {
		return subjectStart > queryStart
	}
	isFinished := func(subjectStart P) bool {
		return subjectStart >= queryEnd
	}

	rootChildAt := I(0)
	rootSkipSearch := canSkipSearch(subject.Starts[0])
	if !rootSkipSearch {
		rootChildAt = findFirstChild(0, subject.RootChildren)
		if adjacentEqualsOverlap && rootChildAt > 0 {
			previousChild := rootChildAt - 1
			if queryStart == subject.Ends[previousChild] {
				nearestBefore(subject, previousChild, queryStart, quitOnFirst, matches)
				if quitOnFirst && len(*matches) > 0 {
					return rootChildAt
				}
			}
		}
	}

	ws.history = ws.history[:0]
	for {
		var current I
		var skipSearch bool

		if len(ws.history) == 0 {
			if rootChildAt == subject.RootChildren {
				break
			}
			nextStart := subject.Starts[rootChildAt]
			if isFinished(nextStart) {
				if adjacentEqualsOverlap && nextStart == queryEnd {
					nearestAfter(subject, rootChildAt, queryEnd, quitOnFirst, matches)
				}
				break
			}
			current = rootChildAt
			skipSearch = rootSkipSearch
			rootChildAt++
		} else {
			top := &ws.history[len(ws.history)-1]
			if top.childAt == top.childEnd {
				ws.history = ws.history[:len(ws.history)-1]
				continue
			}
			nextStart := subject.Starts[top.childAt]
			if isFinished(nextStart) {
				if adjacentEqualsOverlap && nextStart == queryEnd {
					nearestAfter(subject, top.childAt, queryEnd, false, matches)
				}
				ws.history = ws.history[:len(ws.history)-1]
				continue
			}
			current = top.childAt
			skipSearch = top.skipSearch
			top.childAt++
		}

		node := &subject.Nodes[current]
		*matches = append(*matches, node.ID)
		if quitOnFirst {
			break
		}
		if node.DuplicatesStart != node.DuplicatesEnd {
			*matches = append(*matches, subject.Duplicates[node.DuplicatesStart:node.DuplicatesEnd]...)
		}

		if node.ChildrenStart != node.ChildrenEnd {
			if skipSearch {
				ws.history = append(ws.history, anyState[I]{node.ChildrenStart, node.ChildrenEnd, true})
			} else {
				startPos := findFirstChild(node.ChildrenStart, node.ChildrenEnd)
				if adjacentEqualsOverlap && startPos > node.ChildrenStart {
					previousChild := startPos - 1
					if queryStart == subject.Ends[previousChild] {
						nearestBefore(subject, previousChild, queryStart, false, matches)
					}
				}
				if startPos != node.ChildrenEnd {
					ws.history = append(ws.history, anyState[I]{startPos, node.ChildrenEnd, canSkipSearch(subject.Starts[startPos])})
				}
			}
		}
	}

	return rootChildAt
}

// Nearest finds subject intervals nearest to the query interval: if any
// overlap (or, with AdjacentEqualsOverlap, are immediately adjacent), all
// of those are reported; otherwise the subject(s) with the smallest gap to
// the query are reported, with ties broken by reporting every tied
// subject. matches is cleared and then filled; order is unspecified.
func Nearest[I Index, P Position](subject *Nclist[I, P], queryStart, queryEnd P, params NearestParams, ws *NearestWorkspace[I], matches *[]I) {
	*matches = (*matches)[:0]
	if subject.RootChildren == 0 {
		return
	}

	rootIndex := nearestOverlaps(subject, queryStart, queryEnd, params.QuitOnFirst, params.AdjacentEqualsOverlap, ws, matches)
	if len(*matches) > 0 {
		return
	}

	var toPrevious, toNext P
	hasPrevious, hasNext := false, false
	if rootIndex > 0 {
		toPrevious = queryStart - subject.Ends[rootIndex-1]
		hasPrevious = true
	}
	if rootIndex < subject.RootChildren {
		toNext = subject.Starts[rootIndex] - queryEnd
		hasNext = true
	}

	if hasPrevious && (!hasNext || toPrevious <= toNext) {
		previousChild := rootIndex - 1
		nearestBefore(subject, previousChild, subject.Ends[previousChild], params.QuitOnFirst, matches)
		if len(*matches) > 0 && params.QuitOnFirst {
			return
		}
	}
	if hasNext && (!hasPrevious || toNext <= toPrevious) {
		nearestAfter(subject, rootIndex, subject.Starts[rootIndex], params.QuitOnFirst, matches)
	}
}

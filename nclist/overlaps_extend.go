package nclist

// ExtendWorkspace holds the traversal stack reused across calls to Extend.
// The zero value is ready to use.
type ExtendWorkspace[I Index] struct {
	history []noSkipState[I]
}

// ExtendParams configures Extend.
type ExtendParams[P Position] struct {
	// MaxGap caps the difference between the query and subject widths: a
	// subject is not reported if the query is wider than it by more than
	// MaxGap. Leave HasMaxGap false to ignore width entirely.
	MaxGap    P
	HasMaxGap bool

	// MinOverlap requires the subject to be at least this wide, in
	// addition to being enclosed by the query.
	MinOverlap P

	// QuitOnFirst stops the walk after the first match.
	QuitOnFirst bool
}

// Extend finds subject intervals that are enclosed by (extended by) the
// query interval, i.e. queryStart <= subjectStart && subjectEnd <=
// queryEnd, subject to the MaxGap/MinOverlap adjustments in ExtendParams.
// matches is cleared and then filled; order is unspecified.
func Extend[I Index, P Position](subject *Nclist[I, P], queryStart, queryEnd P, params ExtendParams[P], ws *ExtendWorkspace[I], matches *[]I) {
	*matches = (*matches)[:0]
	if subject.RootChildren == 0 {
		return
	}

	hasMinOverlap := params.MinOverlap > 0
	queryWidth := queryEnd - queryStart
	if hasMinOverlap && queryWidth < params.MinOverlap {
		return
	}

	isFinished := func(subjectStart P) bool {
		if hasMinOverlap {
			if subjectStart >= queryEnd {
				return true
			}
			return queryEnd-subjectStart < params.MinOverlap
		}
		return subjectStart >= queryEnd
	}

	var effectiveQueryStart P
	if hasMinOverlap {
		if addOverflows(queryStart, params.MinOverlap) {
			return
		}
		effectiveQueryStart = queryStart + params.MinOverlap
	}

	findFirstChild := func(childrenStart, childrenEnd I) I {
		if hasMinOverlap {
			return lowerBound(subject.Ends, childrenStart, childrenEnd, effectiveQueryStart)
		}
		return upperBound(subject.Ends, childrenStart, childrenEnd, queryStart)
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
		subjectWidth := subjectEnd - subjectStart

		if hasMinOverlap && subjectWidth < params.MinOverlap {
			continue
		}
		if params.HasMaxGap && queryWidth-subjectWidth > params.MaxGap {
			continue
		}

		enclosed := queryStart <= subjectStart && queryEnd >= subjectEnd
		if enclosed {
			*matches = append(*matches, node.ID)
			if params.QuitOnFirst {
				return
			}
			if node.DuplicatesStart != node.DuplicatesEnd {
				*matches = append(*matches, subject.Duplicates[node.DuplicatesStart:node.DuplicatesEnd]...)
			}
		}

		if node.ChildrenStart != node.ChildrenEnd {
			if enclosed {
				ws.history = append(ws.history, noSkipState[I]{node.ChildrenStart, node.ChildrenEnd})
			} else {
				start := findFirstChild(node.ChildrenStart, node.ChildrenEnd)
				if start != node.ChildrenEnd {
					ws.history = append(ws.history, noSkipState[I]{start, node.ChildrenEnd})
				}
			}
		}
	}
}

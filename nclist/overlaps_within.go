package nclist

// WithinWorkspace holds the traversal stack reused across calls to Within.
// The zero value is ready to use.
type WithinWorkspace[I Index] struct {
	history []noSkipState[I]
}

// WithinParams configures Within.
type WithinParams[P Position] struct {
	// MaxGap caps the difference between the query and subject widths: a
	// subject is not reported if it is wider than the query by more than
	// MaxGap. Leave HasMaxGap false to ignore width entirely.
	MaxGap    P
	HasMaxGap bool

	// MinOverlap requires the query to be at least this wide.
	MinOverlap P

	// QuitOnFirst stops the walk after the first match.
	QuitOnFirst bool
}

// Within finds subject intervals that the query interval lies within, i.e.
// subjectStart <= queryStart && queryEnd <= subjectEnd (subject to the
// MaxGap width cap in WithinParams). matches is cleared and then filled;
// order is unspecified.
func Within[I Index, P Position](subject *Nclist[I, P], queryStart, queryEnd P, params WithinParams[P], ws *WithinWorkspace[I], matches *[]I) {
	*matches = (*matches)[:0]
	if subject.RootChildren == 0 {
		return
	}

	queryWidth := queryEnd - queryStart
	if params.MinOverlap > 0 && queryWidth < params.MinOverlap {
		return
	}

	findFirstChild := func(childrenStart, childrenEnd I) I {
		return lowerBound(subject.Ends, childrenStart, childrenEnd, queryEnd)
	}
	isFinished := func(subjectStart P) bool {
		return subjectStart > queryStart
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

		addSelf := true
		if params.HasMaxGap {
			subjectWidth := subject.Ends[current] - subject.Starts[current]
			if subjectWidth-queryWidth > params.MaxGap {
				addSelf = false
			}
		}

		if addSelf {
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

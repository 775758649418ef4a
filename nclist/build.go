package nclist

import "sort"

// fitsIndex reports whether n, a non-negative count, can be represented
// exactly by I. It works for any Index instantiation by round-tripping the
// conversion rather than comparing against a type-specific maximum.
func fitsIndex[I Index](n int) bool {
	if n < 0 {
		return false
	}
	asIndex := I(n)
	return int(asIndex) == n
}

// Build constructs an Nclist over all of the given intervals, where the
// i-th subject interval is [starts[i], ends[i]). starts and ends must have
// the same length; that length becomes the subject count. The builder does
// not modify starts or ends.
func Build[I Index, P Position](starts, ends []P) (Nclist[I, P], error) {
	if !fitsIndex[I](len(starts)) {
		return Nclist[I, P]{}, ErrTooManySubjects
	}
	n := I(len(starts))
	return buildInternal(n, nil, positionSlice[I, P](starts), positionSlice[I, P](ends))
}

// BuildSubset constructs an Nclist over the subset of subject intervals
// named by subset, an array of indices into starts/ends. starts and ends
// must be long enough to be addressable by every element of subset. Neither
// subset, starts, nor ends is modified.
func BuildSubset[I Index, P Position](subset []I, starts, ends []P) (Nclist[I, P], error) {
	if !fitsIndex[I](len(subset)) {
		return Nclist[I, P]{}, ErrTooManySubjects
	}
	n := I(len(subset))
	subsetCopy := make([]I, n)
	copy(subsetCopy, subset)
	return buildInternal(n, subsetCopy, positionSlice[I, P](starts), positionSlice[I, P](ends))
}

// BuildCustom constructs an Nclist over numSubset intervals addressed
// through starts/ends accessors rather than contiguous slices, per the
// "custom arrays" build form: useful when positions live in a
// non-contiguous or computed source. If subset is non-nil, it names the
// numSubset original indices to include (as for BuildSubset); if subset is
// nil, the intervals [0, numSubset) are used directly (as for Build).
func BuildCustom[I Index, P Position](numSubset I, subset []I, starts, ends PositionAccessor[I, P]) (Nclist[I, P], error) {
	if subset != nil && I(len(subset)) != numSubset {
		panic("nclist: len(subset) does not match numSubset")
	}
	var subsetCopy []I
	if subset != nil {
		subsetCopy = make([]I, numSubset)
		copy(subsetCopy, subset)
	}
	return buildInternal(numSubset, subsetCopy, starts, ends)
}

// workingNode is the mutable scratch representation of one node during tree
// construction, before it is flattened into the Nclist's contiguous layout.
// Its children/duplicates are plain Go slices rather than spans into a
// shared arena: the handle-based arena spec.md §9 calls "simpler and
// equivalent" is applied at the node level (workingList is one contiguous
// []workingNode, addressed by integer handle) rather than additionally
// compacting each node's own child list, which spec.md explicitly leaves to
// the implementer's discretion.
type workingNode[I Index] struct {
	id         I
	children   []I
	duplicates []I
}

func buildInternal[I Index, P Position](n I, subset []I, starts, ends PositionAccessor[I, P]) (Nclist[I, P], error) {
	identity := subset == nil

	at := func(r I) I {
		if identity {
			return r
		}
		return subset[r]
	}

	less := func(l, r I) bool {
		sl, el := starts.At(l), ends.At(l)
		sr, er := starts.At(r), ends.At(r)
		if sl == sr {
			return el > er
		}
		return sl < sr
	}

	// Detect whether the input is already ordered via a single linear scan,
	// so the sort itself can be skipped entirely when it is.
	sortedAlready := true
	for r := I(1); r < n; r++ {
		if less(at(r), at(r-1)) {
			sortedAlready = false
			break
		}
	}
	if !sortedAlready {
		if identity {
			subset = make([]I, n)
			for r := I(0); r < n; r++ {
				subset[r] = r
			}
			identity = false
		}
		sort.Slice(subset, func(i, j int) bool {
			return less(subset[i], subset[j])
		})
	}

	type level struct {
		offset I
		end    P
	}

	workingList := make([]workingNode[I], 0, n)
	var topChildren []I
	var levels []level
	var lastStart, lastEnd P
	var numDuplicates I

	for r := I(0); r < n; r++ {
		curID := at(r)
		curStart := starts.At(curID)
		curEnd := ends.At(curID)

		if r != 0 && lastStart == curStart && lastEnd == curEnd {
			top := &levels[len(levels)-1]
			workingList[top.offset].duplicates = append(workingList[top.offset].duplicates, curID)
			numDuplicates++
			continue
		}

		for len(levels) > 0 && levels[len(levels)-1].end < curEnd {
			levels = levels[:len(levels)-1]
		}

		used := I(len(workingList))
		workingList = append(workingList, workingNode[I]{id: curID})
		if len(levels) == 0 {
			topChildren = append(topChildren, used)
		} else {
			parent := levels[len(levels)-1].offset
			workingList[parent].children = append(workingList[parent].children, used)
		}
		levels = append(levels, level{offset: used, end: curEnd})
		lastStart, lastEnd = curStart, curEnd
	}

	var out Nclist[I, P]
	out.Nodes = make([]Node[I], 0, len(workingList))
	out.Starts = make([]P, 0, len(workingList))
	out.Ends = make([]P, 0, len(workingList))
	out.Duplicates = make([]I, 0, numDuplicates)

	depositChildren := func(childWorkIndices []I) {
		for _, workIdx := range childWorkIndices {
			wn := &workingList[workIdx]
			out.Starts = append(out.Starts, starts.At(wn.id))
			out.Ends = append(out.Ends, ends.At(wn.id))

			node := Node[I]{ID: wn.id}
			if len(wn.duplicates) > 0 {
				node.DuplicatesStart = I(len(out.Duplicates))
				out.Duplicates = append(out.Duplicates, wn.duplicates...)
				node.DuplicatesEnd = I(len(out.Duplicates))
			}
			// ChildrenStart temporarily stores the working-list handle so the
			// depth-first pass below can cross-reference back into
			// workingList; it is overwritten with the real output offset once
			// that node's own children are deposited.
			node.ChildrenStart = workIdx
			out.Nodes = append(out.Nodes, node)
		}
	}

	depositChildren(topChildren)
	out.RootChildren = I(len(out.Nodes))

	type historyEntry struct {
		parentOutIdx I
		nextOutIdx   I
	}
	var history []historyEntry
	rootProgress := I(0)

	for {
		var curOutIdx I
		if len(history) == 0 {
			if rootProgress == out.RootChildren {
				break
			}
			curOutIdx = rootProgress
			rootProgress++
		} else {
			top := &history[len(history)-1]
			if top.nextOutIdx == out.Nodes[top.parentOutIdx].ChildrenEnd {
				history = history[:len(history)-1]
				continue
			}
			curOutIdx = top.nextOutIdx
			top.nextOutIdx++
		}

		workIdx := out.Nodes[curOutIdx].ChildrenStart
		wn := &workingList[workIdx]
		firstChild := I(len(out.Nodes))
		out.Nodes[curOutIdx].ChildrenStart = firstChild
		depositChildren(wn.children)
		out.Nodes[curOutIdx].ChildrenEnd = I(len(out.Nodes))

		if len(wn.children) > 0 {
			history = append(history, historyEntry{parentOutIdx: curOutIdx, nextOutIdx: firstChild})
		}
	}

	return out, nil
}

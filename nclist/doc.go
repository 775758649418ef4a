/*Package nclist implements a nested containment list (NCList), an index
  over a set of half-open intervals [start, end) that supports fast overlap
  queries under several different notions of "overlap" (any overlap, shared
  start, shared end, exact match, query-within-subject, subject-within-query,
  nearest).

  The index is built once from parallel start/end arrays and is read-only
  from then on; it has no knowledge of I/O, concurrency, or chromosomes. It
  is deliberately similar in spirit to Nclist, and its build algorithm and
  query family are ported from the nclist-cpp header library.
*/
package nclist

// Package bedregion loads BED-style region files into a per-chromosome
// nclist.Nclist, so callers can run the query family in package nclist
// against named chromosomes without building and bookkeeping the indices
// themselves.
package bedregion

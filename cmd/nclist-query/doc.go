/*Command nclist-query loads a BED-style region file and answers
  interval-overlap queries against it.

  Usage:

      nclist-query --region=regions.bed --query=chr1:1000-2000 --kind=any

  --region names the region file to load (gzip-compressed input is
  detected automatically). --chr names the chromosome to query in place
  of the one in --query; when omitted, the --query chromosome is queried,
  or, if --query names only a chromosome, every chromosome in --region is
  queried in turn. --query is a region string of the form accepted by
  bedregion.ParseRegionString (chr, chr:pos, or chr:start-end).  --kind
  selects one of any, start, end, equal, within, extend, or nearest.
  --min-overlap, --max-gap, --quit-on-first, and
  --adjacent-equals-overlap (nearest only) configure the query the way
  the corresponding nclist.*Params struct fields do.

  Matching subject indices are printed one per line, prefixed with the
  chromosome name when more than one chromosome is in scope; the BED
  name column, if present in --region, is appended after a tab.
*/
package main

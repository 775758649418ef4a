package nclist

import "errors"

// ErrTooManySubjects is returned by Build and BuildSubset when the number of
// subject intervals does not fit in the caller-chosen Index type. Node and
// duplicate counts never exceed that number, so they need no check of their
// own. BuildCustom takes its count as an Index already and never returns
// this error. Wrap-checking happens up front, before any allocation, so a
// caller can retry with a wider Index type without having paid for a
// partial build.
var ErrTooManySubjects = errors.New("nclist: too many subjects for the chosen Index type")

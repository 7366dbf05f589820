package validity

import "errors"

// ErrRejected identifies a candidate that did not reach VALID. FilterSPN
// does not return it: a rejection is reported through Result.State and
// Result.Reason with a nil error.
var ErrRejected = errors.New("validity: candidate rejected")

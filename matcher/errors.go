package matcher

import "errors"

// ErrExhausted indicates the candidate list ran out before every
// strawberry was covered. The generator guarantees a unit candidate
// exists for every strawberry, so this can only happen if that invariant
// was violated upstream — an arena or generator defect, never a property
// of the input.
var ErrExhausted = errors.New("matcher: candidate list exhausted before every strawberry was covered")

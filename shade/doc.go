// Package shade evaluates a candidate join between two cover rectangles:
// the rectangular hull of the pair, the set of other cover members it
// would absorb (the envelope), the other members it would merely shrink
// (the penumbra), and the net cost change of applying it (the penalty).
//
// A Shade is built once per candidate pair per local-search iteration
// and discarded once the iteration's best Shade has been chosen and
// applied (or none improves and the search halts).
package shade

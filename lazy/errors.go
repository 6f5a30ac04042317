package lazy

import "errors"

// ErrEmptySeq is returned by [Seq.HeadOrFail] and [Seq.TailOrFail] when the
// sequence has no elements.
var ErrEmptySeq = errors.New("lazy: empty sequence")

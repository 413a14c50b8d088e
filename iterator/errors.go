package iterator

import "errors"

// ErrBackwardAdvance is the panic value (wrapped) raised when Advance is asked
// to move a forward-only iterator by a negative amount.
var ErrBackwardAdvance = errors.New("iterator: negative advance on a forward-only iterator")

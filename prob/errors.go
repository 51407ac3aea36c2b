package prob

import "errors"

// ErrNegativeWeight is the panic value (wrapped) of Push/New when a
// weight is negative.
var ErrNegativeWeight = errors.New("prob: weight must be >= 0")

package rounding

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("rounding")

// Invalid marks requests with a nonsensical precision or an unknown
// mode or kind.
var Invalid = errs.Class("invalid request")

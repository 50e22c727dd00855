package ieee754

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("ieee754")

// Unsupported marks inputs outside the conversion contract (NaN and
// the infinities).
var Unsupported = errs.Class("unsupported value")

package dtoa

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("dtoa")

// InvalidRequest marks option combinations that cannot be satisfied.
var InvalidRequest = errs.Class("invalid request")

package geom

import "github.com/yanrabe/isocontour/graph"

// errDomain is returned by LerpZero when called on equal-sign
// endpoints; it is graph.ErrDomainError itself, so callers can match it
// with errors.Is regardless of which package raised it.
var errDomain = graph.ErrDomainError

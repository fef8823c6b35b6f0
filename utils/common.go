package utils

import "errors"

var (
	ErrNoConvergence = errors.New("no convergence")
	ErrNoBracket     = errors.New("root is not bracketed")
)

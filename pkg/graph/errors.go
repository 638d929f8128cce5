package graph

import (
	"errors"
)

var (
	ErrInvalidVertex   = errors.New("invalid vertex name")
	ErrSelfLoop        = errors.New("self-loop not allowed")
	ErrUnknownEndpoint = errors.New("edge endpoint is no vertex of the graph")
)

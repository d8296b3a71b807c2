package janitor

import "errors"

var (
	ErrList     = errors.New("list clusters")
	ErrRemove   = errors.New("remove expired clusters")
	ErrNoRunYet = errors.New("no cleanup run finished yet")
)

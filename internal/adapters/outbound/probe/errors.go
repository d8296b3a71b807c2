package probe

import "errors"

var (
	ErrNoNameserver = errors.New("no nameserver configured")
	ErrDNSRcode     = errors.New("dns query failed")
)

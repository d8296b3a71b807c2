package ingress

import "errors"

var (
	ErrUnsupportedProvider = errors.New("unsupported ingress provider")
	ErrNilStrategy         = errors.New("strategy cannot be nil")
	ErrAlreadyRegistered   = errors.New("strategy already registered")
	ErrDNSZoneUnavailable  = errors.New("http application routing dns zone unavailable")
	ErrIdentity            = errors.New("derive cluster identity")
)

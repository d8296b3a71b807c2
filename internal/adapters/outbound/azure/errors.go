package azure

import "errors"

var (
	ErrNoSubscription = errors.New("azure subscription id not configured")
	ErrBadResourceID  = errors.New("malformed resource id")
)

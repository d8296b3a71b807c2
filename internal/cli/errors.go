package cli

import "errors"

var ErrNegativeRetries = errors.New("retries must not be negative")

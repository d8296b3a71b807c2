package config

import "errors"

var ErrDurationTooShort = errors.New("duration below minimum")

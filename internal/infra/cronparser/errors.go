package cronparser

import "errors"

var ErrEmptySpec = errors.New("empty cron spec")

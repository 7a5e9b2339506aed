package works

import "errors"

var ErrWorkNotFound = errors.New("work not found")

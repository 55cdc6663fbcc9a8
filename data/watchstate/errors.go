package watchstate

import "errors"

var ErrNotFound = errors.New("watch state not found")

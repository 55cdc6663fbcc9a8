package catalogService

import "errors"

var ErrBooksUnavailable = errors.New("books unavailable")

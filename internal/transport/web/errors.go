package web

import (
	"errors"

	"github.com/Ilhomjon565/kutubxona-uit/internal/externalApi/libraryApi"
)

// userMessage maps internal errors to the uzbek string shown inline.
func userMessage(err error) string {
	var apiErr *libraryApi.ApiError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, libraryApi.ErrNotFound) {
		return bookNotFoundMsg
	}
	if errors.Is(err, libraryApi.ErrUnauthorized) {
		return "Avtorizatsiya talab qilinadi"
	}
	return internalErrMsg
}

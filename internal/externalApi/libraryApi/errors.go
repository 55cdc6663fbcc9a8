package libraryApi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound     = errors.New("not found in library api")
	ErrUnauthorized = errors.New("library api unauthorized")
)

// ApiError carries the backend's structured message for non-2xx responses.
// Message is already user-facing (uzbek), mirroring what the backend sends.
type ApiError struct {
	Status  int
	Message string
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("library api error: %s (status %d)", e.Message, e.Status)
}

func statusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Noto'g'ri so'rov ma'lumotlari"
	case http.StatusUnauthorized:
		return "Avtorizatsiya talab qilinadi"
	case http.StatusForbidden:
		return "Ruxsat berilmagan"
	case http.StatusNotFound:
		return "Ma'lumot topilmadi"
	case http.StatusInternalServerError:
		return "Server xatoligi"
	default:
		return fmt.Sprintf("Xatolik: %d", status)
	}
}

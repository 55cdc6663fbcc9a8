package adminService

import "errors"

var (
	ErrNoSession          = errors.New("no admin session")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

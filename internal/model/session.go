package model

import "time"

// AdminSession is the server-side session behind an opaque cookie id.
// The bearer token for the library API never leaves the server.
type AdminSession struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

package models

import "time"

// Session maps an opaque token to the user that owns it. Sessions have no
// expiry: an entry stays valid until process exit. A user may hold any
// number of live sessions at once.
type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
}

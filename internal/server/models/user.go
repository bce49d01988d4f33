// Package models contains the server-side data model for the directory.
package models

// User is the canonical directory record. Password is kept in plaintext and
// must never leave the service boundary; every external representation goes
// through Public().
type User struct {
	ID        string
	Name      string
	Username  string
	Password  string
	Age       int
	IsMarried bool
}

// PublicUser is the sanitized view of a User. It has no password field at
// all, so redaction cannot be forgotten on any return path.
type PublicUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Age       int    `json:"age"`
	IsMarried bool   `json:"isMarried"`
}

// Public returns the sanitized view of the user.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}
	return &PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Age:       u.Age,
		IsMarried: u.IsMarried,
	}
}

// UserUpdate describes a partial update. Nil fields are "not provided" and
// leave the current value untouched; presence is carried by the pointer, not
// by the value, so age 0 and isMarried false are valid updates.
type UserUpdate struct {
	Name      *string `json:"name"`
	Age       *int    `json:"age"`
	IsMarried *bool   `json:"isMarried"`
}

// Apply copies the provided fields onto the user.
func (upd *UserUpdate) Apply(u *User) {
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Age != nil {
		u.Age = *upd.Age
	}
	if upd.IsMarried != nil {
		u.IsMarried = *upd.IsMarried
	}
}

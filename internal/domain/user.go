package domain

import "time"

// DefaultRole is assigned when a new user is created without one.
const DefaultRole = "user"

// User is a row of the auth table.
// It is never written to clients directly; see dto.UserResponse.
type User struct {
	ID        int64
	Username  string
	Email     string
	Password  string // bcrypt hash
	Pin       *string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserChanges holds the columns of a partial update. Nil fields are left untouched.
type UserChanges struct {
	Username *string
	Email    *string
	Password *string // already hashed
	Pin      *string
	Role     *string
}

// Empty reports whether no column is set.
func (c UserChanges) Empty() bool {
	return c.Username == nil && c.Email == nil && c.Password == nil && c.Pin == nil && c.Role == nil
}

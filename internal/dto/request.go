package dto

// CreateUserRequest is the body of a POST.
type CreateUserRequest struct {
	Username string  `json:"username" validate:"required"`
	Email    string  `json:"email" validate:"required"`
	Password string  `json:"password" validate:"required"`
	Role     *string `json:"role"`
	Pin      *string `json:"pin"`
}

// UpdateUserRequest is the body of a PUT. Absent and null fields are left unchanged.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Pin      *string `json:"pin"`
	Role     *string `json:"role"`
}

// Empty reports whether the request carries no updatable field.
func (r UpdateUserRequest) Empty() bool {
	return r.Username == nil && r.Email == nil && r.Password == nil && r.Pin == nil && r.Role == nil
}

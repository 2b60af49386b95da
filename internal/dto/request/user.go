package request

// Admin user management. Pointer fields distinguish absent from empty so
// sparse updates only touch what the caller supplied.

type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin instructor learner"`
}

type UpdateUserRequest struct {
	ID       string  `json:"id" validate:"required,uuid"`
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin instructor learner"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type ResetPasswordRequest struct {
	ID          string `json:"id" validate:"required,uuid"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type DeleteUserRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}

// Self-service profile.

type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

type DeleteAccountRequest struct {
	Password string `json:"password" validate:"required"`
}

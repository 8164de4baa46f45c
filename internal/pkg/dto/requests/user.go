package requests

type CreateUser struct {
	Username string `json:"username" validate:"required,min=3,max=50,alphanum"`
	Password string `json:"password" validate:"required,password"`
	Role     string `json:"role" validate:"required,user_role"`
	WorkerID string `json:"workerId" validate:"omitempty"`
}

type UpdateUser struct {
	Password *string `json:"password" validate:"omitempty,password"`
	Role     *string `json:"role" validate:"omitempty,user_role"`
	WorkerID *string `json:"workerId" validate:"omitempty"`
}

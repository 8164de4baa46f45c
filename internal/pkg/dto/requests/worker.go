package requests

type CreateWorker struct {
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateWorker struct {
	Name   *string `json:"name" validate:"omitempty,max=100"`
	Active *bool   `json:"active"`
}

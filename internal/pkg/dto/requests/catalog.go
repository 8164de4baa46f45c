package requests

type CreateService struct {
	Name            string `json:"name" validate:"required,max=100"`
	DurationMinutes int    `json:"durationMinutes" validate:"required,gt=0"`
	Price           int    `json:"price" validate:"omitempty,gte=0"`
}

type UpdateService struct {
	Name            *string `json:"name" validate:"omitempty,max=100"`
	DurationMinutes *int    `json:"durationMinutes" validate:"omitempty,gt=0"`
	Price           *int    `json:"price" validate:"omitempty,gte=0"`
	Active          *bool   `json:"active"`
}

package utils

import (
	"strings"

	"agenda-service/internal/pkg/dto/requests"
)

func SanitizeLoginRequest(input *requests.Login) {
	input.Username = strings.TrimSpace(strings.ToLower(input.Username))
	input.Password = strings.TrimSpace(input.Password)
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.ServiceID = strings.TrimSpace(input.ServiceID)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
	input.ClientName = strings.TrimSpace(input.ClientName)
	input.ClientPhone = strings.TrimSpace(input.ClientPhone)
	input.WorkerID = strings.TrimSpace(input.WorkerID)
}

func SanitizeCreateServiceRequest(input *requests.CreateService) {
	input.Name = strings.TrimSpace(input.Name)
}

func SanitizeCreateWorkerRequest(input *requests.CreateWorker) {
	input.Name = strings.TrimSpace(input.Name)
}

func SanitizeCreateUserRequest(input *requests.CreateUser) {
	input.Username = strings.TrimSpace(strings.ToLower(input.Username))
	input.Password = strings.TrimSpace(input.Password)
	input.Role = strings.TrimSpace(strings.ToLower(input.Role))
	input.WorkerID = strings.TrimSpace(input.WorkerID)
}

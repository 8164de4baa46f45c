package models

import (
	"time"

	"agenda-service/internal/pkg/constvars"
)

type Session struct {
	SessionID  string    `json:"sessionId"`
	UserID     string    `json:"userId"`
	BusinessID string    `json:"businessId"`
	Username   string    `json:"username"`
	Role       string    `json:"role"`
	WorkerID   string    `json:"workerId,omitempty"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

func (s *Session) IsAdmin() bool {
	return s.Role == constvars.RoleAdmin
}

func (s *Session) IsEmpleado() bool {
	return s.Role == constvars.RoleEmpleado
}

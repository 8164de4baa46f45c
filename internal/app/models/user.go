package models

import "agenda-service/internal/pkg/constvars"

type User struct {
	ID         string `json:"id" bson:"_id,omitempty"`
	BusinessID string `json:"businessId" bson:"businessId"`
	Username   string `json:"username" bson:"username"`
	Password   string `json:"-" bson:"password"`
	Role       string `json:"role" bson:"role"`
	WorkerID   string `json:"workerId,omitempty" bson:"workerId,omitempty"`
	TimeModel  `bson:",inline"`
}

func (u *User) IsAdmin() bool {
	return u.Role == constvars.RoleAdmin
}

func (u *User) IsEmpleado() bool {
	return u.Role == constvars.RoleEmpleado
}

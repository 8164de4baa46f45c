package models

import "agenda-service/internal/pkg/constvars"

// Appointment keeps a denormalized snapshot of the booked service so later
// catalog edits never rewrite history. WorkerID stays empty until a worker is
// assigned; WorkerName mirrors it for display and as a lookup fallback.
type Appointment struct {
	ID              string `json:"id" bson:"_id,omitempty"`
	BusinessID      string `json:"businessId" bson:"businessId"`
	ServiceID       string `json:"serviceId" bson:"serviceId"`
	ServiceName     string `json:"serviceName" bson:"serviceName"`
	ServiceDuration int    `json:"serviceDuration" bson:"serviceDuration"`
	Date            string `json:"date" bson:"date"`
	Time            string `json:"time" bson:"time"`
	// WorkerID is stored even when empty so the partial unique index and
	// the list filters can match on plain equality.
	WorkerID   string `json:"workerId,omitempty" bson:"workerId"`
	WorkerName string `json:"worker,omitempty" bson:"workerName"`
	ClientName      string `json:"clientName" bson:"clientName"`
	ClientPhone     string `json:"clientPhone,omitempty" bson:"clientPhone,omitempty"`
	Status          string `json:"status" bson:"status"`
	// ActiveBooking mirrors status != cancelada so the partial unique
	// booking index can filter on a plain equality.
	ActiveBooking bool `json:"-" bson:"activeBooking"`
	TimeModel     `bson:",inline"`
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == constvars.AppointmentStatusCancelled
}

func (a *Appointment) IsPending() bool {
	return a.Status == constvars.AppointmentStatusPending
}

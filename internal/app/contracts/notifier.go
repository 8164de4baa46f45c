package contracts

import "context"

// AppointmentEvent is the payload published to the events queue every
// time an appointment changes state. Consumers use it for reminders
// and reporting; publishing failures never fail the originating request.
type AppointmentEvent struct {
	Event         string `json:"event"`
	BusinessID    string `json:"businessId"`
	AppointmentID string `json:"appointmentId"`
	ServiceName   string `json:"serviceName"`
	WorkerName    string `json:"workerName,omitempty"`
	ClientName    string `json:"clientName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
}

type EventPublisher interface {
	PublishAppointmentEvent(ctx context.Context, event *AppointmentEvent)
}

package constvars

// Appointment statuses are the Spanish domain values stored as-is.
const (
	AppointmentStatusPending   = "pendiente"
	AppointmentStatusConfirmed = "confirmada"
	AppointmentStatusCancelled = "cancelada"
)

// Booking grid boundaries, inclusive start and exclusive end minute of day.
const (
	BookingGridOpenHour     = 9
	BookingGridCloseHour    = 18
	BookingGridStepMinutes  = 30
	BookingDateLayout       = "2006-01-02"
	BookingTimeLayout       = "15:04"
	BookingLockKeyFormat    = "booking:%s:%s"
	BookingLockTTLInSeconds = 5
)

const (
	AppointmentEventCreated    = "appointment.created"
	AppointmentEventConfirmed  = "appointment.confirmed"
	AppointmentEventCancelled  = "appointment.cancelled"
	AppointmentEventReassigned = "appointment.reassigned"
)

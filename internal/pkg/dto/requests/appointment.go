package requests

// CreateAppointment is the client-facing booking payload. WorkerID is the
// optional preferred worker; when empty the usecase auto-assigns one.
type CreateAppointment struct {
	ServiceID   string `json:"serviceId" validate:"required"`
	Date        string `json:"date" validate:"required,date_iso"`
	Time        string `json:"time" validate:"required,time_hhmm"`
	ClientName  string `json:"clientName" validate:"required,max=100"`
	ClientPhone string `json:"clientPhone" validate:"omitempty,max=30"`
	WorkerID    string `json:"workerId" validate:"omitempty"`
}

// UpdateAppointment is the allow-listed partial update. Nil means "leave the
// field alone"; anything outside this struct is rejected at decode time.
type UpdateAppointment struct {
	ServiceID *string `json:"serviceId" validate:"omitempty"`
	Date      *string `json:"date" validate:"omitempty,date_iso"`
	Time      *string `json:"time" validate:"omitempty,time_hhmm"`
	WorkerID  *string `json:"workerId" validate:"omitempty"`
	Status    *string `json:"status" validate:"omitempty,oneof=pendiente confirmada cancelada"`
}

func (r *UpdateAppointment) IsEmpty() bool {
	return r.ServiceID == nil && r.Date == nil && r.Time == nil && r.WorkerID == nil && r.Status == nil
}

type ReassignAppointment struct {
	WorkerID string `json:"workerId" validate:"required"`
}

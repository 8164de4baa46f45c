package requests

// QueryParams captures the list filters the appointment endpoints accept.
// WorkerID and WorkerName are filled by the usecase for employee sessions,
// never from the raw query.
type QueryParams struct {
	Date       string
	WorkerID   string
	WorkerName string
}

type AvailabilityQuery struct {
	ServiceID string `validate:"required"`
	Date      string `validate:"required,date_iso"`
}

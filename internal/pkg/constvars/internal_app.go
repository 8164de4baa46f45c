package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_BUSINESS_KEY             ContextKey = "business"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "AGENDA_SVC_"
)

const (
	RoleAdmin    = "admin"
	RoleEmpleado = "empleado"
)

const (
	URLParamBusinessSlug  = "businessSlug"
	URLParamAppointmentID = "appointmentID"
	URLParamServiceID     = "serviceID"
	URLParamWorkerID      = "workerID"
	URLParamUserID        = "userID"
)

package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccess  = "successfully login"
	LogoutSuccess = "successfully logout"

	// Business messages
	BusinessGetSuccess = "get business successfully"

	// Catalog messages
	ServiceListSuccess    = "get services successfully"
	ServiceCreatedSuccess = "service created successfully"
	ServiceUpdatedSuccess = "service updated successfully"
	ServiceDeletedSuccess = "service deleted successfully"

	// Worker messages
	WorkerListSuccess    = "get workers successfully"
	WorkerCreatedSuccess = "worker created successfully"
	WorkerUpdatedSuccess = "worker updated successfully"
	WorkerDeletedSuccess = "worker deleted successfully"

	// User messages
	UserListSuccess    = "get users successfully"
	UserCreatedSuccess = "user created successfully"
	UserUpdatedSuccess = "user updated successfully"
	UserDeletedSuccess = "user deleted successfully"

	// Appointment messages
	AppointmentListSuccess       = "get appointments successfully"
	AppointmentCreatedSuccess    = "appointment created successfully"
	AppointmentUpdatedSuccess    = "appointment updated successfully"
	AppointmentConfirmedSuccess  = "appointment confirmed successfully"
	AppointmentCancelledSuccess  = "appointment cancelled successfully"
	AppointmentReassignedSuccess = "appointment reassigned successfully"
	AvailabilityGetSuccess       = "get availability successfully"
)

package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"alphanum":  "must contain only alphanumeric characters",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"numeric":   "must be a number",
	"len":       "must be %s characters long",
	"oneof":     "must be one of [%s]",
	"gt":        "must be greater than %s",
	"gte":       "must be greater than or equal to %s",
	"lt":        "must be less than %s",
	"lte":       "must be less than or equal to %s",
	"password":  "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"date_iso":  "must be a valid date in YYYY-MM-DD format",
	"time_hhmm": "must be a valid time in HH:MM format",
	"user_role": "must be either 'admin' or 'empleado'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientUsernameAlreadyExists         = "username already used"
	ErrClientTooManyLoginAttempts          = "too many login attempts, please try again later"

	ErrClientBusinessNotFound    = "business not found"
	ErrClientServiceNotFound     = "service not found"
	ErrClientWorkerNotFound      = "worker not found"
	ErrClientUserNotFound        = "user not found"
	ErrClientAppointmentNotFound = "appointment not found"

	ErrClientTimeSlotTaken        = "%s is already booked on %s at %s"
	ErrClientNoWorkerAvailable    = "no worker is available on %s at %s"
	ErrClientSlotBeingBooked      = "this time slot is being booked by someone else, please try again"
	ErrClientTimeOutsideGrid      = "the requested time is outside business hours"
	ErrClientWorkerRequired       = "an assigned worker is required to confirm the appointment"
	ErrClientAppointmentCancelled = "the appointment is cancelled and can no longer change"
	ErrClientUnknownUpdateField   = "the update contains fields that cannot be changed"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON      = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate        = "cannot parse the requested date"
	ErrDevCannotParseTime        = "cannot parse time into the given format"
	ErrDevValidationFailed       = "validation failed"
	ErrDevFailedToHashPassword   = "failed to hash password"
	ErrDevInvalidCredentials     = "invalid credentials"
	ErrDevUsernameAlreadyExists  = "username already exists"
	ErrDevLoginRateLimitExceeded = "login rate limit exceeded for username"

	// Domain messages
	ErrDevBusinessNotExists         = "business not exists for the given slug"
	ErrDevServiceNotExists          = "service not exists or inactive for the business"
	ErrDevWorkerNotExists           = "worker not exists or inactive for the business"
	ErrDevUserNotExists             = "user not exists in our system"
	ErrDevAppointmentNotExists      = "appointment not exists for the business"
	ErrDevExactTimeConflict         = "worker already has a non-cancelled appointment at the exact time"
	ErrDevRangeOverlapConflict      = "worker has a non-cancelled appointment overlapping the requested range"
	ErrDevNoWorkerAvailable         = "auto-assignment exhausted the active worker roster"
	ErrDevBookingLockNotAcquired    = "booking lock for the worker day could not be acquired"
	ErrDevTimeOutsideGrid           = "requested time falls outside the booking grid"
	ErrDevConfirmWithoutWorker      = "confirmation requires a non-null worker"
	ErrDevTerminalStatusTransition  = "no transition is defined out of the cancelled status"
	ErrDevDisallowedUpdateField     = "partial update contains a field outside the allow-list"
	ErrDevDuplicateBookingViolation = "unique booking index rejected the write"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthRoleNotAllowed        = "user role is not allowed to access the resource"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisGetNoData  = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQOpenChannel    = "failed to open rabbitMQ channel"
	ErrDevRabbitMQDeclareQueue   = "failed to declare rabbitMQ queue %s"
	ErrDevRabbitMQPublishMessage = "failed to publish message to rabbitMQ queue %s"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
)

const (
	ErrEnvParsing = "Error parsing %s: %v, will use default value"
)

package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingSessionDataKey        = "session_data"
	LoggingBusinessIDKey         = "business_id"
	LoggingBusinessSlugKey       = "business_slug"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingServiceIDKey          = "service_id"
	LoggingWorkerIDKey           = "worker_id"
	LoggingWorkerNameKey         = "worker_name"
	LoggingUserIDKey             = "user_id"
	LoggingUsernameKey           = "username"
	LoggingDateKey               = "date"
	LoggingTimeKey               = "time"
	LoggingQueueKey              = "queue"
	LoggingEventKey              = "event"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingResponseCountKey      = "response_count"
)

package config

type InternalConfig struct {
	App      App
	JWT      JWT
	RabbitMQ AppRabbitMQ
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	Timezone                  string
	EndpointPrefix            string
	MaxRequests               int
	ShutdownTimeout           int
	MaxTimeRequestsPerSeconds int
	LoginMaxAttemptsPerMinute int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppRabbitMQ struct {
	AppointmentEventsQueue string
}

package constvars

const (
	MongoCollectionBusinesses   = "businesses"
	MongoCollectionServices     = "services"
	MongoCollectionWorkers      = "workers"
	MongoCollectionUsers        = "users"
	MongoCollectionAppointments = "appointments"
)

package responses

type Appointment struct {
	ID              string `json:"id"`
	ServiceID       string `json:"serviceId"`
	ServiceName     string `json:"serviceName"`
	ServiceDuration int    `json:"serviceDuration"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	WorkerID        string `json:"workerId,omitempty"`
	WorkerName      string `json:"worker,omitempty"`
	ClientName      string `json:"clientName"`
	ClientPhone     string `json:"clientPhone,omitempty"`
	Status          string `json:"status"`
}

type Availability struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

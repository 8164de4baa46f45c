package responses

type Login struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
	WorkerID string `json:"workerId,omitempty"`
}

package types

// StatusBody is the acknowledgement written by successful cart mutations.
type StatusBody struct {
	Status string `json:"status"`
}

// ErrorBody carries both hard failures and soft (HTTP 200) failures.
type ErrorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

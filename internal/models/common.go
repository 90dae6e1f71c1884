package models

// IDResponse is the body returned by every creation endpoint.
type IDResponse struct {
	ID string `json:"id"`
}

// StatusResponse is the body returned by patch endpoints.
type StatusResponse struct {
	Status string `json:"status"`
}

package handlers

// ErrorResponse is the envelope for every non-2xx JSON response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

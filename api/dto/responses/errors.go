// ABOUTME: Error response DTO shared by all endpoints
// ABOUTME: Short human-readable message plus optional upstream details

package responses

// ErrorResponse is the JSON body for non-2xx replies
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

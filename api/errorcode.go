package api

// ErrorResponse is the body of every non-2xx reply. Details carries the
// diagnostic string of an upstream failure and is omitted otherwise.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

var (
	errorLatLngRequired      = ErrorResponse{Error: "lat and lng query params required"}
	errorAPIKeyNotConfigured = ErrorResponse{Error: "Geoapify API key not configured"}
)

// errorUpstreamFetch wraps a provider failure with its diagnostic detail
func errorUpstreamFetch(err error) ErrorResponse {
	return ErrorResponse{
		Error:   "Failed to fetch hospitals from Geoapify",
		Details: err.Error(),
	}
}

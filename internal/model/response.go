package model

// Error kinds used in the standard error envelope.
const (
	KindValidation     = "validation"
	KindAuthentication = "authentication"
	KindAuthorization  = "authorization"
	KindNotFound       = "not_found"
	KindInternal       = "internal"
)

// ErrorResponse is the single error envelope returned by every endpoint.
type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

package errors

import v1 "github.com/aevon-lab/traffic-dashboard/internal/api/v1"

// Error codes carried in ErrorResponse.Code. Clients map HTTP statuses back to these.
const (
	CodeValidation       = "validation_error"
	CodeConflict         = "conflict"
	CodeNotFound         = "not_found"
	CodeUnauthorized     = "unauthorized"
	CodeForbidden        = "forbidden"
	CodeMethodNotAllowed = "method_not_allowed"
	CodeInternal         = "internal_error"
)

// Messages shared by the server handlers.
const (
	MsgUnauthorized     = "Unauthorized"
	MsgMethodNotAllowed = "Method not allowed"
	MsgInternal         = "Internal server error"
	MsgConflict         = "Traffic entry for this date already exists"
	MsgNotFound         = "Traffic entry not found"
	MsgIDRequired       = "Entry ID required"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Code    string          `json:"code,omitempty"`
	Details []v1.FieldError `json:"details,omitempty"`
}

// New builds a failed ErrorResponse.
func New(code, message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message, Code: code}
}

package v1

const (
	internalErrorMessage   = "internal server error"
	validationErrorMessage = "validation error"
	unauthorizedMessage    = "not authorized, login again"
	forbiddenMessage       = "admin access required"
	invalidIDMessage       = "invalid id"
)

type ErrorStruct struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"validation_errors"`
} // @name ValidationErrorStruct

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
} // @name MessageResponse

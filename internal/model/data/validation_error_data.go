package data

// ValidationErrorData describes a single failed request field.
type ValidationErrorData struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

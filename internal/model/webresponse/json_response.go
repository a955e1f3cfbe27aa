package webresponse

// JSONResponse is the generic envelope for error and status replies.
type JSONResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

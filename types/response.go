package types

// AdminResponse is the envelope for every admin-facing endpoint.
type AdminResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ValidationResponse is the 400 body for storefront validation failures.
type ValidationResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}
